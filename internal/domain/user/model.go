package user

// User is a registered player of the prediction league. Score is derived
// from awarded prediction points, never mutated directly by the user.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Score        int
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID int64
}
