package league

// League is a competition as assigned by the data provider. The ID is the
// provider's competition ID, not a locally generated one, so repeated sync
// runs always converge on the same row.
type League struct {
	ID          int64
	Name        string
	Country     string
	Website     string
	Competition string
}
