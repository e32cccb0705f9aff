package prediction

// Prediction is a user's forecast for one match, stored in the same
// "<home>-<away>" format as the match result. At most one prediction exists
// per (user, match) pair. PointsAwarded starts at zero and is set by the
// scoring sweep once the match result is known.
type Prediction struct {
	ID              int64
	UserID          int64
	MatchID         int64
	PredictedResult string
	PointsAwarded   int
}
