package team

import "fmt"

// Team is a football club. Provider-sourced teams carry the provider's
// positive ID; user-added teams carry a synthetic negative ID.
type Team struct {
	ID       int64
	LeagueID *int64
	Name     string
	LogoURL  string
	Stadium  string
}

func (t Team) Validate() error {
	if t.ID == 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// UserAdded reports whether the team was created locally rather than synced
// from the provider.
func (t Team) UserAdded() bool {
	return t.ID < 0
}
