package league

import (
	"fmt"
	"strings"
)

// League is a competition run by one nation's federation.
type League struct {
	ID       int64
	Name     string
	NationID *int64
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}

// Season is one league's running in one season, the scope that club
// participation and fixtures hang off.
type Season struct {
	ID       int64
	LeagueID int64
	SeasonID int64
}

func (s Season) Validate() error {
	if s.LeagueID == 0 {
		return fmt.Errorf("league season league id is required")
	}
	if s.SeasonID == 0 {
		return fmt.Errorf("league season season id is required")
	}
	return nil
}
