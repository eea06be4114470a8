package club

import (
	"fmt"
	"strings"
)

// Club is the canonical, season-independent identity of a team. Its name is
// unique and matched exactly.
type Club struct {
	ID       int64
	Name     string
	NationID *int64
}

func (c Club) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}
	return nil
}

// Season is a club's participation in one league season.
type Season struct {
	ID             int64
	ClubID         int64
	LeagueSeasonID int64
}

func (s Season) Validate() error {
	if s.ClubID == 0 || s.LeagueSeasonID == 0 {
		return fmt.Errorf("club season requires club id and league season id")
	}
	return nil
}
