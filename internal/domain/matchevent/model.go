package matchevent

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Event is one row of match action: a shot, goal, card or note, attributed to
// a team and player as written in the source.
type Event struct {
	ID              int64
	FixtureID       int64
	Minute          *int
	MinuteText      *string
	TeamName        *string
	PlayerFirstName *string
	PlayerLastName  *string
	PlayerPosition  *string
	PlayerRating    *float64
	ShotArea        *string
	ShotType        *string
	LeadUp          *string
	XG              *float64
	XGOT            *float64
	BigChance       bool
	Outcome         *string
	ScoreAtShot     *string
	AssistFirstName *string
	AssistLastName  *string
	Notes           *string
}

func (e Event) Validate() error {
	if e.FixtureID == 0 {
		return fmt.Errorf("match event fixture id is required")
	}
	return nil
}

// NaturalKey identifies an event for duplicate detection. Every column read
// from the sheet takes part, so two shots in the same minute by the same
// player stay distinct when anything else about them differs.
func (e Event) NaturalKey() string {
	return strings.Join([]string{
		strconv.FormatInt(e.FixtureID, 10),
		derefInt(e.Minute),
		deref(e.MinuteText),
		deref(e.TeamName),
		deref(e.PlayerFirstName),
		deref(e.PlayerLastName),
		deref(e.PlayerPosition),
		derefFloat(e.PlayerRating),
		deref(e.ShotArea),
		deref(e.ShotType),
		deref(e.LeadUp),
		derefFloat(e.XG),
		derefFloat(e.XGOT),
		strconv.FormatBool(e.BigChance),
		deref(e.Outcome),
		deref(e.ScoreAtShot),
		deref(e.AssistFirstName),
		deref(e.AssistLastName),
		deref(e.Notes),
	}, "|")
}

// KeyHash is the fixed-width digest of NaturalKey stored in the unique index.
func (e Event) KeyHash() string {
	sum := sha256.Sum256([]byte(e.NaturalKey()))
	return hex.EncodeToString(sum[:])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func derefFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
