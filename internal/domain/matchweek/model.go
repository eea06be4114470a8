package matchweek

import (
	"strconv"
	"strings"
	"unicode"
)

// MatchWeek is a round of fixtures within one league season.
type MatchWeek struct {
	ID             int64
	LeagueSeasonID int64
	WeekNumber     int
}

// ParseWeekNumber keeps only the digits of raw ("10. Hafta" gives 10).
// ok is false when no digits remain.
func ParseWeekNumber(raw string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.TrimFunc(raw, unicode.IsSpace))
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
