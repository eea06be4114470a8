package gkperf

import "fmt"

// Performance summarises both goalkeepers of one fixture. There is at most one
// per fixture.
type Performance struct {
	ID              int64
	FixtureID       int64
	HomeGKFirstName *string
	HomeGKLastName  *string
	AwayGKFirstName *string
	AwayGKLastName  *string
	HomeRating      *float64
	AwayRating      *float64
	HomeSaves       *float64
	AwaySaves       *float64
}

func (p Performance) Validate() error {
	if p.FixtureID == 0 {
		return fmt.Errorf("goalkeeper performance fixture id is required")
	}
	return nil
}
