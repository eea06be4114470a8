package season

import (
	"fmt"
	"strings"
)

// Season is a calendar label such as "23/24", shared by every league.
type Season struct {
	ID   int64
	Name string
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	return nil
}
