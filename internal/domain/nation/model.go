package nation

import (
	"fmt"
	"strings"
)

// Nation is a country referenced by leagues, clubs and player nationality.
type Nation struct {
	ID   int64
	Name string
}

func (n Nation) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("nation name is required")
	}
	return nil
}
