package memory

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-stats/internal/platform/dberr"
)

func uniqueViolation(format string, args ...any) error {
	return crerr.Wrapf(dberr.ErrUniqueViolation, format, args...)
}
