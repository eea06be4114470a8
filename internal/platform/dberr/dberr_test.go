package dberr

import (
	"errors"
	"fmt"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMarkUniqueViolation(t *testing.T) {
	t.Parallel()

	driverErr := errors.New(`pq: duplicate key value violates unique constraint "gk_perfs_fixture_id_key"`)
	marked := MarkUniqueViolation(driverErr)

	assert.True(t, IsUniqueViolation(marked))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create gk perf: %w", marked)))
	assert.Equal(t, driverErr.Error(), marked.Error())
	assert.False(t, IsMissingRelation(marked))
}

func TestIsUniqueViolation_WrappedSentinel(t *testing.T) {
	t.Parallel()

	err := crerr.Wrapf(ErrUniqueViolation, "club %q", "Fenerbahçe")
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
	assert.Nil(t, MarkUniqueViolation(nil))
}

func TestMarkMissingRelation(t *testing.T) {
	t.Parallel()

	err := MarkMissingRelation(errors.New(`pq: relation "gk_perfs" does not exist`))
	assert.True(t, IsMissingRelation(err))
	assert.False(t, IsUniqueViolation(err))
}
