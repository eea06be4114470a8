// Package dberr holds storage-independent error marks shared by the
// persistence adapters and the import use cases.
package dberr

import (
	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrUniqueViolation marks a create that collided with an existing row.
	ErrUniqueViolation = crerr.New("unique constraint violation")
	// ErrMissingRelation marks a query against a table that does not exist.
	ErrMissingRelation = crerr.New("relation does not exist")
)

// MarkUniqueViolation keeps err's message and chain while making it match
// ErrUniqueViolation.
func MarkUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, ErrUniqueViolation)
}

func MarkMissingRelation(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, ErrMissingRelation)
}

func IsUniqueViolation(err error) bool {
	return err != nil && crerr.Is(err, ErrUniqueViolation)
}

func IsMissingRelation(err error) bool {
	return err != nil && crerr.Is(err, ErrMissingRelation)
}
