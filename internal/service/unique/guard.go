// Package unique implements the pre-write, case-insensitive collision check.
// It only produces a friendly conflict message; the unique indexes in the
// store remain the authority when two writers race past the check.
package unique

import (
	"context"
	"fmt"
	"strings"
)

// ExistsFunc reports whether a row whose uppercased field equals upper exists.
type ExistsFunc func(ctx context.Context, upper string) (bool, error)

// Ensure returns conflict(value) when a case-insensitive match for value exists.
func Ensure(ctx context.Context, value string, exists ExistsFunc, conflict func(string) error) error {
	found, err := exists(ctx, strings.ToUpper(value))
	if err != nil {
		return fmt.Errorf("check uniqueness of %q: %w", value, err)
	}
	if found {
		return conflict(value)
	}
	return nil
}

// Changed reports whether next differs from current once both are
// uppercased, which is when an update has to re-run Ensure.
func Changed(current, next string) bool {
	return strings.ToUpper(current) != strings.ToUpper(next)
}
