// internal/data/exists.go
package data

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Exists reports whether table holds at least one row whose column equals
// value. Both identifiers are checked against their allow-lists before any
// SQL is built.
func (e Executor) Exists(ctx context.Context, column Column, value any, table Table) (bool, error) {
	if !table.valid() {
		return false, errors.Wrapf(ErrInvalidIdentifier, "table %q", table)
	}
	if !existsColumns[column] {
		return false, errors.Wrapf(ErrInvalidIdentifier, "column %q", column)
	}

	stmt := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = $1 LIMIT 1", table, column)
	set, err := query(ctx, e, func(rs rowScanner) (int, error) {
		var one int
		err := rs.Scan(&one)
		return one, err
	}, stmt, value)
	if err != nil {
		return false, err
	}
	return set.Count > 0, nil
}
