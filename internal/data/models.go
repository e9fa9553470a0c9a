// internal/data/models.go
package data

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

var (
	// ErrRecordNotFound is returned when a query finds no matching row.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate value")
	// ErrForeignKey is returned when a write references a missing row or
	// deletes a row that is still referenced.
	ErrForeignKey = errors.New("foreign key violation")
	// ErrDatabase is returned for any other data-access failure.
	ErrDatabase = errors.New("database query failed")
	// ErrInvalidIdentifier is returned when a table or column is not allow-listed.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrInvalidPagination is returned when page or limit is below 1.
	ErrInvalidPagination = errors.New("page and limit must be greater than 0")
)

// Models groups the model types of every catalog table.
type Models struct {
	Authors    AuthorModel
	Books      BookModel
	Categories CategoryModel
}

// NewModels constructs a Models value sharing one executor over db.
func NewModels(db *sql.DB, logger *slog.Logger) Models {
	exec := Executor{DB: db, Logger: logger}
	return Models{
		Authors:    AuthorModel{exec: exec},
		Books:      BookModel{exec: exec},
		Categories: CategoryModel{exec: exec},
	}
}

// getRow fetches the row of table with the given id.
func getRow[T any](ctx context.Context, e Executor, scan func(rowScanner) (T, error), table Table, id int64) (*T, error) {
	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", table.selectList(), table)
	return queryRow(ctx, e, scan, stmt, id)
}

// deleteRow removes the row of table with the given id and returns it.
func deleteRow[T any](ctx context.Context, e Executor, scan func(rowScanner) (T, error), table Table, id int64) (*T, error) {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", table, table.selectList())
	return queryRow(ctx, e, scan, stmt, id)
}

// updateRow applies p to the row of table with the given id and returns it.
func updateRow[T any](ctx context.Context, e Executor, scan func(rowScanner) (T, error), table Table, p Patch, id int64, touch bool) (*T, error) {
	stmt, args := buildUpdate(table, p, id, touch)
	return queryRow(ctx, e, scan, stmt, args...)
}

// queryRow runs stmt and returns its first row, or ErrRecordNotFound when
// the statement matched nothing.
func queryRow[T any](ctx context.Context, e Executor, scan func(rowScanner) (T, error), stmt string, args ...any) (*T, error) {
	set, err := query(ctx, e, scan, stmt, args...)
	if err != nil {
		return nil, err
	}
	if set.Count == 0 {
		return nil, ErrRecordNotFound
	}
	return &set.Rows[0], nil
}
