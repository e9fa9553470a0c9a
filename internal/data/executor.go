// internal/data/executor.go
package data

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// PostgreSQL error codes the executor maps onto catalog errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// RowSet is the ordered result of one statement. Count is the number of rows
// returned, which for RETURNING statements is also the affected row count.
type RowSet[T any] struct {
	Rows  []T
	Count int
}

// Executor runs parameterized statements against the shared connection pool.
type Executor struct {
	DB     *sql.DB
	Logger *slog.Logger
}

// query checks out a single connection, runs stmt with args bound
// positionally, scans every row with scan and hands the connection back to
// the pool however the statement ends.
func query[T any](ctx context.Context, e Executor, scan func(rowScanner) (T, error), stmt string, args ...any) (RowSet[T], error) {
	conn, err := e.DB.Conn(ctx)
	if err != nil {
		return RowSet[T]{}, e.fail(stmt, err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, stmt, args...)
	if err != nil {
		return RowSet[T]{}, e.fail(stmt, err)
	}
	defer rows.Close()

	set := RowSet[T]{Rows: []T{}}
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return RowSet[T]{}, e.fail(stmt, err)
		}
		set.Rows = append(set.Rows, row)
	}
	if err = rows.Err(); err != nil {
		return RowSet[T]{}, e.fail(stmt, err)
	}

	set.Count = len(set.Rows)
	return set, nil
}

// fail logs the driver error and replaces it with one of the package
// sentinels, so driver and schema details stay in the log.
func (e Executor) fail(stmt string, err error) error {
	if e.Logger != nil {
		e.Logger.Error("database query failed",
			slog.String("statement", stmt),
			slog.String("error", err.Error()),
		)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return ErrDuplicate
		case pqForeignKeyViolation:
			return ErrForeignKey
		}
	}
	return ErrDatabase
}
