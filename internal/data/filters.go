// internal/data/filters.go
package data

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/aoideee/library-catalog/internal/validator"
)

// Fallbacks used when neither the query string nor the caller supplies a value.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
	DefaultOrder    = "asc"
)

// Filters holds pagination and sorting parameters for a list query.
type Filters struct {
	Page         int      // Current page number (1-indexed)
	PageSize     int      // Number of records per page
	Sort         string   // Column name to sort by
	Order        string   // "asc" or "desc"
	SortSafeList []string // Allowed sort columns; empty means every column of the table
}

// ParseFilters resolves list parameters from the query string keys page,
// limit, sortBy and order. Query string values win over the non-zero fields
// of defaults, which win over the package fallbacks. Page and limit values
// that are not integers resolve to 0 and are rejected when the query is built.
func ParseFilters(qs url.Values, defaults Filters) Filters {
	f := Filters{
		Page:         DefaultPage,
		PageSize:     DefaultPageSize,
		Sort:         DefaultSort,
		Order:        DefaultOrder,
		SortSafeList: defaults.SortSafeList,
	}
	if defaults.Page != 0 {
		f.Page = defaults.Page
	}
	if defaults.PageSize != 0 {
		f.PageSize = defaults.PageSize
	}
	if defaults.Sort != "" {
		f.Sort = defaults.Sort
	}
	if order, ok := normalizeOrder(defaults.Order); ok {
		f.Order = order
	}

	f.Page = readInt(qs, "page", f.Page)
	f.PageSize = readInt(qs, "limit", f.PageSize)
	if s := qs.Get("sortBy"); s != "" {
		f.Sort = s
	}
	if order, ok := normalizeOrder(qs.Get("order")); ok {
		f.Order = order
	}
	return f
}

func readInt(qs url.Values, key string, defaultValue int) int {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

func normalizeOrder(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, validator.In(s, "asc", "desc")
}

func (f Filters) validate() error {
	if f.Page < 1 || f.PageSize < 1 {
		return ErrInvalidPagination
	}
	return nil
}

// sortColumn returns the validated column name for ORDER BY, defaulting to id.
func (f Filters) sortColumn(t Table) string {
	safe := f.SortSafeList
	if len(safe) == 0 {
		safe = t.SortSafeList()
	}
	if validator.In(f.Sort, safe...) {
		return f.Sort
	}
	return DefaultSort
}

// sortDirection returns "ASC" or "DESC". Anything but desc sorts ascending.
func (f Filters) sortDirection() string {
	if strings.EqualFold(f.Order, "desc") {
		return "DESC"
	}
	return "ASC"
}

func (f Filters) limit() int { return f.PageSize }

func (f Filters) offset() int { return (f.Page - 1) * f.PageSize }

// Where is a conjunction of equality conditions over known columns. The
// placeholders it writes are numbered in the order conditions are added.
type Where struct {
	conds []string
	args  []any
}

// Eq adds "column = $n" bound to value.
func (w *Where) Eq(column Column, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w Where) String() string {
	return strings.Join(w.conds, " AND ")
}

// buildListQuery composes the paginated SELECT for table. The where args
// come first in the returned argument list, followed by limit and offset.
func buildListQuery(table Table, where Where, f Filters) (string, []any, error) {
	if err := f.validate(); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", table.selectList(), table)
	if len(where.conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(where.String())
	}

	column := f.sortColumn(table)
	fmt.Fprintf(&b, " ORDER BY %s %s", column, f.sortDirection())
	if column != string(ColumnID) {
		b.WriteString(", id ASC")
	}

	n := len(where.args)
	fmt.Fprintf(&b, " LIMIT $%d OFFSET $%d", n+1, n+2)

	args := make([]any, 0, n+2)
	args = append(args, where.args...)
	args = append(args, f.limit(), f.offset())
	return b.String(), args, nil
}

// list runs the paginated SELECT for table. An empty result is not an error.
func list[T any](ctx context.Context, e Executor, scan func(rowScanner) (T, error), table Table, where Where, f Filters) (RowSet[T], error) {
	stmt, args, err := buildListQuery(table, where, f)
	if err != nil {
		return RowSet[T]{}, err
	}
	return query(ctx, e, scan, stmt, args...)
}

// Patch is a sparse set of column assignments for an UPDATE.
type Patch struct {
	sets []string
	args []any
}

// Set assigns value to column.
func (p *Patch) Set(column Column, value any) {
	p.args = append(p.args, value)
	p.sets = append(p.sets, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

// Empty reports whether no column has been assigned.
func (p Patch) Empty() bool { return len(p.sets) == 0 }

// buildUpdate composes an UPDATE of row id in table returning the full row.
// With touch set, updated_at is refreshed as well.
func buildUpdate(table Table, p Patch, id int64, touch bool) (string, []any) {
	sets := append([]string{}, p.sets...)
	if touch {
		sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	}
	args := append(append([]any{}, p.args...), id)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), table.selectList())
	return stmt, args
}
