// internal/data/identifiers.go
package data

import "strings"

// Table names a table of the catalog schema. Only the constants below are
// ever written into SQL text.
type Table string

const (
	TableAuthors    Table = "authors"
	TableCategories Table = "categories"
	TableBooks      Table = "books"
)

// Column names a column of the catalog schema.
type Column string

const (
	ColumnID              Column = "id"
	ColumnName            Column = "name"
	ColumnEmail           Column = "email"
	ColumnCategory        Column = "category"
	ColumnAuthorID        Column = "author_id"
	ColumnCategoryID      Column = "category_id"
	ColumnTitle           Column = "title"
	ColumnPublicationYear Column = "publication_year"
	ColumnISBN            Column = "isbn"
	ColumnCreatedAt       Column = "created_at"
	ColumnUpdatedAt       Column = "updated_at"
)

// tableColumns is the selection list of every table, in scan order.
var tableColumns = map[Table][]Column{
	TableAuthors:    {ColumnID, ColumnName, ColumnEmail, ColumnCreatedAt, ColumnUpdatedAt},
	TableCategories: {ColumnID, ColumnCategory},
	TableBooks:      {ColumnID, ColumnAuthorID, ColumnCategoryID, ColumnTitle, ColumnPublicationYear, ColumnISBN},
}

// existsColumns are the columns an existence check may filter on.
var existsColumns = map[Column]bool{
	ColumnID:       true,
	ColumnEmail:    true,
	ColumnName:     true,
	ColumnAuthorID: true,
	ColumnCategory: true,
}

func (t Table) valid() bool {
	_, ok := tableColumns[t]
	return ok
}

func (t Table) columns() []Column {
	return tableColumns[t]
}

// selectList returns the comma separated column list used by SELECT and RETURNING.
func (t Table) selectList() string {
	return strings.Join(t.SortSafeList(), ", ")
}

// SortSafeList returns the column names a list over t may be sorted by.
func (t Table) SortSafeList() []string {
	cols := t.columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return names
}
