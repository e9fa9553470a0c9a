// Package data provides the data models and database interaction logic
// for the library catalog.
package data

import (
	"context"
	"time"
)

// Book represents a single row in the "books" table.
type Book struct {
	ID              int64  `json:"id"`               // Unique identifier assigned by the database
	AuthorID        int64  `json:"author_id"`        // Author who published the book
	CategoryID      int64  `json:"category_id"`      // Category the book is filed under
	Title           string `json:"title"`            // Title of the book
	PublicationYear int    `json:"publication_year"` // Year the book was published through the API
	ISBN            string `json:"isbn"`             // 13-digit ISBN generated on publish
}

// CreateBookInput holds the fields a client must supply when publishing a book.
// The publication year and ISBN are assigned by the server.
type CreateBookInput struct {
	AuthorID   int64  `json:"author_id"   validate:"required,min=1"`
	Title      string `json:"title"       validate:"required,notblank"`
	CategoryID int64  `json:"category_id" validate:"required,min=1"`
}

// DeleteBookInput is the body of a delete request. Only the book's own
// author may delete it.
type DeleteBookInput struct {
	AuthorID int64 `json:"author_id" validate:"required,min=1"`
}

// BookFilter narrows a book list. Zero fields are not applied.
type BookFilter struct {
	AuthorID   int64
	CategoryID int64
}

func (f BookFilter) where() Where {
	var w Where
	if f.CategoryID != 0 {
		w.Eq(ColumnCategoryID, f.CategoryID)
	}
	if f.AuthorID != 0 {
		w.Eq(ColumnAuthorID, f.AuthorID)
	}
	return w
}

func scanBook(rs rowScanner) (Book, error) {
	var b Book
	err := rs.Scan(&b.ID, &b.AuthorID, &b.CategoryID, &b.Title, &b.PublicationYear, &b.ISBN)
	return b, err
}

// BookModel provides the queries over the books table.
type BookModel struct {
	exec Executor
}

// Insert publishes a new book stamped with the current year and a fresh ISBN.
func (m BookModel) Insert(ctx context.Context, in CreateBookInput) (*Book, error) {
	stmt := `
		INSERT INTO books (author_id, title, category_id, publication_year, isbn)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + TableBooks.selectList()

	return queryRow(ctx, m.exec, scanBook, stmt,
		in.AuthorID,
		in.Title,
		in.CategoryID,
		time.Now().Year(),
		GenerateISBN(),
	)
}

// Get retrieves a single book by its primary key.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(ctx context.Context, id int64) (*Book, error) {
	return getRow(ctx, m.exec, scanBook, TableBooks, id)
}

// GetAll returns one page of the books matching filter.
func (m BookModel) GetAll(ctx context.Context, filter BookFilter, filters Filters) (RowSet[Book], error) {
	return list(ctx, m.exec, scanBook, TableBooks, filter.where(), filters)
}

// Delete removes the book with the given id.
// Returns ErrRecordNotFound if no matching record exists.
func (m BookModel) Delete(ctx context.Context, id int64) error {
	_, err := deleteRow(ctx, m.exec, scanBook, TableBooks, id)
	return err
}
