package main

import (
	"database/sql/driver"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishBook(t *testing.T) {
	t.Parallel()

	const insert = "INSERT INTO books (author_id, title, category_id, publication_year, isbn) VALUES ($1, $2, $3, $4, $5) RETURNING " + bookColumns

	t.Run("published", func(t *testing.T) {
		t.Parallel()

		app, mock := newTestApp(t)
		mock.ExpectQuery(insert).
			WithArgs(3, "Dune", 5, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(bookRow).AddRow(1, 3, 5, "Dune", 2026, "9780306406157"))

		rec, res := do(t, app.routes(), http.MethodPost, "/books/publish", `{"author_id":3,"title":"Dune","category_id":5}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Book published successfully", res.Message)
		assert.Contains(t, string(res.Data), `"isbn": "9780306406157"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()

		app, mock := newTestApp(t)
		mock.ExpectQuery(insert).
			WithArgs(99, "Dune", 5, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23503"})

		rec, res := do(t, app.routes(), http.MethodPost, "/books/publish", `{"author_id":99,"title":"Dune","category_id":5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The referenced author or category does not exist.", res.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		app, mock := newTestApp(t)
		rec, res := do(t, app.routes(), http.MethodPost, "/books/publish", `{"title":"Dune"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation Error", res.Message)
		require.NotNil(t, res.Error)
		assert.Equal(t, "The following fields are required: author_id, category_id", *res.Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		target  string
		stmt    string
		args    []driver.Value
		rows    *sqlmock.Rows
		status  int
		message string
	}{
		"by category query": {
			target:  "/books?category_id=5",
			stmt:    "SELECT " + bookColumns + " FROM books WHERE category_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3",
			args:    []driver.Value{5, 10, 0},
			rows:    sqlmock.NewRows(bookRow).AddRow(1, 3, 5, "Dune", 2026, "9780306406157"),
			status:  http.StatusOK,
			message: "Books fetched successfully",
		},
		"sorted by title": {
			target:  "/books?sortBy=title&order=DESC&page=2&limit=3",
			stmt:    "SELECT " + bookColumns + " FROM books ORDER BY title DESC, id ASC LIMIT $1 OFFSET $2",
			args:    []driver.Value{3, 3},
			rows:    sqlmock.NewRows(bookRow).AddRow(1, 3, 5, "Dune", 2026, "9780306406157"),
			status:  http.StatusOK,
			message: "Books fetched successfully",
		},
		"empty page": {
			target:  "/books",
			stmt:    "SELECT " + bookColumns + " FROM books ORDER BY id ASC LIMIT $1 OFFSET $2",
			args:    []driver.Value{10, 0},
			rows:    sqlmock.NewRows(bookRow),
			status:  http.StatusNotFound,
			message: "No books found.",
		},
		"by author path": {
			target:  "/books/author/3",
			stmt:    "SELECT " + bookColumns + " FROM books WHERE author_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3",
			args:    []driver.Value{3, 10, 0},
			rows:    sqlmock.NewRows(bookRow).AddRow(1, 3, 5, "Dune", 2026, "9780306406157"),
			status:  http.StatusOK,
			message: "Books fetched successfully.",
		},
		"by author path without books": {
			target:  "/books/author/3",
			stmt:    "SELECT " + bookColumns + " FROM books WHERE author_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3",
			args:    []driver.Value{3, 10, 0},
			rows:    sqlmock.NewRows(bookRow),
			status:  http.StatusNotFound,
			message: "No books found for the given author.",
		},
		"by category path without books": {
			target:  "/books/category/4",
			stmt:    "SELECT " + bookColumns + " FROM books WHERE category_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3",
			args:    []driver.Value{4, 10, 0},
			rows:    sqlmock.NewRows(bookRow),
			status:  http.StatusNotFound,
			message: "No books found for the given category.",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app, mock := newTestApp(t)
			mock.ExpectQuery(tc.stmt).WithArgs(tc.args...).WillReturnRows(tc.rows)

			rec, res := do(t, app.routes(), http.MethodGet, tc.target, "")
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, res.Message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListBooks_rejectedBeforeQuery(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		target  string
		status  int
		message string
	}{
		"zero page":         {target: "/books?page=0", status: http.StatusBadRequest, message: "Page and Limit must be greater than 0."},
		"non-numeric limit": {target: "/books?limit=ten", status: http.StatusBadRequest, message: "Page and Limit must be greater than 0."},
		"bad category id":   {target: "/books?category_id=abc", status: http.StatusBadRequest, message: "Validation Error"},
		"bad author path":   {target: "/books/author/x", status: http.StatusBadRequest, message: "Author ID is required."},
		"unknown reference": {target: "/books/unknown/3", status: http.StatusNotFound, message: "the requested resource could not be found"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app, mock := newTestApp(t)
			rec, res := do(t, app.routes(), http.MethodGet, tc.target, "")
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, res.Message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestShowBook_notFound(t *testing.T) {
	t.Parallel()

	app, mock := newTestApp(t)
	mock.ExpectQuery("SELECT "+bookColumns+" FROM books WHERE id = $1").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(bookRow))

	rec, res := do(t, app.routes(), http.MethodGet, "/books/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Book not found.", res.Message)
	assert.Nil(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	const get = "SELECT " + bookColumns + " FROM books WHERE id = $1"

	t.Run("another author", func(t *testing.T) {
		t.Parallel()

		app, mock := newTestApp(t)
		mock.ExpectQuery(get).WithArgs(7).
			WillReturnRows(sqlmock.NewRows(bookRow).AddRow(7, 1, 2, "Emma", 2026, "9781234567897"))

		rec, res := do(t, app.routes(), http.MethodDelete, "/books/delete/7", `{"author_id":2}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You are not authorized to delete this book.", res.Message)
		// No DELETE was expected, so none may have been issued.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("own book", func(t *testing.T) {
		t.Parallel()

		app, mock := newTestApp(t)
		mock.ExpectQuery(get).WithArgs(7).
			WillReturnRows(sqlmock.NewRows(bookRow).AddRow(7, 1, 2, "Emma", 2026, "9781234567897"))
		mock.ExpectQuery("DELETE FROM books WHERE id = $1 RETURNING "+bookColumns).WithArgs(7).
			WillReturnRows(sqlmock.NewRows(bookRow).AddRow(7, 1, 2, "Emma", 2026, "9781234567897"))

		rec, res := do(t, app.routes(), http.MethodDelete, "/books/delete/7", `{"author_id":1}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Book with ID 7 was deleted successfully.", res.Message)
		assert.Nil(t, res.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing book", func(t *testing.T) {
		t.Parallel()

		app, mock := newTestApp(t)
		mock.ExpectQuery(get).WithArgs(7).WillReturnRows(sqlmock.NewRows(bookRow))

		rec, res := do(t, app.routes(), http.MethodDelete, "/books/delete/7", `{"author_id":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Book with ID 7 not found.", res.Message)
	})

	t.Run("missing author id", func(t *testing.T) {
		t.Parallel()

		app, mock := newTestApp(t)
		rec, res := do(t, app.routes(), http.MethodDelete, "/books/delete/7", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Book ID and Author ID are required.", res.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
