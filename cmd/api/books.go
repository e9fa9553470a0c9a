// cmd/api/books.go
package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/aoideee/library-catalog/internal/data"
	"github.com/aoideee/library-catalog/internal/validator"
)

// publishBookHandler handles POST /books/publish. The publication year and
// ISBN are assigned by the server.
func (app *applicationDependencies) publishBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.CreateBookInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, "Invalid request body.", err)
		return
	}

	v := validator.New()
	if v.Struct(input); !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return
	}

	book, err := app.models.Books.Insert(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrForeignKey):
			app.badRequestResponse(w, r, "The referenced author or category does not exist.", nil)
		default:
			app.serverErrorResponse(w, r, "An error occurred while publishing the book.", err)
		}
		return
	}

	app.successResponse(w, r, "Book published successfully", book)
}

// listBooksHandler handles GET /books with the optional category_id and
// author_id filters.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	v := validator.New()
	filter := data.BookFilter{
		CategoryID: readOptionalID(qs, "category_id", v),
		AuthorID:   readOptionalID(qs, "author_id", v),
	}
	if !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return
	}

	app.listBooks(w, r, filter, "No books found.", "Books fetched successfully")
}

// readOptionalID returns the positive integer query value of key, or 0 when
// the key is absent. Malformed values are recorded on v.
func readOptionalID(qs url.Values, key string, v *validator.Validator) int64 {
	s := qs.Get(key)
	if s == "" {
		return 0
	}
	id, err := parseID(s)
	v.Check(err == nil, key, "must be a positive integer")
	return id
}

// bookReferenceHandler dispatches GET /books/author/:author_id and
// GET /books/category/:category_id.
func (app *applicationDependencies) bookReferenceHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	switch params.ByName("id") {
	case "author":
		app.listBooksByAuthorHandler(w, r)
	case "category":
		app.listBooksByCategoryHandler(w, r)
	default:
		app.routeNotFoundResponse(w, r)
	}
}

func (app *applicationDependencies) listBooksByAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "ref_id")
	if err != nil {
		app.badRequestResponse(w, r, "Author ID is required.", err)
		return
	}
	app.listBooks(w, r, data.BookFilter{AuthorID: id}, "No books found for the given author.", "Books fetched successfully.")
}

func (app *applicationDependencies) listBooksByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "ref_id")
	if err != nil {
		app.badRequestResponse(w, r, "Category ID is required.", err)
		return
	}
	app.listBooks(w, r, data.BookFilter{CategoryID: id}, "No books found for the given category.", "Books fetched successfully.")
}

// listBooks runs a filtered book list. Unlike authors and categories, an
// empty book page is a 404 with notFound as the message.
func (app *applicationDependencies) listBooks(w http.ResponseWriter, r *http.Request, filter data.BookFilter, notFound, success string) {
	books, err := app.models.Books.GetAll(r.Context(), filter, app.readFilters(r))
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidPagination):
			app.invalidPaginationResponse(w, r)
		default:
			app.serverErrorResponse(w, r, "An error occurred while fetching books.", err)
		}
		return
	}
	if books.Count == 0 {
		app.notFoundResponse(w, r, notFound)
		return
	}

	app.successResponse(w, r, success, books.Rows)
}

// showBookHandler handles GET /books/:id.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, "Book ID is required.", err)
		return
	}

	book, err := app.models.Books.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Book not found.")
		default:
			app.serverErrorResponse(w, r, "An error occurred while fetching the book.", err)
		}
		return
	}

	app.successResponse(w, r, "Book fetched successfully.", book)
}

// deleteBookHandler handles DELETE /books/delete/:id. The body must name
// the book's author.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, idErr := app.readIDParam(r, "id")

	var input data.DeleteBookInput
	bodyErr := app.readJSON(w, r, &input)
	if idErr != nil || bodyErr != nil || input.AuthorID < 1 {
		app.badRequestResponse(w, r, "Book ID and Author ID are required.", nil)
		return
	}

	book, err := app.models.Books.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, fmt.Sprintf("Book with ID %d not found.", id))
		default:
			app.serverErrorResponse(w, r, "An error occurred while deleting the book.", err)
		}
		return
	}

	if book.AuthorID != input.AuthorID {
		app.conflictResponse(w, r, "You are not authorized to delete this book.")
		return
	}

	err = app.models.Books.Delete(r.Context(), id)
	if err != nil {
		switch {
		// The book disappeared between the lookup and the delete.
		case errors.Is(err, data.ErrRecordNotFound):
			app.serverErrorResponse(w, r, "Failed to delete the book.", err)
		default:
			app.serverErrorResponse(w, r, "An error occurred while deleting the book.", err)
		}
		return
	}

	app.successResponse(w, r, fmt.Sprintf("Book with ID %d was deleted successfully.", id), nil)
}
