// cmd/api/authors.go
package main

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/aoideee/library-catalog/internal/data"
	"github.com/aoideee/library-catalog/internal/validator"
)

// createAuthorHandler handles POST /authors/create. The email must not be
// in use by another author.
func (app *applicationDependencies) createAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var input data.CreateAuthorInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, "Invalid request body.", err)
		return
	}

	v := validator.New()
	if v.Struct(input); !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return
	}

	taken, err := app.models.Authors.EmailExists(r.Context(), input.Email)
	if err != nil {
		app.serverErrorResponse(w, r, "An error occurred while creating the author.", err)
		return
	}
	if taken {
		app.conflictResponse(w, r, "An author with the provided email address already exists.")
		return
	}

	author, err := app.models.Authors.Insert(r.Context(), input)
	if err != nil {
		switch {
		// Another request inserted the same email after the check above.
		case errors.Is(err, data.ErrDuplicate):
			app.conflictResponse(w, r, "An author with the provided email address already exists.")
		default:
			app.serverErrorResponse(w, r, "An error occurred while creating the author.", err)
		}
		return
	}

	app.successResponse(w, r, "Author created successfully.", author)
}

// updateAuthorHandler handles PATCH /authors/update/:id. Only the fields
// present in the body change; updated_at is always refreshed.
func (app *applicationDependencies) updateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, "Author ID is required.", err)
		return
	}

	var input data.UpdateAuthorInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, "Invalid request body.", err)
		return
	}
	if input.Patch().Empty() {
		app.badRequestResponse(w, r, "No fields provided for update.", nil)
		return
	}

	v := validator.New()
	if v.Struct(input); !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return
	}

	author, err := app.models.Authors.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Author not found or no changes were made.")
		case errors.Is(err, data.ErrDuplicate):
			app.conflictResponse(w, r, "An author with the provided email address already exists.")
		default:
			app.serverErrorResponse(w, r, "An error occurred while updating the author.", err)
		}
		return
	}

	app.successResponse(w, r, "Author updated successfully.", author)
}

// listAuthorsHandler handles GET /authors.
func (app *applicationDependencies) listAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	authors, err := app.models.Authors.GetAll(r.Context(), app.readFilters(r))
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidPagination):
			app.invalidPaginationResponse(w, r)
		default:
			app.serverErrorResponse(w, r, "An error occurred while fetching authors.", err)
		}
		return
	}

	app.successResponse(w, r, "Authors fetched successfully.", authors.Rows)
}

// showAuthorHandler handles GET /authors/:id.
func (app *applicationDependencies) showAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, "Author ID is required.", err)
		return
	}

	author, err := app.models.Authors.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Author not found.")
		default:
			app.serverErrorResponse(w, r, "An error occurred while fetching the author.", err)
		}
		return
	}

	app.successResponse(w, r, "Author fetched successfully.", author)
}

// deleteAuthorHandler handles DELETE /authors/delete/:id and responds with
// the deleted row. Authors that still have books cannot be deleted.
func (app *applicationDependencies) deleteAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, "Author ID is required.", err)
		return
	}

	author, err := app.models.Authors.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, fmt.Sprintf("No author found with ID %d.", id))
		case errors.Is(err, data.ErrForeignKey):
			app.conflictResponse(w, r, "The author still has published books.")
		default:
			app.serverErrorResponse(w, r, "An error occurred while deleting the author.", err)
		}
		return
	}

	app.successResponse(w, r, fmt.Sprintf("Author with ID %d was deleted successfully.", id), author)
}
