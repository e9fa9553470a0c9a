// cmd/api/categories.go
package main

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/aoideee/library-catalog/internal/data"
	"github.com/aoideee/library-catalog/internal/validator"
)

// errCategoryConflict is reported as the cause of a duplicate category.
var errCategoryConflict = errors.New("Conflict")

// readCategoryInput decodes and validates a category body, writing the
// error response itself when it returns false.
func (app *applicationDependencies) readCategoryInput(w http.ResponseWriter, r *http.Request) (data.CategoryInput, bool) {
	var input data.CategoryInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, "Invalid request body.", err)
		return input, false
	}

	v := validator.New()
	if v.Struct(input); !v.Valid() {
		app.failedValidationResponse(w, r, v)
		return input, false
	}
	return input, true
}

func (app *applicationDependencies) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readCategoryInput(w, r)
	if !ok {
		return
	}

	exists, err := app.models.Categories.Exists(r.Context(), input.Category)
	if err != nil {
		app.serverErrorResponse(w, r, "An error occurred while creating the category.", err)
		return
	}
	if exists {
		app.errorResponse(w, r, http.StatusForbidden, "Category already exists.", errCategoryConflict)
		return
	}

	category, err := app.models.Categories.Insert(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicate):
			app.errorResponse(w, r, http.StatusForbidden, "Category already exists.", errCategoryConflict)
		default:
			app.serverErrorResponse(w, r, "An error occurred while creating the category.", err)
		}
		return
	}

	app.successResponse(w, r, "Category created successfully.", category)
}

func (app *applicationDependencies) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.models.Categories.GetAll(r.Context(), app.readFilters(r))
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidPagination):
			app.invalidPaginationResponse(w, r)
		default:
			app.serverErrorResponse(w, r, "An error occurred while fetching the categories.", err)
		}
		return
	}

	app.successResponse(w, r, "Categories fetched successfully.", categories.Rows)
}

func (app *applicationDependencies) showCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, "Category ID is required.", err)
		return
	}

	category, err := app.models.Categories.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Category not found.")
		default:
			app.serverErrorResponse(w, r, "An error occurred while fetching the category.", err)
		}
		return
	}

	app.successResponse(w, r, "Category fetched successfully.", category)
}

func (app *applicationDependencies) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, "Category ID is required.", err)
		return
	}

	input, ok := app.readCategoryInput(w, r)
	if !ok {
		return
	}

	category, err := app.models.Categories.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Category not found or no changes were made.")
		case errors.Is(err, data.ErrDuplicate):
			app.errorResponse(w, r, http.StatusForbidden, "Category already exists.", errCategoryConflict)
		default:
			app.serverErrorResponse(w, r, "An error occurred while updating the category.", err)
		}
		return
	}

	app.successResponse(w, r, "Category updated successfully.", category)
}

func (app *applicationDependencies) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, "Category ID is required.", err)
		return
	}

	category, err := app.models.Categories.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Category not found or no changes were made.")
		case errors.Is(err, data.ErrForeignKey):
			app.conflictResponse(w, r, "The category still has books.")
		default:
			app.serverErrorResponse(w, r, "An error occurred while deleting the category.", err)
		}
		return
	}

	app.successResponse(w, r, "Category deleted successfully.", category)
}
