// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the router wrapped in
// the middleware chain (outermost first):
//
//	recoverPanic → requestID → rateLimit → router
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodPost, "/authors/create", app.createAuthorHandler)
	router.HandlerFunc(http.MethodPatch, "/authors/update/:id", app.updateAuthorHandler)
	router.HandlerFunc(http.MethodGet, "/authors", app.listAuthorsHandler)
	router.HandlerFunc(http.MethodGet, "/authors/:id", app.showAuthorHandler)
	router.HandlerFunc(http.MethodDelete, "/authors/delete/:id", app.deleteAuthorHandler)

	router.HandlerFunc(http.MethodPost, "/books/publish", app.publishBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", app.showBookHandler)
	// httprouter cannot register the static author/category segments next
	// to :id, so /books/author/:author_id and /books/category/:category_id
	// share one pattern and are dispatched on the first segment.
	router.HandlerFunc(http.MethodGet, "/books/:id/:ref_id", app.bookReferenceHandler)
	router.HandlerFunc(http.MethodDelete, "/books/delete/:id", app.deleteBookHandler)

	router.HandlerFunc(http.MethodPost, "/category/create", app.createCategoryHandler)
	router.HandlerFunc(http.MethodGet, "/category/", app.listCategoriesHandler)
	router.HandlerFunc(http.MethodGet, "/category/:id", app.showCategoryHandler)
	router.HandlerFunc(http.MethodPatch, "/category/update/:id", app.updateCategoryHandler)
	router.HandlerFunc(http.MethodDelete, "/category/delete/:id", app.deleteCategoryHandler)

	var handler http.Handler = router
	if app.config.Limiter.Enabled {
		handler = app.rateLimit(handler)
	}
	return app.recoverPanic(app.requestID(handler))
}
