// cmd/api/errors.go
// This file contains all error-response helpers for the application.
// Every error body has the shape {"message": ..., "error": ...}, where
// "error" is present only when a cause is passed.
package main

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/aoideee/library-catalog/internal/validator"
)

// errorStatuses are the only statuses an error response may carry. 405 and
// 429 come from the router and the rate limiter, never from a handler.
var errorStatuses = map[int]bool{
	http.StatusBadRequest:          true,
	http.StatusUnauthorized:        true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusMethodNotAllowed:    true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
}

// logError logs an internal error at ERROR level with the request method,
// URL and request id for context.
func (app *applicationDependencies) logError(r *http.Request, err error, args ...any) {
	attrs := append([]any{
		"request_method", r.Method,
		"request_url", r.URL.String(),
		"request_id", requestIDFrom(r.Context()),
	}, args...)
	app.logger.Error(err.Error(), attrs...)
}

// errorResponse sends the JSON error envelope. It is the low-level building
// block used by all the specific error helpers below.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string, cause error) {
	if !errorStatuses[status] {
		app.logError(r, errors.Errorf("unexpected error status %d", status))
		status = http.StatusInternalServerError
	}

	env := envelope{"message": message}
	if cause != nil {
		env["error"] = cause.Error()
	}

	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs the cause and sends a 500 with the handler's
// message. Causes reaching here are data-layer sentinels, so the "error"
// field never carries driver details.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, message string, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, message, err)
}

// badRequestResponse sends a 400 Bad Request. cause may be nil.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, message string, cause error) {
	app.errorResponse(w, r, http.StatusBadRequest, message, cause)
}

// failedValidationResponse sends a 400 describing the errors collected by v.
// Missing fields are reported together, ahead of any format errors.
func (app *applicationDependencies) failedValidationResponse(w http.ResponseWriter, r *http.Request, v *validator.Validator) {
	if missing := v.Fields(validator.MsgRequired); len(missing) > 0 {
		app.badRequestResponse(w, r, "Validation Error",
			errors.Errorf("The following fields are required: %s", strings.Join(missing, ", ")))
		return
	}
	if v.Errors["email"] == validator.MsgEmail {
		app.badRequestResponse(w, r, "Invalid email format. Please provide a valid email address.", nil)
		return
	}
	app.badRequestResponse(w, r, "Validation Error", errors.New(v.String()))
}

// invalidPaginationResponse sends the 400 for a page or limit below 1.
func (app *applicationDependencies) invalidPaginationResponse(w http.ResponseWriter, r *http.Request) {
	app.badRequestResponse(w, r, "Page and Limit must be greater than 0.", nil)
}

// conflictResponse sends a 403 for duplicate values and ownership failures.
func (app *applicationDependencies) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusForbidden, message, nil)
}

// notFoundResponse sends a 404 with a resource specific message.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusNotFound, message, nil)
}

// routeNotFoundResponse answers paths no route matches.
func (app *applicationDependencies) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.notFoundResponse(w, r, "the requested resource could not be found")
}

// methodNotAllowedResponse sends a 405 Method Not Allowed error.
func (app *applicationDependencies) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "the " + r.Method + " method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message, nil)
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded", nil)
}
