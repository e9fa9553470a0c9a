// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/aoideee/library-catalog/internal/data"
)

// envelope is the top-level JSON wrapper used for all API responses:
// {"message": ..., "data": ...} on success, {"message": ..., "error": ...} on failure.
type envelope map[string]any

// errBadID is returned by readIDParam for a missing or non-positive id.
var errBadID = errors.New("id must be a positive integer")

// readIDParam extracts the named httprouter parameter as a positive integer.
func (app *applicationDependencies) readIDParam(r *http.Request, name string) (int64, error) {
	params := httprouter.ParamsFromContext(r.Context())
	return parseID(params.ByName(name))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}

// readFilters resolves the page, limit, sortBy and order query parameters of r.
func (app *applicationDependencies) readFilters(r *http.Request) data.Filters {
	return data.ParseFilters(r.URL.Query(), data.Filters{})
}

// successResponse sends {"message", "data"} with 200 OK. A nil payload is left out.
func (app *applicationDependencies) successResponse(w http.ResponseWriter, r *http.Request, message string, payload any) {
	env := envelope{"message": message}
	if payload != nil {
		env["data"] = payload
	}
	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, "An error occurred while writing the response.", err)
	}
}

// writeJSON marshals data to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return errors.Wrap(err, "encode response")
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit, rejects unknown fields (so a patch can
// only name known columns), and ensures the body holds exactly one value.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("body must not be empty")
		}
		return errors.Wrap(err, "decode body")
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}
