// cmd/api/healthcheck.go
package main

import "net/http"

// healthcheckHandler handles GET /healthcheck with the running version and environment.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	app.successResponse(w, r, "available", map[string]string{
		"status":      "available",
		"environment": app.config.Environment,
		"version":     appVersion,
	})
}
