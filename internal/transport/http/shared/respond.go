// Package shared centralizes JSON response and domain error rendering so
// every handler emits the same envelope.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "growthsphere/pkg/domain-errors"
)

// ErrorResponse is the JSON error envelope. Details carries field-path
// qualified validation messages and is omitted otherwise.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the HTTP error envelope.
// Non-domain errors are rendered as opaque 500s so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	var de *dErrors.DomainError
	if !errors.As(err, &de) {
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   string(dErrors.CodeInternal),
			Message: "internal server error",
		})
		return
	}
	WriteJSON(w, dErrors.ToHTTPStatus(de.Code), ErrorResponse{
		Error:   string(de.Code),
		Message: de.Message,
		Details: de.Fields,
	})
}
