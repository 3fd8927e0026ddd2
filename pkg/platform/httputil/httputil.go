// Package httputil centralizes JSON encoding, request decoding, and domain
// error translation for all HTTP handlers so the response envelope stays
// uniform across features.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/pagination"
)

type dataEnvelope struct {
	Data   any                `json:"data"`
	Paging *pagination.Paging `json:"paging,omitempty"`
}

type errorEnvelope struct {
	Errors string `json:"errors"`
}

// Decode parses a JSON request body into dst. A malformed body is reported as
// a bad request domain error.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

// WriteData writes a {"data": ...} success envelope.
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataEnvelope{Data: data})
}

// WritePage writes a {"data": ..., "paging": ...} success envelope.
func WritePage(w http.ResponseWriter, status int, data any, paging pagination.Paging) {
	writeJSON(w, status, dataEnvelope{Data: data, Paging: &paging})
}

// WriteError translates a domain error into a {"errors": "<message>"} body
// with the status derived from its code. Unclassified errors become opaque
// 500s so internal details never reach the caller.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var de *dErrors.Error
	if errors.As(err, &de) && de.Code != dErrors.CodeInternal {
		status = dErrors.ToHTTPStatus(de.Code)
		message = de.Message
	}

	writeJSON(w, status, errorEnvelope{Errors: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
