package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/HendryAvila/assistant-tools/internal/memory"
)

// errorBody is the JSON shape of every error response except 401.
type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// writeMemoryError maps a classified memory error to its status code.
// Internal causes are never written to the response.
func writeMemoryError(w http.ResponseWriter, err error) {
	e := memory.AsError(err, "Internal server error.")

	status := http.StatusInternalServerError
	switch {
	case errors.Is(e, memory.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(e, memory.ErrNotFound):
		status = http.StatusNotFound
	}

	writeJSON(w, status, errorBody{
		Error:   e.Title,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
