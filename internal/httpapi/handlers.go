package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/HendryAvila/assistant-tools/internal/utility"
)

const rootMessage = "AI Assistant Tools: It works!"

const usageAdd = `This API expects two numbers in the query string. For example: /add?a=2&b=3.`

type rememberResponse struct {
	Message string `json:"message"`
	memory.Record
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, rootMessage)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sum, err := utility.AddStrings(q.Get("a"), q.Get("b"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   "Invalid number.",
			Code:    "invalid_number",
			Message: err.Error(),
			Details: usageAdd,
		})
		return
	}
	writeText(w, http.StatusOK, sum)
}

func (s *Server) handleDatetime(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, s.clock.Now())
}

func (s *Server) handleRemember(w http.ResponseWriter, r *http.Request) {
	var p memory.RememberParams
	if err := decodeJSON(w, r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   "Invalid JSON body.",
			Code:    "invalid_json",
			Message: err.Error(),
			Details: `This API expects a JSON object with string fields. For example: { "user_id": "123", "memory": "Remember this." }.`,
		})
		return
	}

	rec, err := s.svc.Remember(r.Context(), p)
	if err != nil {
		writeMemoryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rememberResponse{
		Message: "Memory saved successfully.",
		Record:  rec,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.svc.List(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeMemoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleForget(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := s.svc.Forget(r.Context(), q.Get("user_id"), q.Get("memory_id")); err != nil {
		writeMemoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Memory deleted successfully."})
}

func (s *Server) handleForgetAll(w http.ResponseWriter, r *http.Request) {
	if _, err := s.svc.ForgetAll(r.Context(), r.URL.Query().Get("user_id")); err != nil {
		writeMemoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "All memories deleted successfully."})
}

// decodeJSON reads a JSON object into v. An empty body leaves v untouched
// so that required-field validation reports the missing field.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("decode request body: %w", err)
}
