package httpapi

import (
	"net/http"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/HendryAvila/assistant-tools/internal/openapi"
	"github.com/HendryAvila/assistant-tools/internal/utility"
)

func (s *Server) routes() error {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.Handle("GET /openapi.json", s.doc)

	userParam := func(desc string, required bool) openapi.Parameter {
		return openapi.QueryParam("user_id", desc, required, openapi.String())
	}

	routes := []struct {
		method string
		path   string
		op     openapi.Operation
		h      http.HandlerFunc
	}{
		{http.MethodGet, "/add", openapi.Operation{
			OperationID: "add",
			Description: utility.AddDescription,
			Parameters: []openapi.Parameter{
				openapi.QueryParam("a", "The first number to add.", true, openapi.Number()),
				openapi.QueryParam("b", "The second number to add.", true, openapi.Number()),
			},
		}, s.handleAdd},
		{http.MethodGet, "/datetime", openapi.Operation{
			OperationID: "datetime",
			Description: utility.DatetimeDescription,
		}, s.handleDatetime},
		{http.MethodPost, "/memories", openapi.Operation{
			OperationID: "remember",
			Description: memory.RememberDescription,
			RequestBody: openapi.JSONBody(openapi.SchemaFor(&memory.RememberParams{})),
			Responses: map[string]openapi.Response{
				"201": {Description: "Memory saved."},
				"400": {Description: "The memory is missing."},
			},
		}, s.handleRemember},
		{http.MethodGet, "/memories", openapi.Operation{
			OperationID: "get-memories",
			Description: memory.ListDescription,
			Parameters: []openapi.Parameter{
				userParam("The ID of the user to retrieve memories for.", false),
			},
		}, s.handleList},
		{http.MethodDelete, "/memories", openapi.Operation{
			OperationID: "forget",
			Description: memory.ForgetDescription,
			Parameters: []openapi.Parameter{
				userParam("The ID of the user whose memory is to be deleted.", false),
				openapi.QueryParam("memory_id", "The ID of the memory to delete.", true, openapi.String()),
			},
			Responses: map[string]openapi.Response{
				"200": {Description: "Memory deleted."},
				"400": {Description: "The memory_id is missing."},
				"404": {Description: "No matching memory."},
			},
		}, s.handleForget},
		{http.MethodDelete, "/memories/all", openapi.Operation{
			OperationID: "forget-all",
			Description: memory.ForgetAllDescription,
			Parameters: []openapi.Parameter{
				userParam("The ID of the user whose memories are to be deleted.", true),
			},
			Responses: map[string]openapi.Response{
				"200": {Description: "Memories deleted."},
				"400": {Description: "The user_id is missing."},
				"404": {Description: "The user has no memories."},
			},
		}, s.handleForgetAll},
	}

	for _, r := range routes {
		if err := s.route(r.method, r.path, r.op, r.h); err != nil {
			return err
		}
	}
	return nil
}
