package openapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HendryAvila/assistant-tools/internal/openapi"
)

type sampleBody struct {
	UserID string `json:"user_id,omitempty" jsonschema:"description=Who."`
	Memory string `json:"memory" jsonschema:"description=What."`
}

func newDoc() *openapi.Document {
	return openapi.New(openapi.Info{Title: "T", Description: "D", Version: "1.0.0"})
}

func TestAdd_Duplicates(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		op      openapi.Operation
		wantErr error
	}{
		{"same route", "GET", "/x", openapi.Operation{OperationID: "other"}, openapi.ErrDuplicateRoute},
		{"same id", "POST", "/y", openapi.Operation{OperationID: "first"}, openapi.ErrDuplicateOperation},
		{"missing id", "PUT", "/z", openapi.Operation{}, openapi.ErrMissingOperationID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newDoc()
			if err := doc.Add("GET", "/x", openapi.Operation{OperationID: "first"}); err != nil {
				t.Fatalf("first Add() error: %v", err)
			}
			err := doc.Add(tt.method, tt.path, tt.op)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAdd_SamePathDifferentMethods(t *testing.T) {
	doc := newDoc()
	if err := doc.Add("GET", "/memories", openapi.Operation{OperationID: "get-memories"}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Add("DELETE", "/memories", openapi.Operation{OperationID: "forget"}); err != nil {
		t.Fatalf("Add() for second method error: %v", err)
	}

	op, ok := doc.Operation("delete", "/memories")
	if !ok || op.OperationID != "forget" {
		t.Errorf("Operation(delete) = %+v, %v", op, ok)
	}
	if _, ok := doc.Paths["/memories"]["get"].Responses["200"]; !ok {
		t.Error("default 200 response not filled in")
	}
}

func TestServeHTTP_Document(t *testing.T) {
	doc := newDoc()
	err := doc.Add("POST", "/memories", openapi.Operation{
		OperationID: "remember",
		Description: "Remember things.",
		RequestBody: openapi.JSONBody(openapi.SchemaFor(&sampleBody{})),
	})
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Add("GET", "/add", openapi.Operation{
		OperationID: "add",
		Parameters: []openapi.Parameter{
			openapi.QueryParam("a", "The first number to add.", true, openapi.Number()),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	doc.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			OperationID string `json:"operationId"`
			Parameters  []struct {
				Name     string         `json:"name"`
				In       string         `json:"in"`
				Required bool           `json:"required"`
				Schema   map[string]any `json:"schema"`
			} `json:"parameters"`
			RequestBody struct {
				Required bool `json:"required"`
				Content  map[string]struct {
					Schema struct {
						Type       string                    `json:"type"`
						Required   []string                  `json:"required"`
						Properties map[string]map[string]any `json:"properties"`
					} `json:"schema"`
				} `json:"content"`
			} `json:"requestBody"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, rec.Body.String())
	}

	if got.OpenAPI != "3.0.0" {
		t.Errorf("openapi = %q, want 3.0.0", got.OpenAPI)
	}
	if got.Info.Title != "T" {
		t.Errorf("info.title = %q", got.Info.Title)
	}

	post := got.Paths["/memories"]["post"]
	if post.OperationID != "remember" {
		t.Errorf("operationId = %q, want remember", post.OperationID)
	}
	schema := post.RequestBody.Content["application/json"].Schema
	if schema.Type != "object" {
		t.Errorf("body schema type = %q, want object", schema.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "memory" {
		t.Errorf("required = %v, want [memory]", schema.Required)
	}
	if schema.Properties["user_id"]["description"] != "Who." {
		t.Errorf("user_id description = %v", schema.Properties["user_id"]["description"])
	}

	params := got.Paths["/add"]["get"].Parameters
	if len(params) != 1 || params[0].Name != "a" || params[0].In != "query" || !params[0].Required {
		t.Errorf("parameters = %+v", params)
	}
	if params[0].Schema["type"] != "number" {
		t.Errorf("param schema = %v, want number", params[0].Schema)
	}
}

func TestSchemaFor_NoSchemaVersionOrID(t *testing.T) {
	data, err := json.Marshal(openapi.SchemaFor(&sampleBody{}))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["$schema"]; ok {
		t.Error("inline schema should not carry $schema")
	}
	if _, ok := m["$id"]; ok {
		t.Error("inline schema should not carry $id")
	}
}
