// Package openapi assembles an OpenAPI 3.0 description of the HTTP surface.
//
// Routes register their operation metadata as they are mounted, so the
// served document always matches the router.
package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
)

// Version is the OpenAPI specification version emitted.
const Version = "3.0.0"

// Sentinel errors for Document.Add.
var (
	ErrDuplicateRoute     = errors.New("openapi: route already described")
	ErrDuplicateOperation = errors.New("openapi: operationId already used")
	ErrMissingOperationID = errors.New("openapi: operationId is empty")
)

// Document is the root OpenAPI object.
type Document struct {
	OpenAPI string              `json:"openapi"`
	Info    Info                `json:"info"`
	Paths   map[string]PathItem `json:"paths"`

	mu  sync.RWMutex
	ids map[string]bool
}

// Info describes the API.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// PathItem maps lower-case HTTP methods to operations.
type PathItem map[string]*Operation

// Operation describes one method on one path.
type Operation struct {
	OperationID string              `json:"operationId"`
	Description string              `json:"description,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

// Parameter is a query parameter.
type Parameter struct {
	Name        string             `json:"name"`
	In          string             `json:"in"`
	Description string             `json:"description,omitempty"`
	Required    bool               `json:"required"`
	Schema      *jsonschema.Schema `json:"schema"`
}

// RequestBody describes a JSON request body.
type RequestBody struct {
	Required bool                 `json:"required"`
	Content  map[string]MediaType `json:"content"`
}

// MediaType carries the schema for one content type.
type MediaType struct {
	Schema *jsonschema.Schema `json:"schema"`
}

// Response describes one status code.
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// New creates an empty document.
func New(info Info) *Document {
	return &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]PathItem),
		ids:     make(map[string]bool),
	}
}

// Add describes method on path. Operation ids must be unique across the
// document and each (method, path) may only be described once.
func (d *Document) Add(method, path string, op Operation) error {
	if op.OperationID == "" {
		return fmt.Errorf("%w: %s %s", ErrMissingOperationID, method, path)
	}
	m := strings.ToLower(method)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ids[op.OperationID] {
		return fmt.Errorf("%w: %s", ErrDuplicateOperation, op.OperationID)
	}
	item, ok := d.Paths[path]
	if !ok {
		item = make(PathItem)
		d.Paths[path] = item
	}
	if _, exists := item[m]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, path)
	}
	if op.Responses == nil {
		op.Responses = map[string]Response{"200": {Description: "OK"}}
	}

	item[m] = &op
	d.ids[op.OperationID] = true
	return nil
}

// Operation returns the operation registered for method and path.
func (d *Document) Operation(method, path string) (*Operation, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	op, ok := d.Paths[path][strings.ToLower(method)]
	return op, ok
}

// MarshalJSON encodes the document under the read lock.
func (d *Document) MarshalJSON() ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	type plain struct {
		OpenAPI string              `json:"openapi"`
		Info    Info                `json:"info"`
		Paths   map[string]PathItem `json:"paths"`
	}
	return json.Marshal(plain{OpenAPI: d.OpenAPI, Info: d.Info, Paths: d.Paths})
}

// ServeHTTP writes the document as JSON.
func (d *Document) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(d)
	if err != nil {
		http.Error(w, "failed to encode OpenAPI document", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
