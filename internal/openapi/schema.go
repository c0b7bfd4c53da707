package openapi

import "github.com/invopop/jsonschema"

var reflector = &jsonschema.Reflector{
	Anonymous:      true,
	DoNotReference: true,
	ExpandedStruct: true,
}

// SchemaFor reflects v's type into an inline schema. Fields without
// omitempty are listed as required; descriptions come from jsonschema tags.
func SchemaFor(v any) *jsonschema.Schema {
	s := reflector.Reflect(v)
	s.Version = ""
	return s
}

// String is a plain string schema.
func String() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

// Number is a plain number schema.
func Number() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number"}
}

// QueryParam describes a query string parameter.
func QueryParam(name, description string, required bool, schema *jsonschema.Schema) Parameter {
	return Parameter{
		Name:        name,
		In:          "query",
		Description: description,
		Required:    required,
		Schema:      schema,
	}
}

// JSONBody describes a required application/json body with schema.
func JSONBody(schema *jsonschema.Schema) *RequestBody {
	return &RequestBody{
		Required: true,
		Content:  map[string]MediaType{"application/json": {Schema: schema}},
	}
}
