package api

import (
	"context"
	"encoding/json"

	"github.com/qri-io/jsonschema"
)

// Registration and history payloads are checked against compiled JSON schemas
// before decoding, so absent and empty fields fail the same way.

const workerCreateSchemaJSON = `{
	"type": "object",
	"required": ["name", "number", "location", "skill", "adhaar_id"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"number": {"type": "string", "minLength": 1},
		"location": {"type": "string", "minLength": 1},
		"skill": {"type": "string", "minLength": 1},
		"adhaar_id": {"type": "string", "minLength": 1}
	}
}`

const customerCreateSchemaJSON = `{
	"type": "object",
	"required": ["name", "number", "location", "adhaar_id"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"number": {"type": "string", "minLength": 1},
		"location": {"type": "string", "minLength": 1},
		"adhaar_id": {"type": "string", "minLength": 1}
	}
}`

const historyCreateSchemaJSON = `{
	"type": "object",
	"required": ["job_title", "wage"],
	"properties": {
		"job_title": {"type": "string", "minLength": 1},
		"wage": {"type": "integer", "minimum": 0}
	}
}`

var (
	workerCreateSchema   = mustSchema(workerCreateSchemaJSON)
	customerCreateSchema = mustSchema(customerCreateSchemaJSON)
	historyCreateSchema  = mustSchema(historyCreateSchemaJSON)
)

func mustSchema(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic(err)
	}
	return rs
}

// validBody reports whether body satisfies the schema. Malformed JSON also
// fails here.
func validBody(ctx context.Context, s *jsonschema.Schema, body []byte) bool {
	verrs, err := s.ValidateBytes(ctx, body)
	return err == nil && len(verrs) == 0
}
