package yamldocument

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "mem://schemas/document.json"

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "tolerance": {"type": "number", "exclusiveMinimum": 0},
    "locations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "at"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "at": {"type": "string", "minLength": 1},
          "expect_length": {"type": "number"}
        }
      }
    },
    "midpoints": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "x", "y"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "x": {"type": "string", "minLength": 1},
          "y": {"type": "string", "minLength": 1},
          "expect": {"type": "string", "minLength": 1},
          "expect_error": {"enum": ["wrongDimensions", "cantExist"]}
        },
        "not": {"required": ["expect", "expect_error"]}
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("add document schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// validateSchema checks the raw YAML tree against the document schema.
// The tree is re-encoded as JSON so numbers reach the validator as
// json.Number regardless of how YAML typed them.
func validateSchema(raw any) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}

	return s.Validate(doc)
}
