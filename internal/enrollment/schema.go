package enrollment

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema describes the persisted enrollment record. The loaded
// record is validated against it before being accepted; anything that
// fails validation is discarded in favor of an empty mapping.
var recordSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type":     "object",
		"required": []any{"courseId", "progress", "completedLessonIds", "enrolledAt"},
		"properties": map[string]any{
			"courseId": map[string]any{"type": "string"},
			"progress": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"completedLessonIds": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"enrolledAt": map[string]any{"type": "string"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledRecordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://enrollments.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// decodeRecord parses and validates a persisted enrollment record.
func decodeRecord(data []byte) (map[string]Enrollment, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledRecordSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var records map[string]Enrollment
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode enrollments: %w", err)
	}
	if records == nil {
		records = make(map[string]Enrollment)
	}
	return records, nil
}
