package clinical

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// earMeasurements is the schema fragment for one conduction map:
// frequency keys (as strings, per JSON) to numeric-or-null thresholds.
var earMeasurements = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": []any{"number", "null"},
	},
}

// testsSchema constrains the model's response: an array of test objects,
// each with a date and at least the two air-conduction maps.
var testsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"test_date", "right", "left"},
		"properties": map[string]any{
			"test_date":       map[string]any{"type": []any{"string", "null"}},
			"location":        map[string]any{"type": []any{"string", "null"}},
			"technician_name": map[string]any{"type": []any{"string", "null"}},
			"device_name":     map[string]any{"type": []any{"string", "null"}},
			"notes":           map[string]any{"type": []any{"string", "null"}},
			"right":           earMeasurements,
			"left":            earMeasurements,
			"right_bc":        earMeasurements,
			"left_bc":         earMeasurements,
		},
	},
}

// validateTestsJSON validates raw response data against testsSchema.
func validateTestsJSON(data []byte) error {
	b, err := json.Marshal(testsSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}
	return nil
}
