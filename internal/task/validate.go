package task

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaDoc string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded schema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource("tasks.schema.json", strings.NewReader(schemaDoc)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile("tasks.schema.json")
	})
	return schema, schemaErr
}

// validateDocument checks a raw task file document against the embedded
// JSON Schema. If the schema itself fails to compile, validation is skipped
// and the minimal checks in checkFileData are the only guard.
func validateDocument(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return nil
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return flattenSchemaError(ve)
		}
		return err
	}
	return nil
}

// flattenSchemaError drills down to the most specific cause so the user
// sees a single actionable message instead of the whole cause tree.
func flattenSchemaError(ve *jsonschema.ValidationError) error {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
