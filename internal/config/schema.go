package config

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateSchema checks a merged tree against a JSON schema document.
func ValidateSchema(tree Mapping, schema []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(tree.Interface()),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	serr := &SchemaError{}
	for _, desc := range result.Errors() {
		serr.Violations = append(serr.Violations, desc.String())
	}
	return serr
}
