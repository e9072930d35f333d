package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["image"],
  "properties": {
    "image": {"type": "string"},
    "pkgs": {"type": "array", "items": {"type": "string"}},
    "count": {"type": "integer"}
  }
}`

func TestValidateSchemaAccepts(t *testing.T) {
	tree := Mapping{
		"image": String("debian:12"),
		"pkgs":  Sequence{String("vim")},
		"count": Int(2),
	}
	assert.NoError(t, ValidateSchema(tree, []byte(testSchema)))
}

func TestValidateSchemaReportsViolations(t *testing.T) {
	tree := Mapping{"pkgs": Sequence{Int(1)}}

	err := ValidateSchema(tree, []byte(testSchema))
	require.ErrorIs(t, err, ErrSchema)

	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Len(t, serr.Violations, 2)
}
