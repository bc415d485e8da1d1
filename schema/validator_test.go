package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "page_size": {"type": "integer", "minimum": 1}
  },
  "additionalProperties": false
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator("test.json", []byte(testSchema))
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{"page_size": 10}))

	err = v.Validate(map[string]interface{}{"page_size": 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/page_size")

	err = v.Validate(map[string]interface{}{"pagesize": 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestNewValidatorRejectsBrokenSchema(t *testing.T) {
	_, err := NewValidator("broken.json", []byte(`{"type": `))
	assert.Error(t, err)
}
