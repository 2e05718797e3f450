package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "object", raw["type"])
	_, restricted := raw["additionalProperties"]
	assert.False(t, restricted, "top-level extension keys must be allowed")

	props, ok := raw["properties"].(map[string]interface{})
	require.True(t, ok, "expected properties to be defined")
	for _, key := range []string{"version", "default_set", "versions", "sources"} {
		assert.Contains(t, props, key)
	}
	assert.NotContains(t, props, "Extensions")
}

func TestSchemaValidatorAcceptsDefaults(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{
		"default_set": "5.3",
		"versions": []interface{}{
			map[string]interface{}{"set": "5.1", "constraint": ">= 5.0, < 5.3"},
		},
		"logging": map[string]interface{}{"level": "debug"},
	}))
}
