package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeConfigs(t *testing.T) {
	base := &Config{
		Version:    "1.0",
		DefaultSet: "5.1",
		Versions:   DefaultVersionRules(),
		Sources: []Source{
			{Name: "a", Path: "/base/a.yml"},
			{Name: "b", Path: "/base/b.yml"},
		},
		Extensions: map[string]interface{}{
			"logging": map[string]interface{}{"level": "info", "report_caller": true},
			"other":   "keep",
		},
	}
	override := &Config{
		Sources: []Source{
			{Name: "b", Path: "/override/b.yml"},
			{Name: "c", Path: "/override/c.yml"},
		},
		Extensions: map[string]interface{}{
			"logging": map[string]interface{}{"level": "debug"},
		},
	}

	merged := mergeConfigs(base, override)

	assert.Equal(t, "1.0", merged.Version)
	assert.Equal(t, "5.1", merged.DefaultSet)
	assert.Equal(t, DefaultVersionRules(), merged.Versions)
	assert.Equal(t, []Source{
		{Name: "a", Path: "/base/a.yml"},
		{Name: "b", Path: "/override/b.yml"},
		{Name: "c", Path: "/override/c.yml"},
	}, merged.Sources)
	assert.Equal(t, map[string]interface{}{"level": "debug", "report_caller": true}, merged.Extensions["logging"])
	assert.Equal(t, "keep", merged.Extensions["other"])

	// Inputs are not modified.
	assert.Equal(t, "/base/b.yml", base.Sources[1].Path)
	assert.Equal(t, map[string]interface{}{"level": "info", "report_caller": true}, base.Extensions["logging"])
}

func TestMergeConfigsReplacesVersionRules(t *testing.T) {
	base := &Config{Versions: DefaultVersionRules()}
	override := &Config{Versions: []VersionRule{{Set: "5.3", Match: []string{"master"}}}}

	merged := mergeConfigs(base, override)
	assert.Equal(t, override.Versions, merged.Versions)
	assert.Len(t, base.Versions, 2)
}
