package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/docnav/errors"
)

func TestValidateRule(t *testing.T) {
	testCases := []struct {
		name  string
		rule  VersionRule
		valid bool
	}{
		{"constraint", VersionRule{Set: "5.1", Constraint: ">= 5.0, < 5.3"}, true},
		{"space separated constraint", VersionRule{Set: "5.1", Constraint: ">= 5.0 < 5.3"}, true},
		{"match list", VersionRule{Set: "5.3", Match: []string{"master"}}, true},
		{"missing set", VersionRule{Constraint: ">= 5.0"}, false},
		{"neither constraint nor match", VersionRule{Set: "5.1"}, false},
		{"bad constraint", VersionRule{Set: "5.1", Constraint: "about five"}, false},
		{"blank match", VersionRule{Set: "5.1", Match: []string{" "}}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRule(tc.rule)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := Default()
	valid.Sources = []Source{{Name: "extra", Path: "/nav/extra.yml"}}
	assert.NoError(t, valid.Validate())

	dup := Default()
	dup.Sources = []Source{
		{Name: "extra", Path: "/nav/a.yml"},
		{Name: "extra", Path: "/nav/b.yml"},
	}
	err := dup.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))

	noDefault := &Config{}
	assert.True(t, errors.Is(noDefault.Validate(), errors.ErrCodeConfigValidation))

	badRule := Default()
	badRule.Versions = []VersionRule{{Set: "5.1", Constraint: "nope"}}
	assert.True(t, errors.Is(badRule.Validate(), errors.ErrCodeConfigValidation))
}

func TestSetFor(t *testing.T) {
	cfg := Default()
	cfg.Versions = append([]VersionRule{{Set: "zh-dev", Match: []string{"master", "5.3"}}}, cfg.Versions...)

	testCases := []struct {
		version string
		want    string
	}{
		{"5.0", "5.1"},
		{"5.1", "5.1"},
		{"5.2.45", "5.1"},
		{"5.3", "zh-dev"},
		{"5.4", "5.3"},
		{"5.5", "5.3"},
		{"master", "zh-dev"},
		{"4.2", DefaultSetName},
		{"nightly", DefaultSetName},
	}

	for _, tc := range testCases {
		t.Run(tc.version, func(t *testing.T) {
			assert.Equal(t, tc.want, cfg.SetFor(tc.version))
		})
	}
}
