package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_ChildFieldsWin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	parent := &Document{
		Path:            "/repo/base.json",
		Runner:          "parent-runner",
		TestEnvironment: "node",
		SetupFiles:      []string{"./parent-setup.js"},
		Reporters:       []ModuleRef{Plain("parent-reporter")},
	}
	child := &Document{
		Path:       "/repo/jest.config.json",
		Preset:     "./base.json",
		Runner:     "child-runner",
		SetupFiles: []string{"./child-setup.js"},
	}

	// --- Act ---
	merged := Merge(child, parent)

	// --- Assert ---
	assert.Equal(t, "/repo/jest.config.json", merged.Path)
	assert.Equal(t, "./base.json", merged.Preset)
	assert.Equal(t, "child-runner", merged.Runner, "fields present in both keep the child's value")
	assert.Equal(t, []string{"./child-setup.js"}, merged.SetupFiles)
	assert.Equal(t, "node", merged.TestEnvironment, "fields present only in the parent are inherited")
	assert.Equal(t, []ModuleRef{Plain("parent-reporter")}, merged.Reporters)
	assert.True(t, merged.Resolved())

	// Inputs are untouched.
	assert.Equal(t, "parent-runner", parent.Runner)
	assert.False(t, child.Resolved())
}

func TestMerge_EmptySliceOverridesParent(t *testing.T) {
	t.Parallel()

	parent := &Document{SetupFiles: []string{"./a.js"}}
	child := &Document{SetupFiles: []string{}}

	merged := Merge(child, parent)
	require.NotNil(t, merged.SetupFiles)
	assert.Empty(t, merged.SetupFiles)
}

func TestMerge_NilParent(t *testing.T) {
	t.Parallel()

	child := &Document{Runner: "r"}
	merged := Merge(child, nil)
	assert.Equal(t, "r", merged.Runner)
	assert.True(t, merged.Resolved())
	assert.NotSame(t, child, merged)
}

func TestIsInternal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want bool
	}{
		{"./preset.json", true},
		{"../shared/preset", true},
		{"/abs/preset.json", true},
		{"ts-jest", false},
		{"@scope/jest-config", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInternal(tt.ref))
		})
	}
}

func TestPresetPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/repo/config/base.json", PresetPath("./config/base.json", "/repo"))
	assert.Equal(t, "/shared/base.json", PresetPath("/shared/base.json", "/repo"))
}

func TestExternalPreset(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ts-jest/jest-preset", ExternalPreset("ts-jest"))
	assert.Equal(t, "@scope/preset/jest-preset", ExternalPreset("@scope/preset"))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	loadErr := &LoadError{Path: "/repo/missing.json", Err: fmt.Errorf("open: %w", ErrNotFound)}
	assert.ErrorIs(t, loadErr, ErrNotFound)
	assert.Contains(t, loadErr.Error(), "/repo/missing.json")

	var target *LoadError
	wrapped := fmt.Errorf("resolving: %w", loadErr)
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "/repo/missing.json", target.Path)

	cycle := &CycleError{Chain: []string{"/a.json", "/b.json", "/a.json"}}
	assert.Equal(t, "preset cycle detected: /a.json -> /b.json -> /a.json", cycle.Error())
}
