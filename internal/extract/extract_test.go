package extract_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/extract"
	"github.com/specialistvlad/depgrid/internal/preset"
	"github.com/specialistvlad/depgrid/internal/specifier"
	"github.com/specialistvlad/depgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// newExtractor wires an extractor over an in-memory loader.
func newExtractor(docs map[string]*config.Document) (*extract.Extractor, *testutil.MemoryLoader) {
	loader := testutil.NewMemoryLoader(docs)
	return extract.New(preset.NewResolver(loader)), loader
}

func values(t *testing.T, e *extract.Extractor, doc *config.Document) []string {
	t.Helper()
	ctx, _ := testutil.Context(t)
	specs, err := e.Extract(ctx, doc, extract.Options{ConfigFileDir: "/repo"})
	require.NoError(t, err)
	return specifier.Values(specs)
}

func TestExtract_FacetOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// One value per facet, including a tuple-shaped reporter and transform.
	e, _ := newExtractor(nil)
	doc := &config.Document{
		Preset:               "ts-jest",
		Projects:             []config.Project{config.PathProject("<rootDir>/packages/*")},
		Runner:               "jest-runner-eslint",
		Resolver:             "./resolver.js",
		TestResultsProcessor: "jest-sonar",
		SnapshotResolver:     "./snapshot-resolver.js",
		TestSequencer:        "./sequencer.js",
		GlobalSetup:          "./global-setup.js",
		GlobalTeardown:       "./global-teardown.js",
		TestEnvironment:      "jsdom",
		Reporters: []config.ModuleRef{
			config.Tuple("jest-junit", cty.ObjectVal(map[string]cty.Value{"outputDirectory": cty.StringVal("reports")})),
		},
		WatchPlugins: []config.ModuleRef{config.Plain("jest-watch-typeahead/filename")},
		Transform: []config.MappedRef{
			{Pattern: `^.+\.tsx?$`, Target: config.Tuple("ts-jest", cty.EmptyObjectVal)},
		},
		ModuleNameMapper:    []config.MappedRef{{Pattern: `^lodash$`, Target: config.Plain("lodash-es")}},
		SnapshotSerializers: []string{"enzyme-to-json/serializer"},
		SetupFiles:          []string{"./setup.js"},
		SetupFilesAfterEnv:  []string{"@testing-library/jest-dom"},
	}

	// --- Act ---
	got := values(t, e, doc)

	// --- Assert ---
	want := []string{
		"ts-jest/jest-preset",
		"<rootDir>/packages/*",
		"jest-runner-eslint",
		"./resolver.js",
		"jest-sonar",
		"./snapshot-resolver.js",
		"./sequencer.js",
		"./global-setup.js",
		"./global-teardown.js",
		"jest-environment-jsdom",
		"jest-junit",
		"jest-watch-typeahead/filename",
		"ts-jest",
		"lodash-es",
		"enzyme-to-json/serializer",
		"./setup.js",
		"@testing-library/jest-dom",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_AllDeferred(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.Context(t)

	e, _ := newExtractor(nil)
	specs, err := e.Extract(ctx, &config.Document{Runner: "r", SetupFiles: []string{"s"}}, extract.Options{ConfigFileDir: "/repo"})
	require.NoError(t, err)
	for _, s := range specs {
		assert.Equal(t, specifier.Deferred, s.Kind, s.Value)
	}
}

func TestExtract_ModuleNameMapperBackReferences(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(nil)
	doc := &config.Document{
		ModuleNameMapper: []config.MappedRef{
			{Pattern: `^@/(.*)$`, Target: config.Plain("$1/shim")},
			{Pattern: `^shim$`, Target: config.Plain("my-shim")},
			{Pattern: `^(.*)\.css$`, Target: config.Tuple("<rootDir>/styles/$1.css", cty.StringVal("fallback"))},
		},
	}

	assert.Equal(t, []string{"my-shim"}, values(t, e, doc))
}

func TestExtract_ReporterExclusion(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(nil)
	doc := &config.Document{
		Reporters: []config.ModuleRef{config.Plain("default"), config.Plain("my-reporter")},
	}
	assert.Equal(t, []string{"my-reporter"}, values(t, e, doc))

	doc = &config.Document{
		Reporters: []config.ModuleRef{
			config.Plain("github-actions"),
			config.Tuple("summary", cty.EmptyObjectVal),
			config.Tuple("jest-html-reporters", cty.EmptyObjectVal),
		},
	}
	assert.Equal(t, []string{"jest-html-reporters"}, values(t, e, doc))
}

func TestExtract_TestEnvironment(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(nil)
	tests := []struct {
		env  string
		want []string
	}{
		{"jsdom", []string{"jest-environment-jsdom"}},
		{"node", nil},
		{"", nil},
		{"./custom-environment.js", nil},
	}
	for _, tt := range tests {
		got := values(t, e, &config.Document{TestEnvironment: tt.env})
		assert.Equal(t, tt.want, nilIfEmpty(got), "testEnvironment %q", tt.env)
	}
}

func TestExtract_InternalPresetEmittedAsIs(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(map[string]*config.Document{
		"/repo/preset.json": {Runner: "preset-runner"},
	})
	got := values(t, e, &config.Document{Preset: "./preset.json"})
	assert.Equal(t, []string{"./preset.json", "preset-runner"}, got)
}

func TestExtract_RecursiveProjects(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	e, loader := newExtractor(map[string]*config.Document{
		"/repo/p.json": {
			Runner:     "p-runner",
			SetupFiles: []string{"./p-setup.js"},
		},
	})
	doc := &config.Document{
		Preset: "ts-jest",
		Projects: []config.Project{
			config.PathProject("./a"),
			config.InlineProject(&config.Document{Preset: "./p.json", TestEnvironment: "jsdom"}),
			config.PathProject("./b"),
		},
		Runner: "top-runner",
	}

	// --- Act ---
	got := values(t, e, doc)

	// --- Assert ---
	want := []string{
		"ts-jest/jest-preset",
		"./a",
		"./p.json",
		"p-runner",
		"jest-environment-jsdom",
		"./p-setup.js",
		"./b",
		"top-runner",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, loader.Calls("/repo/p.json"))
}

func TestExtract_NoDeduplication(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(nil)
	doc := &config.Document{
		SetupFiles:         []string{"./setup.js"},
		SetupFilesAfterEnv: []string{"./setup.js"},
	}
	assert.Equal(t, []string{"./setup.js", "./setup.js"}, values(t, e, doc))
}

func TestExtract_PresetLoadFailure(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(nil)
	doc := &config.Document{
		Projects: []config.Project{config.InlineProject(&config.Document{Preset: "./missing.json"})},
	}
	_, err := e.Extract(context.Background(), doc, extract.Options{ConfigFileDir: "/repo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNotFound)
	assert.Contains(t, err.Error(), "projects")
}

func TestExtract_ProjectReferencingEnclosingConfigIsCycle(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.Context(t)

	// --- Arrange ---
	// The inline project presets the very file that declares it.
	selfRef := []config.Project{config.InlineProject(&config.Document{Preset: "./jest.config.json"})}
	e, loader := newExtractor(map[string]*config.Document{
		"/repo/jest.config.json": {Projects: selfRef},
	})

	// --- Act ---
	_, err := e.Extract(ctx, &config.Document{Projects: selfRef}, extract.Options{ConfigFileDir: "/repo"})

	// --- Assert ---
	var cycleErr *config.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"/repo/jest.config.json", "/repo/jest.config.json"}, cycleErr.Chain)
	assert.Equal(t, 1, loader.Calls("/repo/jest.config.json"), "the cycle is caught before loading again")
}

func TestExtract_CycleThroughNestedProjects(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.Context(t)

	toB := []config.Project{config.InlineProject(&config.Document{Preset: "./b.json"})}
	toA := []config.Project{config.InlineProject(&config.Document{Preset: "./a.json"})}
	e, _ := newExtractor(map[string]*config.Document{
		"/repo/a.json": {Projects: toB},
		"/repo/b.json": {Projects: toA},
	})

	doc := &config.Document{Path: "/repo/a.json", Projects: toB}
	_, err := e.Extract(ctx, doc, extract.Options{ConfigFileDir: "/repo"})

	var cycleErr *config.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"/repo/a.json", "/repo/b.json", "/repo/a.json"}, cycleErr.Chain)
}

func TestExtract_SiblingProjectsSharingPreset(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(map[string]*config.Document{
		"/repo/shared.json": {Runner: "shared-runner"},
	})
	doc := &config.Document{
		Projects: []config.Project{
			config.InlineProject(&config.Document{Preset: "./shared.json"}),
			config.InlineProject(&config.Document{Preset: "./shared.json", TestEnvironment: "jsdom"}),
		},
	}

	want := []string{
		"./shared.json", "shared-runner",
		"./shared.json", "shared-runner", "jest-environment-jsdom",
	}
	if diff := cmp.Diff(want, values(t, e, doc)); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_NilDocument(t *testing.T) {
	t.Parallel()

	e, _ := newExtractor(nil)
	specs, err := e.Extract(context.Background(), nil, extract.Options{})
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
