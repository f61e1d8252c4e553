package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProjectConfig(t *testing.T) {
	cfg := DefaultProjectConfig()

	if cfg == nil {
		t.Fatal("DefaultProjectConfig() returned nil")
	}
	if cfg.Version != "1.0" {
		t.Errorf("Version = %s, want 1.0", cfg.Version)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %s, want text", cfg.Format)
	}
	if cfg.Watch.DebounceMS != 300 {
		t.Errorf("Watch.DebounceMS = %d, want 300", cfg.Watch.DebounceMS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadProjectConfig_Missing(t *testing.T) {
	cfg, err := LoadProjectConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectConfig(), cfg)
}

func TestLoadProjectConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	content := `version: "1.0"
include:
  - "src/**.sjava"
exclude:
  - "src/legacy/**"
workers: 4
format: json
watch:
  debounce_ms: 50
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sjavac.yaml"), []byte(content), 0644))

	cfg, err := LoadProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/**.sjava"}, cfg.Include)
	assert.Equal(t, []string{"src/legacy/**"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 50, cfg.Watch.DebounceMS)
}

func TestLoadProjectConfig_YMLFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sjavac.yml"), []byte("format: yaml\n"), 0644))

	cfg, err := LoadProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, DefaultProjectConfig().Include, cfg.Include)
}

func TestLoadProjectConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "workers: [1, 2\n"},
		{"bad format", "format: xml\n"},
		{"negative workers", "workers: -1\n"},
		{"bad pattern", "include:\n  - \"[\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFile), []byte(tt.content), 0644))
			_, err := LoadProjectConfig(dir)
			assert.Error(t, err)
		})
	}
}

func TestSaveProjectConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultProjectConfig()
	cfg.Workers = 2
	cfg.Exclude = []string{"gen/**"}

	require.NoError(t, SaveProjectConfig(dir, cfg))

	loaded, err := LoadProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestProjectConfig_Merge(t *testing.T) {
	cfg := DefaultProjectConfig()
	cfg.Merge(nil)
	assert.Equal(t, DefaultProjectConfig(), cfg)

	cfg.Merge(&ProjectConfig{Workers: 8, Format: FormatYAML})
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, DefaultProjectConfig().Include, cfg.Include, "empty override keeps patterns")

	cfg.Merge(&ProjectConfig{Include: []string{"a/**.sjava"}, Watch: WatchConfig{DebounceMS: 10}})
	assert.Equal(t, []string{"a/**.sjava"}, cfg.Include)
	assert.Equal(t, 10, cfg.Watch.DebounceMS)
}

func TestFileMatcher(t *testing.T) {
	cfg := DefaultProjectConfig()
	cfg.Exclude = append(cfg.Exclude, "legacy/**")
	m, err := cfg.Matcher()
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"main.sjava", true},
		{"src/deep/nested.sjava", true},
		{"notes.txt", false},
		{"main.sjava.bak", false},
		{".git/objects/x.sjava", false},
		{"sub/.git/x.sjava", false},
		{"legacy/old.sjava", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}

	assert.True(t, m.ExcludesDir(".git"))
	assert.True(t, m.ExcludesDir("legacy"))
	assert.False(t, m.ExcludesDir("src"))
}

func TestFileMatcher_NoInclude(t *testing.T) {
	m, err := (&ProjectConfig{}).Matcher()
	require.NoError(t, err)
	assert.True(t, m.Match("anything.txt"))
}
