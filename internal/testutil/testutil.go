// Package testutil provides fixtures shared by package tests
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// Scenario is one fixture program with its expected outcome
type Scenario struct {
	File   string `yaml:"file"`
	Status int    `yaml:"status"`
	Kind   string `yaml:"kind,omitempty"`
	Line   int    `yaml:"line,omitempty"`
}

// TestdataDir returns the absolute path of the repository testdata directory
func TestdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata")
}

// ScenarioPath returns the path of a fixture under testdata/scenarios
func ScenarioPath(name string) string {
	return filepath.Join(TestdataDir(), "scenarios", name)
}

// LoadScenarios reads testdata/scenarios.yaml
func LoadScenarios(t *testing.T) []Scenario {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(TestdataDir(), "scenarios.yaml"))
	if err != nil {
		t.Fatalf("failed to read scenarios: %v", err)
	}

	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		t.Fatalf("failed to parse scenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("no scenarios defined")
	}
	return scenarios
}

// WriteFile writes content to dir/name, creating parent directories
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteTree creates a temporary directory holding files, keyed by slash
// separated relative path
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		WriteFile(t, root, name, content)
	}
	return root
}
