package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTest-hq/sjavac/internal/config"
	"github.com/QTest-hq/sjavac/internal/testutil"
	"github.com/QTest-hq/sjavac/internal/verifier"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRoot_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		src    string
		stdout string
		stderr string
	}{
		{
			name:   "valid method",
			file:   "ok.sjava",
			src:    "void f() {\n  return;\n}\n",
			stdout: "0\n",
		},
		{
			name:   "final reassignment",
			file:   "final.sjava",
			src:    "final int x = 5;\nvoid f() {\n  x = 7;\n  return;\n}\n",
			stdout: "1\n",
			stderr: "Validation Error: Line 3",
		},
		{
			name:   "inline comment",
			file:   "comment.sjava",
			src:    "void f() {\n  int a = 1; // note\n  return;\n}\n",
			stdout: "1\n",
			stderr: "Syntax Error: Line 2",
		},
		{
			name:   "wrong extension",
			file:   "prog.java",
			src:    "void f() {\n  return;\n}\n",
			stdout: "2\n",
			stderr: "Error: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), tt.file, tt.src)

			stdout, stderr, err := execute(t, path)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, stdout)
			if tt.stderr == "" {
				assert.Empty(t, stderr)
			} else {
				assert.True(t, strings.HasPrefix(stderr, tt.stderr), "stderr = %q", stderr)
			}
		})
	}
}

func TestRoot_Fixtures(t *testing.T) {
	for _, sc := range testutil.LoadScenarios(t) {
		t.Run(sc.File, func(t *testing.T) {
			stdout, _, err := execute(t, testutil.ScenarioPath(sc.File))
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("%d\n", sc.Status), stdout)
		})
	}
}

func TestRoot_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"two args", []string{"a.sjava", "b.sjava"}},
		{"flag is a usage error", []string{"--verbose", "a.sjava"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "2\n", stdout)
			assert.Equal(t, "Error: "+usageLine+"\n", stderr)
		})
	}
}

func TestRoot_MissingFile(t *testing.T) {
	stdout, stderr, err := execute(t, filepath.Join(t.TempDir(), "nope.sjava"))
	require.NoError(t, err)
	assert.Equal(t, "2\n", stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: file does not exist"), "stderr = %q", stderr)
}

func TestClassifyCmd(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "c.sjava", "// hi\nvoid f() {\n  return;\n}\n")

	stdout, _, err := execute(t, "classify", "--stats", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "   1 comment")
	assert.Contains(t, stdout, "   2 method_decl")
	assert.Contains(t, stdout, "   4 close_brace")
	assert.Contains(t, stdout, "return           1")
}

func TestClassifyCmd_SyntaxError(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "c.sjava", "void f() {\n  int a = 1\n}\n")

	_, _, err := execute(t, "classify", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Syntax Error")
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.sjava", "void f() {\n  return;\n}\n")
	testutil.WriteFile(t, dir, "sub/b.sjava", "void g() {\n  y = 1;\n  return;\n}\n")
	testutil.WriteFile(t, dir, "readme.txt", "not source")

	stdout, _, err := execute(t, "batch", "--format", "json", "--workers", "2", dir)
	require.NoError(t, err)

	var summary struct {
		Total   int `json:"total"`
		Valid   int `json:"valid"`
		Invalid int `json:"invalid"`
		Reports []struct {
			File   string `json:"file"`
			Status int    `json:"status"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, "a.sjava", summary.Reports[0].File)
	assert.Equal(t, "sub/b.sjava", summary.Reports[1].File)
}

func TestBatchCmd_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.sjava", "void f() {\n  return;\n}\n")
	testutil.WriteFile(t, dir, "skip/b.sjava", "broken")
	testutil.WriteFile(t, dir, ".sjavac.yaml", "version: \"1.0\"\nexclude:\n  - \"skip/**\"\nformat: yaml\n")

	stdout, _, err := execute(t, "batch", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "total: 1")
	assert.NotContains(t, stdout, "b.sjava")
}

func TestBatchCmd_Strict(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "bad.sjava", "void f() {\n")

	stdout, _, err := execute(t, "batch", "--strict", dir)
	require.Error(t, err)
	assert.Contains(t, stdout, "1 bad.sjava")
}

func TestBatchCmd_BadFormat(t *testing.T) {
	_, _, err := execute(t, "batch", "--format", "xml", t.TempDir())
	require.Error(t, err)
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "serve", "extra")
	require.Error(t, err)
}

func TestBatchCmd_Output(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.sjava", "void f(int n) {\n  return;\n}\n")
	out := filepath.Join(t.TempDir(), "reports")

	stdout, _, err := execute(t, "batch", "--format", "json", "--output", out, dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Report written to "+filepath.Join(out, "report.json"))

	data, err := os.ReadFile(filepath.Join(out, "report.json"))
	require.NoError(t, err)

	var summary struct {
		Total   int `json:"total"`
		Reports []struct {
			Methods []string `json:"methods"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, []string{"void f(int n)"}, summary.Reports[0].Methods)
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	stdout, _, err := execute(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	cfg, err := config.LoadProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProjectConfig(), cfg)

	_, _, err = execute(t, "init", dir)
	require.Error(t, err, "existing project file must not be overwritten")

	_, _, err = execute(t, "init", "--force", dir)
	require.NoError(t, err)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &verifier.Report{File: "ok.sjava", Status: verifier.StatusValid})
	printReport(&buf, &verifier.Report{
		File:    "bad.sjava",
		Status:  verifier.StatusInvalid,
		Kind:    verifier.KindSemantic,
		Message: "Line 2: boom",
	})

	assert.Equal(t, "0 ok.sjava\n1 bad.sjava  Validation Error: Line 2: boom\n", buf.String())
}
