package worker

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/QTest-hq/sjavac/internal/config"
	"github.com/QTest-hq/sjavac/internal/testutil"
	"github.com/QTest-hq/sjavac/internal/verifier"
)

const (
	validSrc   = "int x = 1;\nvoid f() {\n  x = 2;\n  return;\n}\n"
	invalidSrc = "void f() {\n  y = 2;\n  return;\n}\n"
	syntaxSrc  = "void f() {\n  int x = 1\n  return;\n}\n"
)

func TestNewPool(t *testing.T) {
	pool, err := NewPool(PoolConfig{Workers: 3})
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	if pool.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", pool.Workers())
	}
	if pool.verifier == nil {
		t.Error("verifier should default when not provided")
	}
}

func TestNewPool_DefaultWorkers(t *testing.T) {
	pool, err := NewPool(PoolConfig{})
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	if pool.Workers() < 1 {
		t.Errorf("Workers() = %d, want at least 1", pool.Workers())
	}
}

func TestNewPool_NegativeWorkers(t *testing.T) {
	if _, err := NewPool(PoolConfig{Workers: -1}); err == nil {
		t.Error("expected error for negative workers")
	}
}

func TestPool_Run(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"a.sjava": validSrc,
		"b.sjava": invalidSrc,
		"c.sjava": syntaxSrc,
	})

	jobs := []Job{
		{Path: filepath.Join(root, "a.sjava"), Name: "a.sjava"},
		{Path: filepath.Join(root, "b.sjava"), Name: "b.sjava"},
		{Path: filepath.Join(root, "c.sjava"), Name: "c.sjava"},
		{Path: filepath.Join(root, "missing.sjava"), Name: "missing.sjava"},
	}

	pool, _ := NewPool(PoolConfig{Workers: 2})
	reports, err := pool.Run(context.Background(), jobs)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(reports) != len(jobs) {
		t.Fatalf("len(reports) = %d, want %d", len(reports), len(jobs))
	}

	want := []struct {
		status verifier.Status
		kind   verifier.Kind
	}{
		{verifier.StatusValid, verifier.KindNone},
		{verifier.StatusInvalid, verifier.KindSemantic},
		{verifier.StatusInvalid, verifier.KindSyntax},
		{verifier.StatusIOError, verifier.KindFile},
	}
	for i, w := range want {
		if reports[i].File != jobs[i].Name {
			t.Errorf("reports[%d].File = %s, want %s", i, reports[i].File, jobs[i].Name)
		}
		if reports[i].Status != w.status {
			t.Errorf("%s: status = %d, want %d", jobs[i].Name, reports[i].Status, w.status)
		}
		if reports[i].Kind != w.kind {
			t.Errorf("%s: kind = %q, want %q", jobs[i].Name, reports[i].Kind, w.kind)
		}
	}
}

func TestPool_RunIndependentFiles(t *testing.T) {
	// a global declared in one file must not leak into another
	root := testutil.WriteTree(t, map[string]string{
		"decl.sjava": "int shared = 1;\nvoid f() {\n  return;\n}\n",
		"use.sjava":  "void g() {\n  shared = 2;\n  return;\n}\n",
	})
	jobs := []Job{
		{Path: filepath.Join(root, "decl.sjava")},
		{Path: filepath.Join(root, "use.sjava")},
	}

	pool, _ := NewPool(PoolConfig{Workers: 1})
	reports, err := pool.Run(context.Background(), jobs)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if reports[0].Status != verifier.StatusValid {
		t.Errorf("decl.sjava status = %d, want 0", reports[0].Status)
	}
	if reports[1].Status != verifier.StatusInvalid {
		t.Errorf("use.sjava status = %d, want 1", reports[1].Status)
	}
	if reports[0].File != jobs[0].Path {
		t.Errorf("File should default to the path, got %s", reports[0].File)
	}
}

func TestPool_RunCancelled(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"a.sjava": validSrc})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool, _ := NewPool(PoolConfig{Workers: 1})
	_, err := pool.Run(ctx, []Job{{Path: filepath.Join(root, "a.sjava")}})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestDiscover(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"a.sjava":            validSrc,
		"nested/b.sjava":     validSrc,
		"notes.txt":          "hello",
		".git/objects.sjava": validSrc,
		"vendor/c.sjava":     validSrc,
	})

	cfg := config.DefaultProjectConfig()
	cfg.Exclude = append(cfg.Exclude, "vendor/**")
	matcher, err := cfg.Matcher()
	if err != nil {
		t.Fatalf("Matcher failed: %v", err)
	}

	jobs, err := Discover(root, matcher)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{"a.sjava", "nested/b.sjava"}
	if len(jobs) != len(want) {
		t.Fatalf("got %d jobs (%v), want %d", len(jobs), jobs, len(want))
	}
	for i, name := range want {
		if jobs[i].Name != name {
			t.Errorf("jobs[%d].Name = %s, want %s", i, jobs[i].Name, name)
		}
	}
}

func TestDiscover_NoMatcher(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"a.sjava":   validSrc,
		"b.java":    validSrc,
		"d/c.sjava": validSrc,
	})

	jobs, err := Discover(root, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("got %d jobs, want 2", len(jobs))
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestPool_Batch(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"ok.sjava":  validSrc,
		"bad.sjava": invalidSrc,
	})
	matcher, _ := config.DefaultProjectConfig().Matcher()

	pool, _ := NewPool(PoolConfig{Workers: 2})
	summary, err := pool.Batch(context.Background(), root, matcher)
	if err != nil {
		t.Fatalf("Batch failed: %v", err)
	}
	if summary.Total != 2 || summary.Valid != 1 || summary.Invalid != 1 {
		t.Errorf("summary = %d/%d/%d, want 2/1/1", summary.Total, summary.Valid, summary.Invalid)
	}
	if summary.Reports[0].File != "bad.sjava" {
		t.Errorf("reports should be sorted, first is %s", summary.Reports[0].File)
	}
	if summary.Status() != verifier.StatusInvalid {
		t.Errorf("Status() = %d, want 1", summary.Status())
	}
}
