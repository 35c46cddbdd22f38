package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/jointviz/internal/dist"
	"github.com/san-kum/jointviz/internal/export"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFamilies(t *testing.T) {
	out, err := run(t, "families")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Normal", "Exponential", "Gamma", "Beta", "Uniform", "mean, stddev"} {
		if !strings.Contains(out, want) {
			t.Errorf("families output missing %q:\n%s", want, out)
		}
	}
}

func TestPresets(t *testing.T) {
	out, err := run(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "skewed") || !strings.Contains(out, "gamma:2,2") {
		t.Errorf("unexpected presets output:\n%s", out)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "surface.json")
	if _, err := run(t, "export", "--x", "gamma:2,0.5", "--y", "beta:2,5", "--resolution", "10", "--out", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc export.SurfaceData
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.X.Family != "Gamma" || doc.Y.Family != "Beta" {
		t.Errorf("families = %s, %s", doc.X.Family, doc.Y.Family)
	}
	if len(doc.Xs) != 10 || len(doc.Z) != 10 {
		t.Errorf("expected a 10x10 grid, got %d xs and %d rows", len(doc.Xs), len(doc.Z))
	}
}

func TestExportFlatMarginalStillWrites(t *testing.T) {
	out, err := run(t, "export", "--preset", "flat", "--resolution", "4", "--format", "csv", "--out", "-")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 1+4*4 {
		t.Errorf("expected %d csv lines, got %d", 1+4*4, n)
	}
}

func TestInvalidParameters(t *testing.T) {
	_, err := run(t, "plot", "--x", "normal:0,0")
	if !errors.Is(err, dist.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	_, err = run(t, "plot", "--y", "cauchy:0,1")
	if !errors.Is(err, dist.ErrUnsupportedFamily) {
		t.Errorf("expected ErrUnsupportedFamily, got %v", err)
	}

	if _, err := run(t, "plot", "--preset", "nope"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "x:\n  family: exponential\n  params: [2]\ny:\n  family: uniform\n  params: [0, 1]\nresolution: 6\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "export", "--config", path, "--resolution", "3", "--format", "csv", "--out", "-")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 1+3*3 {
		t.Errorf("--resolution should override the file: got %d lines", n)
	}
	// Exponential(2) starts at x = 0 with density 0.5.
	if !strings.Contains(out, "\n0,0,0.5\n") {
		t.Errorf("expected the exponential density at the origin:\n%s", out)
	}
}
