package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/jointviz/internal/dist"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.X.Family != "normal" {
		t.Errorf("expected x family normal, got %s", cfg.X.Family)
	}
	if cfg.Resolution != 100 {
		t.Errorf("expected resolution 100, got %d", cfg.Resolution)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jointviz.yaml")
	cfg := DefaultConfig()
	cfg.X = DistConfig{Family: "gamma", Params: []float64{2, 0.5}}
	cfg.Gradient = "viridis"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := writeFile(path, "x:\n  family: beta\n  params: [2, 5]\n"); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.X.Family != "beta" {
		t.Errorf("expected beta, got %s", cfg.X.Family)
	}
	// Unset keys keep their defaults.
	if cfg.Y.Family != "uniform" || cfg.Resolution != DefaultResolution {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Y = DistConfig{Family: "uniform", Params: []float64{1, 1}}
	if err := cfg.Validate(); !errors.Is(err, dist.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.X.Family = "cauchy"
	if err := cfg.Validate(); !errors.Is(err, dist.ErrUnsupportedFamily) {
		t.Errorf("expected ErrUnsupportedFamily, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Resolution = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for resolution 1")
	}
}

func TestParseDist(t *testing.T) {
	tests := []struct {
		in   string
		want DistConfig
	}{
		{"normal:0,1", DistConfig{Family: "normal", Params: []float64{0, 1}}},
		{"3:2, 0.5", DistConfig{Family: "gamma", Params: []float64{2, 0.5}}},
		{"exp:2", DistConfig{Family: "exponential", Params: []float64{2}}},
		{"Uniform:-1,4", DistConfig{Family: "uniform", Params: []float64{-1, 4}}},
	}
	for _, tt := range tests {
		got, err := ParseDist(tt.in)
		if err != nil {
			t.Errorf("ParseDist(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseDist(%q) (-want +got):\n%s", tt.in, diff)
		}
	}

	for _, bad := range []string{"normal", "cauchy:1", "normal:a,b"} {
		if _, err := ParseDist(bad); err == nil {
			t.Errorf("ParseDist(%q): expected error", bad)
		}
	}
}

func TestDistConfig_String(t *testing.T) {
	dc := DistConfig{Family: "gamma", Params: []float64{2, 0.5}}
	if got := dc.String(); got != "gamma:2,0.5" {
		t.Errorf("String() = %q", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("skewed")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.X.Family != "gamma" {
		t.Errorf("expected gamma, got %s", cfg.X.Family)
	}
	if cfg.Resolution != DefaultResolution {
		t.Errorf("expected default resolution, got %d", cfg.Resolution)
	}

	cfg.X.Params[0] = 99
	if Presets["skewed"].X.Params[0] == 99 {
		t.Error("GetPreset returned shared parameter slice")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets() = %v", names)
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
