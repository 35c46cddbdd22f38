package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/jointviz/internal/dist"
	"github.com/san-kum/jointviz/internal/joint"
	"gopkg.in/yaml.v3"
)

const (
	DefaultResolution = joint.DefaultResolution
	DefaultGradient   = "rainbow"
	DefaultTheme      = "cyberpunk"
	DefaultWidth      = 72
	DefaultHeight     = 24
	DefaultRotX       = 0.45
	DefaultRotY       = 0.6
	DefaultZoom       = 1.0
)

type Config struct {
	X          DistConfig `yaml:"x"`
	Y          DistConfig `yaml:"y"`
	Resolution int        `yaml:"resolution"`
	Gradient   string     `yaml:"gradient"`
	Theme      string     `yaml:"theme"`
	View       ViewConfig `yaml:"view"`
}

// DistConfig names a family and its ordered parameters.
type DistConfig struct {
	Family string    `yaml:"family"`
	Params []float64 `yaml:"params,flow"`
}

type ViewConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	RotX   float64 `yaml:"rot_x"`
	RotY   float64 `yaml:"rot_y"`
	Zoom   float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	return &Config{
		X:          DistConfig{Family: "normal", Params: []float64{0, 1}},
		Y:          DistConfig{Family: "uniform", Params: []float64{0, 1}},
		Resolution: DefaultResolution,
		Gradient:   DefaultGradient,
		Theme:      DefaultTheme,
		View: ViewConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			RotX:   DefaultRotX,
			RotY:   DefaultRotY,
			Zoom:   DefaultZoom,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.X.Params = append([]float64(nil), c.X.Params...)
	out.Y.Params = append([]float64(nil), c.Y.Params...)
	return &out
}

// Build constructs the distribution dc describes.
func (dc DistConfig) Build() (dist.Dist, error) {
	f, err := dist.ParseFamily(dc.Family)
	if err != nil {
		return nil, err
	}
	return dist.New(f, dc.Params...)
}

func (dc DistConfig) String() string {
	parts := make([]string, len(dc.Params))
	for i, p := range dc.Params {
		parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return dc.Family + ":" + strings.Join(parts, ",")
}

// Distributions builds both marginals, reporting which one failed.
func (c *Config) Distributions() (dist.Dist, dist.Dist, error) {
	x, err := c.X.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("x distribution: %w", err)
	}
	y, err := c.Y.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("y distribution: %w", err)
	}
	return x, y, nil
}

func (c *Config) Validate() error {
	if _, _, err := c.Distributions(); err != nil {
		return err
	}
	if c.Resolution != 0 && c.Resolution < 2 {
		return fmt.Errorf("resolution %d: need at least 2 samples per axis", c.Resolution)
	}
	return nil
}

func (c *Config) JointConfig() joint.Config {
	return joint.Config{Resolution: c.Resolution}
}

// ParseDist parses the "family:p1,p2" form used on the command line,
// for example "normal:0,1" or "3:2,0.5".
func ParseDist(s string) (DistConfig, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return DistConfig{}, fmt.Errorf("distribution %q: want family:params", s)
	}
	f, err := dist.ParseFamily(name)
	if err != nil {
		return DistConfig{}, err
	}
	dc := DistConfig{Family: strings.ToLower(f.String())}
	for _, field := range strings.Split(rest, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return DistConfig{}, fmt.Errorf("distribution %q: %w", s, err)
		}
		dc.Params = append(dc.Params, v)
	}
	return dc, nil
}
