package strokegeom

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configurations which would break the
// geometry algorithms (non-positive sample counts, snap weights outside (0,1), …).
var ErrInvalidConfig = errors.New("invalid geometry configuration")

// SnapConfig holds the tuned constants for joining near-coincident stroke
// endpoints during path reconstruction.
//
// A stroke's first point is snapped to the previous stroke's last point if their
// squared distance is below
//
//	Distance² / scale · clip(strokeLength / VertexLineLength, LengthRatioFloor, 1)
//
// The correction is applied with full strength to the first control point and
// decays by Weight per control point until it drops below MinRatio.
type SnapConfig struct {
	Distance         float64 `yaml:"distance"`
	VertexLineLength float64 `yaml:"vertex_line_length"`
	LengthRatioFloor float64 `yaml:"length_ratio_floor"`
	Weight           float64 `yaml:"weight"`
	MinRatio         float64 `yaml:"min_ratio"`
}

// Config bundles the tunables of the engine.
type Config struct {
	Flatness     int        `yaml:"flatness"`      // samples for arc-length approximation
	AutoPressure float64    `yaml:"auto_pressure"` // end pressure for tapered joins
	StrokeWidth  float64    `yaml:"stroke_width"`  // default ribbon width
	Snap         SnapConfig `yaml:"snap"`
}

// Defaults returns the engine defaults.
func Defaults() Config {
	return Config{
		Flatness:     128,
		AutoPressure: 0.3,
		StrokeWidth:  1,
		Snap: SnapConfig{
			Distance:         3,
			VertexLineLength: 10,
			LengthRatioFloor: 0.1,
			Weight:           0.5,
			MinRatio:         0.0625,
		},
	}
}

// LoadConfig reads a YAML configuration. Keys missing in the input keep their
// default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Defaults(), fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Defaults(), err
	}
	tracer().Debugf("loaded config: flatness=%d, snap=%+v", cfg.Flatness, cfg.Snap)
	return cfg, nil
}

// Validate checks the configuration for values the algorithms cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Flatness < 1:
		return fmt.Errorf("%w: flatness must be positive, is %d", ErrInvalidConfig, c.Flatness)
	case c.AutoPressure < 0 || c.AutoPressure > 1:
		return fmt.Errorf("%w: auto pressure must be in [0,1], is %g", ErrInvalidConfig, c.AutoPressure)
	case c.StrokeWidth < 0:
		return fmt.Errorf("%w: negative stroke width %g", ErrInvalidConfig, c.StrokeWidth)
	case c.Snap.Distance < 0:
		return fmt.Errorf("%w: negative snap distance %g", ErrInvalidConfig, c.Snap.Distance)
	case c.Snap.VertexLineLength <= 0:
		return fmt.Errorf("%w: vertex line length must be positive", ErrInvalidConfig)
	case c.Snap.Weight <= 0 || c.Snap.Weight >= 1:
		return fmt.Errorf("%w: snap weight must be in (0,1), is %g", ErrInvalidConfig, c.Snap.Weight)
	case c.Snap.MinRatio <= 0 || c.Snap.MinRatio > 1:
		return fmt.Errorf("%w: snap min ratio must be in (0,1], is %g", ErrInvalidConfig, c.Snap.MinRatio)
	case c.Snap.LengthRatioFloor < 0 || c.Snap.LengthRatioFloor > 1:
		return fmt.Errorf("%w: length ratio floor must be in [0,1]", ErrInvalidConfig)
	}
	return nil
}

// MustLoadConfig is a compatibility helper which panics on invalid input.
func MustLoadConfig(r io.Reader) Config {
	c, err := LoadConfig(r)
	if err != nil {
		panic(err)
	}
	return c
}
