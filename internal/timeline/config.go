package timeline

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for geometry that cannot describe a timeline.
var ErrInvalidConfig = errors.New("timeline: invalid config")

// Config holds the SVG geometry. The bottom row runs left to right over
// BottomYears, curves up on the right and the top row runs back right to
// left over TopYears.
type Config struct {
	SVGWidth    float64 `yaml:"svg_width" json:"svgWidth"`
	SVGHeight   float64 `yaml:"svg_height" json:"svgHeight"`
	Padding     float64 `yaml:"padding" json:"padding"`
	BottomY     float64 `yaml:"bottom_y" json:"bottomY"`
	TopY        float64 `yaml:"top_y" json:"topY"`
	CurveRadius float64 `yaml:"curve_radius" json:"curveRadius"`
	BottomYears []int   `yaml:"bottom_years" json:"bottomYears"`
	TopYears    []int   `yaml:"top_years" json:"topYears"`
}

func DefaultConfig() Config {
	return Config{
		SVGWidth:    1000,
		SVGHeight:   400,
		Padding:     60,
		BottomY:     300,
		TopY:        100,
		CurveRadius: 100,
		BottomYears: []int{2014, 2015, 2016, 2017, 2018, 2019, 2020},
		TopYears:    []int{2021, 2022, 2023, 2024, 2025, 2026},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading timeline config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing timeline config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SVGWidth-2*c.Padding-c.CurveRadius <= 0 {
		return fmt.Errorf("%w: svg_width leaves no room for the rows", ErrInvalidConfig)
	}
	if len(c.BottomYears) < 2 || len(c.TopYears) < 2 {
		return fmt.Errorf("%w: each row needs at least two years", ErrInvalidConfig)
	}
	for _, years := range [][]int{c.BottomYears, c.TopYears} {
		for i := 1; i < len(years); i++ {
			if years[i] <= years[i-1] {
				return fmt.Errorf("%w: years must be ascending", ErrInvalidConfig)
			}
		}
	}
	if c.TopYears[0] <= c.BottomYears[len(c.BottomYears)-1] {
		return fmt.Errorf("%w: top row must start after the bottom row ends", ErrInvalidConfig)
	}
	return nil
}
