package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/animate"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDelay   = animate.DefaultDelay
	DefaultSize    = 15
	DefaultMin     = 0
	DefaultMax     = 20
	DefaultWidth   = 80
	DefaultDisplay = "array"
	DefaultTheme   = "dark"
	DefaultDataDir = ".sortviz"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Delay       time.Duration    `yaml:"delay"`
	Size        int              `yaml:"size"`
	Min         int              `yaml:"min"`
	Max         int              `yaml:"max"`
	Width       int              `yaml:"width"`
	Seed        int64            `yaml:"seed"`
	Display     string           `yaml:"display"`
	Theme       string           `yaml:"theme"`
	Palette     animate.Palette  `yaml:"palette"`
	Transitions TransitionConfig `yaml:"transitions"`
	DataDir     string           `yaml:"data_dir"`
}

// TransitionConfig overrides the transition length of each display. Zero
// keeps the display's own default.
type TransitionConfig struct {
	Array     time.Duration `yaml:"array"`
	Bar       time.Duration `yaml:"bar"`
	Paragraph time.Duration `yaml:"paragraph"`
	Rocket    time.Duration `yaml:"rocket"`
}

func DefaultConfig() *Config {
	return &Config{
		Delay:   DefaultDelay,
		Size:    DefaultSize,
		Min:     DefaultMin,
		Max:     DefaultMax,
		Width:   DefaultWidth,
		Display: DefaultDisplay,
		Theme:   DefaultTheme,
		Palette: animate.DefaultPalette,
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	var errs []error
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %s", c.Delay))
	}
	if c.Size < 0 {
		errs = append(errs, fmt.Errorf("size must not be negative, got %d", c.Size))
	}
	if c.Max <= c.Min {
		errs = append(errs, fmt.Errorf("max (%d) must be greater than min (%d)", c.Max, c.Min))
	}
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must not be negative, got %d", c.Width))
	}
	if c.Display == "" {
		errs = append(errs, errors.New("display is required"))
	}
	for name, d := range c.Transitions.byDisplay() {
		if d < 0 {
			errs = append(errs, fmt.Errorf("transitions.%s must not be negative, got %s", name, d))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Transition returns the configured transition of a display, zero if none.
func (c *Config) Transition(display string) time.Duration {
	return c.Transitions.byDisplay()[display]
}

func (t TransitionConfig) byDisplay() map[string]time.Duration {
	return map[string]time.Duration{
		"array":     t.Array,
		"bar":       t.Bar,
		"paragraph": t.Paragraph,
		"rocket":    t.Rocket,
	}
}
