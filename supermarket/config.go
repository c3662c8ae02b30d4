package supermarket

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the simulation parameters.
type Config struct {
	// Capacity is the number of slots in the packing area.
	Capacity int
	// NumCashiers is the number of producer workers.
	NumCashiers int
	// NumPackers is the number of consumer workers.
	NumPackers int
	// Duration is the wall-clock span of the run. Zero stops the run
	// before any worker does work.
	Duration time.Duration
	// Pacing supplies the simulated work delays.
	Pacing Pacing
}

// DefaultConfig returns the standard scenario: five slots, three cashiers,
// two packers, sixty seconds.
func DefaultConfig() Config {
	return Config{
		Capacity:    5,
		NumCashiers: 3,
		NumPackers:  2,
		Duration:    60 * time.Second,
	}
}

// Validate checks the parameter ranges. Zero workers and a zero duration
// are legal: a run with no cashiers or no packers drains until the timer
// fires, and a zero duration stops immediately after setup.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.NumCashiers < 0 {
		return fmt.Errorf("number of cashiers must not be negative, got %d", c.NumCashiers)
	}
	if c.NumPackers < 0 {
		return fmt.Errorf("number of packers must not be negative, got %d", c.NumPackers)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %v", c.Duration)
	}
	return nil
}

// LoadConfig reads a YAML file and applies it over the defaults. Only keys
// present in the file override.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var f struct {
		Capacity        *int `yaml:"capacity"`
		NumProducers    *int `yaml:"num_producers"`
		NumConsumers    *int `yaml:"num_consumers"`
		DurationSeconds *int `yaml:"duration_seconds"`
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if f.Capacity != nil {
		cfg.Capacity = *f.Capacity
	}
	if f.NumProducers != nil {
		cfg.NumCashiers = *f.NumProducers
	}
	if f.NumConsumers != nil {
		cfg.NumPackers = *f.NumConsumers
	}
	if f.DurationSeconds != nil {
		cfg.Duration = time.Duration(*f.DurationSeconds) * time.Second
	}
	return cfg, nil
}
