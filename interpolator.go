package bspline

import (
	"fmt"
	"runtime"
)

// Config holds interpolation configuration.
type Config struct {
	// Degree is the polynomial degree of the interpolating curve (>= 1).
	Degree int

	// Averaging selects the interior knot rule. The zero value is AveragingMoving.
	Averaging AveragingRule

	// EnableParallel evaluates samples on multiple goroutines in
	// Interpolator.Sample.
	EnableParallel bool

	// Workers bounds the goroutines used when EnableParallel is set.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Degree < minDegree || c.Degree > maxDegree {
		return fmt.Errorf("%w: degree must be %d-%d, got %d", ErrInvalidInput, minDegree, maxDegree, c.Degree)
	}

	if !c.Averaging.Valid() {
		return fmt.Errorf("%w: unknown averaging rule %v", ErrInvalidInput, c.Averaging)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidInput)
	}

	return nil
}

// Interpolator fits curves with a fixed configuration.
// It holds no mutable state and is safe for concurrent use.
type Interpolator struct {
	config Config
}

// New creates an interpolator with the specified configuration.
func New(config *Config) (*Interpolator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidInput)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return &Interpolator{config: cfg}, nil
}

// Config returns the effective configuration, with defaults applied.
func (ip *Interpolator) Config() Config {
	return ip.config
}

// Interpolate returns the curve through points.
func (ip *Interpolator) Interpolate(points Points2D) (*Curve, error) {
	return interpolate(points, ip.config.Degree, ip.config.Averaging)
}

// Sample interpolates points and evaluates the curve at count evenly spaced
// parameters. A count of zero or less picks ten samples per span.
func (ip *Interpolator) Sample(points Points2D, count int) (*Curve, Points2D, error) {
	c, err := ip.Interpolate(points)
	if err != nil {
		return nil, Points2D{}, err
	}

	var out Points2D
	if ip.config.EnableParallel {
		out, err = c.SampleParallel(count, ip.config.Workers)
	} else {
		out, err = c.Sample(count)
	}
	if err != nil {
		return nil, Points2D{}, err
	}

	return c, out, nil
}
