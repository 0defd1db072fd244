package engine

import (
	"errors"
	"fmt"

	"github.com/optakt/rangelp/grid"
	"github.com/optakt/rangelp/tangent"
)

// MaxGridSize bounds the number of samples so every curve fits in memory.
const MaxGridSize = 1 << 20

var (
	ErrGridSize      = errors.New("grid size must be at least two samples")
	ErrGridSizeLimit = fmt.Errorf("grid size must not exceed %d samples", MaxGridSize)
	ErrWindow        = errors.New("tangent window must be at least one sample")
)

// Config holds the numerical resolution of an evaluation.
type Config struct {
	GridSize int `yaml:"grid_size"`
	Window   int `yaml:"window"`
}

var DefaultConfig = Config{
	GridSize: grid.DefaultSize,
	Window:   tangent.DefaultWindow,
}

func (c Config) Validate() error {
	if c.GridSize < 2 {
		return ErrGridSize
	}
	if c.GridSize > MaxGridSize {
		return ErrGridSizeLimit
	}
	if c.Window < 1 {
		return ErrWindow
	}
	return nil
}
