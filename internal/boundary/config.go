package boundary

import (
	"fmt"

	"github.com/born-ml/gscnn/internal/distance"
)

// Default edge-map parameters.
const (
	DefaultRadius          = 2
	DefaultBackgroundClass = 0
)

// EdgeConfig controls edge-map generation.
type EdgeConfig struct {
	// Radius is the largest distance from a class boundary that is still
	// marked as edge.
	Radius int

	// BackgroundClass is the class whose one-hot mask is forced to zero.
	// It never produces boundaries of its own.
	BackgroundClass int

	// Transformer computes the distance transform. Nil means distance.EDT.
	Transformer distance.Transformer
}

// DefaultEdgeConfig returns radius 2, background class 0 and the exact EDT.
func DefaultEdgeConfig() EdgeConfig {
	return EdgeConfig{
		Radius:          DefaultRadius,
		BackgroundClass: DefaultBackgroundClass,
		Transformer:     distance.EDT{},
	}
}

// Validate checks the configuration.
func (c EdgeConfig) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("radius must be >= 0, got %d", c.Radius)
	}
	return nil
}

func (c EdgeConfig) transformer() distance.Transformer {
	if c.Transformer == nil {
		return distance.EDT{}
	}
	return c.Transformer
}
