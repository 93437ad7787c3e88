package sentiment

import (
	"context"

	"textlens/internal/usecase/analyze"
)

// NoOp is a sentiment provider that scores every text as neutral.
// This is useful for testing and development when scoring is not needed.
type NoOp struct{}

// NewNoOp creates a new NoOp sentiment provider.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Score always returns a neutral polarity of 0.
func (n *NoOp) Score(context.Context, string) (float64, error) {
	return 0, nil
}

// Health always reports healthy.
func (n *NoOp) Health(context.Context) (*analyze.HealthStatus, error) {
	return &analyze.HealthStatus{Healthy: true, Message: "noop sentiment scorer"}, nil
}
