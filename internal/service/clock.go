package service

import (
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
)

// SystemClock is the wall-clock ports.Clock used in production wiring.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

var _ ports.Clock = (*SystemClock)(nil)
