package ports

import (
	"context"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
)

// EventArchive is the durable record of emitted protocol events, the
// authoritative feed for observers that missed the live stream.
type EventArchive interface {
	Insert(ctx context.Context, event domain.Event) error
	ListRecent(ctx context.Context, limit int) ([]domain.Event, error)
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}
