package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
)

// EventRepo persists emitted protocol events so observers that missed
// the live stream can replay them. Implements ports.EventArchive.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a PostgreSQL-backed event archive.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

var _ ports.EventArchive = (*EventRepo)(nil)

// Insert appends an event to the archive. Fields are stored as JSONB.
func (r *EventRepo) Insert(ctx context.Context, event domain.Event) error {
	fields, err := json.Marshal(event.Fields)
	if err != nil {
		return fmt.Errorf("marshal event fields: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO protocol_events (event_type, occurred_at, fields) VALUES ($1, $2, $3)`,
		string(event.Type), event.OccurredAt, fields,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events first, up to limit.
func (r *EventRepo) ListRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT event_type, occurred_at, fields FROM protocol_events
		 ORDER BY occurred_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0, limit)
	for rows.Next() {
		var (
			eventType string
			e         domain.Event
			raw       []byte
		)
		if err := rows.Scan(&eventType, &e.OccurredAt, &raw); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Type = domain.EventType(eventType)
		if err := json.Unmarshal(raw, &e.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal event fields: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
