package service

import (
	"context"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"

	"github.com/rs/zerolog"
)

// ZerologSink writes protocol events to the structured log.
type ZerologSink struct {
	log zerolog.Logger
}

// NewZerologSink creates a ZerologSink.
func NewZerologSink(log zerolog.Logger) *ZerologSink {
	return &ZerologSink{log: log}
}

// Emit logs the event with its fields flattened into the entry.
func (s *ZerologSink) Emit(ctx context.Context, event domain.Event) error {
	entry := s.log.Info().
		Str("event", string(event.Type)).
		Time("occurred_at", event.OccurredAt)
	for k, v := range event.Fields {
		entry = entry.Interface(k, v)
	}
	entry.Msg("protocol event")
	return nil
}

// ArchiveSink persists protocol events to the durable archive.
type ArchiveSink struct {
	archive ports.EventArchive
}

// NewArchiveSink creates an ArchiveSink.
func NewArchiveSink(archive ports.EventArchive) *ArchiveSink {
	return &ArchiveSink{archive: archive}
}

// Emit inserts the event into the archive.
func (s *ArchiveSink) Emit(ctx context.Context, event domain.Event) error {
	return s.archive.Insert(ctx, event)
}

// MultiSink fans an event out to every sink. Delivery is best-effort per
// sink: one sink failing never stops the others, and the first error is
// returned for the caller to log.
type MultiSink struct {
	sinks []ports.EventSink
}

// NewMultiSink creates a MultiSink over the given sinks.
func NewMultiSink(sinks ...ports.EventSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Emit delivers the event to every sink.
func (s *MultiSink) Emit(ctx context.Context, event domain.Event) error {
	var firstErr error
	for _, sink := range s.sinks {
		if err := sink.Emit(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var (
	_ ports.EventSink = (*ZerologSink)(nil)
	_ ports.EventSink = (*ArchiveSink)(nil)
	_ ports.EventSink = (*MultiSink)(nil)
)
