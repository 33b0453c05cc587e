package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() domain.Event {
	return domain.Event{
		Type:       domain.EventBatchSettled,
		OccurredAt: time.Now().UTC().Truncate(time.Microsecond),
		Fields: map[string]any{
			"batch_id": float64(7),
			"solver":   "0xSolverOne",
		},
	}
}

func TestEventRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent()

	mock.ExpectExec("INSERT INTO protocol_events").
		WithArgs(string(e.Type), e.OccurredAt, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Insert(context.Background(), e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent()

	rows := pgxmock.NewRows([]string{"event_type", "occurred_at", "fields"}).
		AddRow(string(e.Type), e.OccurredAt, []byte(`{"batch_id":7,"solver":"0xSolverOne"}`))

	mock.ExpectQuery("SELECT .+ FROM protocol_events").
		WithArgs(10).
		WillReturnRows(rows)

	events, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, e.Type, events[0].Type)
	assert.Equal(t, e.OccurredAt, events[0].OccurredAt)
	assert.Equal(t, e.Fields, events[0].Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListRecent_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM protocol_events").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"event_type", "occurred_at", "fields"}))

	events, err := repo.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}
