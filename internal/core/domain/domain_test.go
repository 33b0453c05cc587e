package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProtocolFee(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		feeBps int64
		want   int64
	}{
		{"30 bps on 10000", 10_000, 30, 30},
		{"zero fee", 10_000, 0, 0},
		{"sub-resolution amount floors to zero", 3, 30, 0},
		{"max fee 20 percent", 1_000_000, 2_000, 200_000},
		{"odd amount floors", 333, 100, 3},
		{"huge amount does not overflow", 9_000_000_000_000_000_000, 2_000, 1_800_000_000_000_000_000},
		{"near max int64 at 30 bps", 9_223_372_036_854_775_807, 30, 27_670_116_110_564_327},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProtocolFee(tt.amount, tt.feeBps))
		})
	}
}

func TestBatch_CanTransition(t *testing.T) {
	tests := []struct {
		from BatchStatus
		to   BatchStatus
		ok   bool
	}{
		{BatchStatusOpen, BatchStatusSolving, true},
		{BatchStatusOpen, BatchStatusCancelled, true},
		{BatchStatusOpen, BatchStatusExecuting, false},
		{BatchStatusOpen, BatchStatusSettled, false},
		{BatchStatusSolving, BatchStatusExecuting, true},
		{BatchStatusSolving, BatchStatusCancelled, true},
		{BatchStatusSolving, BatchStatusOpen, false},
		{BatchStatusExecuting, BatchStatusSettled, true},
		{BatchStatusExecuting, BatchStatusCancelled, false},
		{BatchStatusSettled, BatchStatusOpen, false},
		{BatchStatusCancelled, BatchStatusSolving, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Batch{Status: tt.from}
			assert.Equal(t, tt.ok, b.CanTransition(tt.to))
		})
	}
}

func TestBatch_IsTerminal(t *testing.T) {
	assert.False(t, (&Batch{Status: BatchStatusOpen}).IsTerminal())
	assert.False(t, (&Batch{Status: BatchStatusSolving}).IsTerminal())
	assert.False(t, (&Batch{Status: BatchStatusExecuting}).IsTerminal())
	assert.True(t, (&Batch{Status: BatchStatusSettled}).IsTerminal())
	assert.True(t, (&Batch{Status: BatchStatusCancelled}).IsTerminal())
}

func TestSolver_EffectiveReputation(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &Solver{ReputationScore: 100, LastActiveAt: base}

	t.Run("no idle time, no decay", func(t *testing.T) {
		assert.Equal(t, int64(100), s.EffectiveReputation(base, 5))
	})

	t.Run("partial day does not decay", func(t *testing.T) {
		assert.Equal(t, int64(100), s.EffectiveReputation(base.Add(23*time.Hour), 5))
	})

	t.Run("linear decay per idle day", func(t *testing.T) {
		assert.Equal(t, int64(90), s.EffectiveReputation(base.Add(48*time.Hour), 5))
	})

	t.Run("floors at zero", func(t *testing.T) {
		assert.Equal(t, int64(0), s.EffectiveReputation(base.Add(100*24*time.Hour), 5))
	})

	t.Run("zero decay rate is identity", func(t *testing.T) {
		assert.Equal(t, int64(100), s.EffectiveReputation(base.Add(100*24*time.Hour), 0))
	})

	t.Run("stored score is never mutated", func(t *testing.T) {
		_ = s.EffectiveReputation(base.Add(10*24*time.Hour), 5)
		assert.Equal(t, int64(100), s.ReputationScore)
	})
}
