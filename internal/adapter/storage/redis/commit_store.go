package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// CommitStore implements ports.CommitGuard using Redis SET NX. Commitment
// hashes are burned protocol-wide, so the key carries no batch or user scope.
type CommitStore struct {
	client *goredis.Client
	prefix string
}

// NewCommitStore creates a new Redis-backed commit guard.
func NewCommitStore(client *goredis.Client) *CommitStore {
	return &CommitStore{
		client: client,
		prefix: "commit:",
	}
}

// CheckAndSet atomically records the commit hash if unseen.
// Returns true if the hash is new, false if already used.
func (s *CommitStore) CheckAndSet(ctx context.Context, commitHash domain.Hash, ttl time.Duration) (bool, error) {
	key := s.prefix + string(commitHash)
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — the hash was already used
			return false, nil
		}
		return false, fmt.Errorf("redis commit check: %w", err)
	}
	return result == "OK", nil
}

var _ ports.CommitGuard = (*CommitStore)(nil)
