package service

import "context"

// Re-entrancy markers. Each component stamps the context it hands to
// collaborators while holding its own lock; a nested call back into the same
// component observes the stamp before touching the lock and fails fast
// instead of deadlocking. Independent goroutines carry fresh contexts and
// serialize on the lock as usual.
type guardKey int

const (
	ledgerGuardKey guardKey = iota
	auctionGuardKey
	registryGuardKey
)

func markCall(ctx context.Context, key guardKey) context.Context {
	return context.WithValue(ctx, key, true)
}

func inCall(ctx context.Context, key guardKey) bool {
	active, _ := ctx.Value(key).(bool)
	return active
}
