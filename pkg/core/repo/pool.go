package repo

import "context"

type ConnHandler func(context.Context, Conn) error

type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}

// PoolSet is the process-wide registry of credential pools, one per
// canonical system role. It is created once at startup (all pools or
// none) and torn down only at process shutdown; the raw per-role
// registry is never exposed for ad-hoc mutation.
type PoolSet interface {
	// Get returns the pool backing the given effective role string.
	// It is total: any value which is not a known canonical role,
	// including the empty string, selects the guest pool. Beyond the
	// normal connection acquisition counters of the returned pool, it
	// has no side effects.
	Get(role string) Pool

	// Lookup returns the fixed elevated pool which the login path
	// uses for principal lookup. Looking up arbitrary principals'
	// roles is itself privileged, so the login path bypasses the
	// per-request Get selection.
	Lookup() Pool

	// Close tears all pools down.
	Close() error
}
