// Package resolver maps Zalo numeric ids to display names. The backup
// container itself carries no contact list, so names come from an
// optional SQLCipher contacts index exported separately; without one,
// every lookup misses and callers fall back to placeholder names.
package resolver

import (
	"context"

	"github.com/j1nxie/app-z-to-dht/internal/zalo"
)

// Resolver resolves an id to a display name. An empty name with a nil
// error is a miss, not a failure.
type Resolver interface {
	Lookup(ctx context.Context, id int64, kind zalo.Kind) (string, error)
}

// Noop is the resolver used when no contacts index was supplied.
type Noop struct{}

func (Noop) Lookup(context.Context, int64, zalo.Kind) (string, error) {
	return "", nil
}
