// Package store provides focused, single-concern data access stores
// for the fight graph.
//
// Each store owns one domain (fighters, bouts, capabilities) and embeds
// shared helpers (Pool, logger) via the Base struct. Stores never import
// each other; shared logic lives in this file or in scan.go.
//
// Every batch operation here is set-oriented: one unioned query per
// batch, never one query per fighter. That is the system's primary
// scalability lever and must survive any refactor.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
