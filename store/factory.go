// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/my-dashboard/cliparse"
)

// New selects and opens the backend named by cfg.DatabaseType. Unknown
// kinds fail fast before any connection is attempted.
func New(cfg cliparse.Config) (Store, error) {
	switch strings.ToLower(cfg.DatabaseType) {
	case cliparse.TypeSQLite, cliparse.TypePostgres:
		slog.Info("using relational database", "driver", cfg.DatabaseType)
		return OpenSQL(cfg)
	case cliparse.TypeSurreal:
		slog.Info("using SurrealDB document database", "url", cfg.SurrealURL)
		return OpenSurreal(cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %q", cfg.DatabaseType)
	}
}
