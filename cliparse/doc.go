// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves server configuration.

Settings are read from CLI flags first, then environment variables, then
hardcoded development defaults:

  - PORT (-p): server port (default 3001)
  - DATABASE_TYPE (-t): "sqlite", "postgres" or "surreal" (default sqlite)
  - DATABASE_URL (-d): relational DSN (default my_dashboard.db)
  - SURREALDB_URL / SURREALDB_NS / SURREALDB_DB: document store location
  - SURREALDB_USER / SURREALDB_PASS: document store credentials

The resulting Config value is immutable by convention: it is passed by
value and never mutated after ParseFlags returns.
*/
package cliparse
