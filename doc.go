// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the my-dashboard API server.

my-dashboard is a personal dashboard backend (tasks, calendar events, a
scratch note, activity stats, and courses with lessons) that can run
against either a relational database or a document database, selected at
startup.

# Starting the Server

The server runs with environment variables or CLI flags for configuration:

	DATABASE_TYPE=sqlite go run main.go

Or with flags:

	go run main.go -p 3001 -t postgres -d "postgres://..."

# Configuration

Common settings:

  - DATABASE_TYPE (-t): sqlite, postgres, or surreal (default: sqlite)
  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - PORT (-p): Server port (default: 3001)

SurrealDB settings (only read when DATABASE_TYPE=surreal):

  - SURREALDB_URL (-surreal-url), SURREALDB_NS (-surreal-ns)
  - SURREALDB_DB (-surreal-db), SURREALDB_USER, SURREALDB_PASS

Passing -seed loads demo data into the relational database and exits.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: data-access contract with relational and document backends
  - handlers: HTTP request handlers (users, tasks, events, notes, courses)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Relational schema creation and seed data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
