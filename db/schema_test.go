// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/my-dashboard/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestCreateSchema(t *testing.T) {
	conn := openTestDB(t)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}

	// Idempotent thanks to IF NOT EXISTS
	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema second run: %v", err)
	}

	for _, table := range []string{"users", "tasks", "events", "notes", "stats", "courses", "lessons"} {
		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestSeed(t *testing.T) {
	conn := openTestDB(t)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	if err := db.Seed(conn, "sqlite"); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	counts := map[string]int{
		"users":   1,
		"tasks":   3,
		"events":  3,
		"notes":   1,
		"stats":   3,
		"courses": 2,
		"lessons": 3,
	}
	for table, want := range counts {
		var got int
		if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("table %s: expected %d rows, got %d", table, want, got)
		}
	}

	// The demo user owns everything
	var email string
	if err := conn.QueryRow("SELECT email FROM users").Scan(&email); err != nil {
		t.Fatalf("query user: %v", err)
	}
	if email != "demo@example.com" {
		t.Errorf("unexpected demo user email: %s", email)
	}
}

func TestRebind(t *testing.T) {
	testCases := []struct {
		name     string
		driver   string
		query    string
		expected string
	}{
		{
			name:     "sqlite unchanged",
			driver:   "sqlite",
			query:    "SELECT * FROM tasks WHERE user_id = ? AND completed = ?",
			expected: "SELECT * FROM tasks WHERE user_id = ? AND completed = ?",
		},
		{
			name:     "postgres numbered",
			driver:   "postgres",
			query:    "SELECT * FROM tasks WHERE user_id = ? AND completed = ?",
			expected: "SELECT * FROM tasks WHERE user_id = $1 AND completed = $2",
		},
		{
			name:     "postgres no placeholders",
			driver:   "postgres",
			query:    "SELECT COUNT(*) FROM users",
			expected: "SELECT COUNT(*) FROM users",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := db.Rebind(tc.driver, tc.query); got != tc.expected {
				t.Errorf("Rebind(%q) = %q, want %q", tc.query, got, tc.expected)
			}
		})
	}
}
