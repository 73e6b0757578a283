// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Seed loads a small set of demo data: one user with tasks, events, a note,
// stats, and two courses with lessons. Relational backends only; the
// document backend starts empty.
func Seed(db *sql.DB, driver string) error {
	now := time.Now().UTC()

	userID, err := seedInsert(db, driver,
		"INSERT INTO users (name, email, created_at, updated_at) VALUES (?, ?, ?, ?)",
		"Demo User", "demo@example.com", now, now)
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	tasks := []struct {
		text      string
		completed bool
	}{
		{"Review calendar for the week", false},
		{"Finish the dashboard mockup", false},
		{"Reply to course feedback", true},
	}
	for i, task := range tasks {
		ts := now.Add(time.Duration(i) * time.Second)
		_, err := db.Exec(Rebind(driver,
			"INSERT INTO tasks (user_id, text, completed, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"),
			userID, task.text, task.completed, ts, ts)
		if err != nil {
			return fmt.Errorf("failed to seed task: %w", err)
		}
	}

	events := []struct {
		title, date, clock string
		description        string
	}{
		{"Team standup", "2025-09-01", "09:00", "Weekly sync"},
		{"Dentist", "2025-09-03", "14:30", ""},
		{"Course planning", "2025-09-03", "16:00", "Outline next module"},
	}
	for _, ev := range events {
		var desc *string
		if ev.description != "" {
			desc = &ev.description
		}
		_, err := db.Exec(Rebind(driver,
			"INSERT INTO events (user_id, title, event_date, event_time, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)"),
			userID, ev.title, ev.date, ev.clock, desc, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed event: %w", err)
		}
	}

	_, err = db.Exec(Rebind(driver,
		"INSERT INTO notes (user_id, content, created_at, updated_at) VALUES (?, ?, ?, ?)"),
		userID, "Welcome to your dashboard. This note is all yours.", now, now)
	if err != nil {
		return fmt.Errorf("failed to seed note: %w", err)
	}

	stats := []struct {
		label string
		value int
	}{
		{"tasks_completed", 12},
		{"events_attended", 5},
		{"lessons_finished", 8},
	}
	for _, st := range stats {
		_, err := db.Exec(Rebind(driver,
			"INSERT INTO stats (user_id, label, value, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"),
			userID, st.label, st.value, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed stat: %w", err)
		}
	}

	goDesc := "An introduction to building web services in Go"
	courseID, err := seedInsert(db, driver,
		"INSERT INTO courses (user_id, title, description, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		userID, "Go for Web Developers", &goDesc, true, now, now)
	if err != nil {
		return fmt.Errorf("failed to seed course: %w", err)
	}

	lessons := []struct {
		title   string
		content string
		order   int
	}{
		{"Getting started", "Install the toolchain and write a hello server.", 0},
		{"Routing and handlers", "Wire up net/http with method-based routes.", 1},
		{"Talking to a database", "database/sql, drivers, and scanning rows.", 2},
	}
	for _, lesson := range lessons {
		content := lesson.content
		_, err := db.Exec(Rebind(driver,
			"INSERT INTO lessons (course_id, title, content, lesson_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"),
			courseID, lesson.title, &content, lesson.order, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed lesson: %w", err)
		}
	}

	_, err = seedInsert(db, driver,
		"INSERT INTO courses (user_id, title, description, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		userID, "Private scratchpad course", nil, false, now.Add(time.Second), now.Add(time.Second))
	if err != nil {
		return fmt.Errorf("failed to seed course: %w", err)
	}

	return nil
}

// seedInsert runs an INSERT and returns the generated key. lib/pq does not
// implement LastInsertId, so the postgres path appends RETURNING id.
func seedInsert(db *sql.DB, driver, query string, args ...any) (int64, error) {
	if driver == "postgres" {
		var id int64
		err := db.QueryRow(Rebind(driver, query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
