// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles relational schema creation and demo data.

# Schema Creation

CreateSchema initializes all required tables for the selected driver:

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: registered accounts (email uniqueness is enforced by the store
    layer, not the schema - see CreateSchema)
  - tasks: todo items per user
  - events: calendar entries per user
  - notes: freeform note, one live row per user
  - stats: label/value metrics per user
  - courses: learning courses owned by a user, optionally public
  - lessons: ordered lessons per course

# Relationships

	users 1--* tasks
	users 1--* events
	users 1--1 notes
	users 1--* stats
	users 1--* courses
	courses 1--* lessons

Foreign keys do not cascade: deleting a course orphans its lessons.

# Seeding

Seed loads a demo user with data in every table. It is wired to the -seed
flag of the server binary and only supports the relational backends.
*/
package db
