// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the my-dashboard API.

# Handler Types

Each handler is a struct holding the data-access store:

  - UserHandler: registration, login, profile fetch
  - TaskHandler: todo CRUD
  - EventHandler: calendar CRUD
  - NoteHandler: single-note read and upsert
  - StatsHandler: dashboard counters
  - CourseHandler: course CRUD and the public listing
  - LessonHandler: lesson CRUD scoped to a course
  - InfoHandler: reports the active database backend

Handlers are created via constructor functions that accept the store:

	userHandler := handlers.NewUserHandler(st)

# Error Mapping

Handlers validate required fields themselves and respond 400; failures
from the store are classified with errors.Is against the store sentinels:

	ErrValidation → 400
	ErrConflict   → 409
	ErrNotFound   → 404
	anything else → 500

Successful mutations that do not return a record respond with
{"message": ...} confirmations shared across both backends.

# Quirks Kept On Purpose

GET /api/user/{id} and GET /api/notes/{userId} return 200 with an empty
object when nothing matches. POST /api/login returns 401 "User not found"
for an unknown email. POST /api/tasks performs no field validation and
responds 200, not 201.
*/
package handlers
