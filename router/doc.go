// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the my-dashboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Users:

	GET  /api/user/{id}  - Fetch user (empty object when unknown)
	POST /api/register   - Create user
	POST /api/login      - Look up user by email

Tasks:

	GET    /api/tasks/{userId}
	POST   /api/tasks
	PUT    /api/tasks/{id}
	DELETE /api/tasks/{id}

Events:

	GET    /api/events/{userId}
	POST   /api/events
	PUT    /api/events/{id}
	DELETE /api/events/{id}

Notes and stats:

	GET  /api/notes/{userId} - The user's single note (empty object when none)
	POST /api/notes          - Create or update the note
	GET  /api/stats/{userId}

Courses and lessons:

	GET    /api/courses/{userId}
	GET    /api/courses/{userId}/{courseId} - Course with its lessons
	GET    /api/public-courses              - All public courses (?exclude=userId)
	POST   /api/courses
	PUT    /api/courses/{id}
	DELETE /api/courses/{id}
	GET    /api/lessons/{courseId}
	GET    /api/lessons/{courseId}/{lessonId}
	POST   /api/lessons
	PUT    /api/lessons/{id}
	DELETE /api/lessons/{id}

Runtime info:

	GET /api/database-info - Which backend the server is running on

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(st)
	courseHandler := handlers.NewCourseHandler(st)

All handlers receive the store; InfoHandler receives the configuration.
*/
package router
