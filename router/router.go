// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/cliparse"
	"github.com/danielhkuo/my-dashboard/handlers"
	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(st)
	taskHandler := handlers.NewTaskHandler(st)
	eventHandler := handlers.NewEventHandler(st)
	noteHandler := handlers.NewNoteHandler(st)
	statsHandler := handlers.NewStatsHandler(st)
	courseHandler := handlers.NewCourseHandler(st)
	lessonHandler := handlers.NewLessonHandler(st)
	infoHandler := handlers.NewInfoHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("GET /api/user/{id}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("POST /api/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(userHandler.Login))

	// Tasks
	mux.HandleFunc("GET /api/tasks/{userId}", middleware.WithLogging(taskHandler.GetTasks))
	mux.HandleFunc("POST /api/tasks", middleware.WithLogging(taskHandler.AddTask))
	mux.HandleFunc("PUT /api/tasks/{id}", middleware.WithLogging(taskHandler.UpdateTask))
	mux.HandleFunc("DELETE /api/tasks/{id}", middleware.WithLogging(taskHandler.DeleteTask))

	// Events
	mux.HandleFunc("GET /api/events/{userId}", middleware.WithLogging(eventHandler.GetEvents))
	mux.HandleFunc("POST /api/events", middleware.WithLogging(eventHandler.AddEvent))
	mux.HandleFunc("PUT /api/events/{id}", middleware.WithLogging(eventHandler.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{id}", middleware.WithLogging(eventHandler.DeleteEvent))

	// Notes
	mux.HandleFunc("GET /api/notes/{userId}", middleware.WithLogging(noteHandler.GetNote))
	mux.HandleFunc("POST /api/notes", middleware.WithLogging(noteHandler.SaveNote))

	// Stats
	mux.HandleFunc("GET /api/stats/{userId}", middleware.WithLogging(statsHandler.GetStats))

	// Courses
	mux.HandleFunc("GET /api/courses/{userId}", middleware.WithLogging(courseHandler.GetCourses))
	mux.HandleFunc("GET /api/courses/{userId}/{courseId}", middleware.WithLogging(courseHandler.GetCourse))
	mux.HandleFunc("GET /api/public-courses", middleware.WithLogging(courseHandler.GetPublicCourses))
	mux.HandleFunc("POST /api/courses", middleware.WithLogging(courseHandler.AddCourse))
	mux.HandleFunc("PUT /api/courses/{id}", middleware.WithLogging(courseHandler.UpdateCourse))
	mux.HandleFunc("DELETE /api/courses/{id}", middleware.WithLogging(courseHandler.DeleteCourse))

	// Lessons
	mux.HandleFunc("GET /api/lessons/{courseId}", middleware.WithLogging(lessonHandler.GetLessons))
	mux.HandleFunc("GET /api/lessons/{courseId}/{lessonId}", middleware.WithLogging(lessonHandler.GetLesson))
	mux.HandleFunc("POST /api/lessons", middleware.WithLogging(lessonHandler.AddLesson))
	mux.HandleFunc("PUT /api/lessons/{id}", middleware.WithLogging(lessonHandler.UpdateLesson))
	mux.HandleFunc("DELETE /api/lessons/{id}", middleware.WithLogging(lessonHandler.DeleteLesson))

	// Runtime backend info
	mux.HandleFunc("GET /api/database-info", middleware.WithLogging(infoHandler.DatabaseInfo))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("my-dashboard API v1"))
	})

	return mux
}
