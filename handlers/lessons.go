// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

type LessonHandler struct {
	store store.Store
}

func NewLessonHandler(st store.Store) *LessonHandler {
	return &LessonHandler{store: st}
}

// GetLessons handles GET /api/lessons/{courseId}
func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.store.GetLessons(r.PathValue("courseId"))
	if err != nil {
		storeError(w, err, "failed to get lessons")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, lessons)
}

// GetLesson handles GET /api/lessons/{courseId}/{lessonId}
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.store.GetLesson(r.PathValue("courseId"), r.PathValue("lessonId"))
	if err != nil {
		storeError(w, err, "failed to get lesson")
		return
	}
	if lesson == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Lesson not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, lesson)
}

// AddLesson handles POST /api/lessons
func (h *LessonHandler) AddLesson(w http.ResponseWriter, r *http.Request) {
	var req models.AddLessonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CourseID == "" || req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Course ID and title are required")
		return
	}

	lesson, err := h.store.AddLesson(req.CourseID, req.Title, req.Content, req.LessonOrder)
	if err != nil {
		storeError(w, err, "failed to add lesson")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, lesson)
}

// UpdateLesson handles PUT /api/lessons/{id}
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLessonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}

	if err := h.store.UpdateLesson(r.PathValue("id"), req.Title, req.Content, req.LessonOrder); err != nil {
		storeError(w, err, "failed to update lesson")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgLessonUpdated})
}

// DeleteLesson handles DELETE /api/lessons/{id}
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteLesson(r.PathValue("id")); err != nil {
		storeError(w, err, "failed to delete lesson")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgLessonDeleted})
}
