// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

type CourseHandler struct {
	store store.Store
}

func NewCourseHandler(st store.Store) *CourseHandler {
	return &CourseHandler{store: st}
}

// GetCourses handles GET /api/courses/{userId}
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.GetCourses(r.PathValue("userId"))
	if err != nil {
		storeError(w, err, "failed to get courses")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, courses)
}

// GetPublicCourses handles GET /api/public-courses
//
// The optional ?exclude={userId} query drops that user's own courses from
// the listing (best-effort, see store docs).
func (h *CourseHandler) GetPublicCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.GetPublicCourses(r.URL.Query().Get("exclude"))
	if err != nil {
		storeError(w, err, "failed to get public courses")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/courses/{userId}/{courseId}
//
// The course must belong to the named user; anyone else's course id is
// reported as not found.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.store.GetCourseWithLessons(r.PathValue("courseId"))
	if err != nil {
		storeError(w, err, "failed to get course")
		return
	}
	if course == nil || course.UserID != r.PathValue("userId") {
		middleware.ErrorResponse(w, http.StatusNotFound, "Course not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, course)
}

// AddCourse handles POST /api/courses
func (h *CourseHandler) AddCourse(w http.ResponseWriter, r *http.Request) {
	var req models.AddCourseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" || req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User ID and title are required")
		return
	}

	course, err := h.store.AddCourse(req.UserID, req.Title, req.Description, req.IsPublic)
	if err != nil {
		storeError(w, err, "failed to add course")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, course)
}

// UpdateCourse handles PUT /api/courses/{id}
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCourseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}

	if err := h.store.UpdateCourse(r.PathValue("id"), req.Title, req.Description, req.IsPublic); err != nil {
		storeError(w, err, "failed to update course")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgCourseUpdated})
}

// DeleteCourse handles DELETE /api/courses/{id}
//
// Lessons of a deleted course are left in place.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCourse(r.PathValue("id")); err != nil {
		storeError(w, err, "failed to delete course")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgCourseDeleted})
}
