// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

type TaskHandler struct {
	store store.Store
}

func NewTaskHandler(st store.Store) *TaskHandler {
	return &TaskHandler{store: st}
}

// GetTasks handles GET /api/tasks/{userId}
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.GetTasks(r.PathValue("userId"))
	if err != nil {
		storeError(w, err, "failed to get tasks")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, tasks)
}

// AddTask handles POST /api/tasks
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req models.AddTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	task, err := h.store.AddTask(req.UserID, req.Text)
	if err != nil {
		storeError(w, err, "failed to add task")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, task)
}

// UpdateTask handles PUT /api/tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.UpdateTask(r.PathValue("id"), req.Text, req.Completed); err != nil {
		storeError(w, err, "failed to update task")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgTaskUpdated})
}

// DeleteTask handles DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTask(r.PathValue("id")); err != nil {
		storeError(w, err, "failed to delete task")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgTaskDeleted})
}
