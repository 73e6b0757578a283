// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

type EventHandler struct {
	store store.Store
}

func NewEventHandler(st store.Store) *EventHandler {
	return &EventHandler{store: st}
}

// GetEvents handles GET /api/events/{userId}
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.GetEvents(r.PathValue("userId"))
	if err != nil {
		storeError(w, err, "failed to get events")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, events)
}

// AddEvent handles POST /api/events
func (h *EventHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventData
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" || req.Title == "" || req.EventDate == "" || req.EventTime == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	event, err := h.store.AddEvent(req)
	if err != nil {
		storeError(w, err, "failed to add event")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, event)
}

// UpdateEvent handles PUT /api/events/{id}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventData
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.EventDate == "" || req.EventTime == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.store.UpdateEvent(r.PathValue("id"), req); err != nil {
		storeError(w, err, "failed to update event")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgEventUpdated})
}

// DeleteEvent handles DELETE /api/events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteEvent(r.PathValue("id")); err != nil {
		storeError(w, err, "failed to delete event")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: store.MsgEventDeleted})
}
