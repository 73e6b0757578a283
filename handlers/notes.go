// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

type NoteHandler struct {
	store store.Store
}

func NewNoteHandler(st store.Store) *NoteHandler {
	return &NoteHandler{store: st}
}

// GetNote handles GET /api/notes/{userId}
//
// A user with no note gets 200 with an empty object.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.store.GetNote(r.PathValue("userId"))
	if err != nil {
		storeError(w, err, "failed to get note")
		return
	}
	if note == nil {
		middleware.JSONResponse(w, http.StatusOK, struct{}{})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, note)
}

// SaveNote handles POST /api/notes
func (h *NoteHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req models.SaveNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	msg, err := h.store.SaveNote(req.UserID, req.Content)
	if err != nil {
		storeError(w, err, "failed to save note")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: msg})
}
