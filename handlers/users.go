// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

type UserHandler struct {
	store store.Store
}

func NewUserHandler(st store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// GetUser handles GET /api/user/{id}
//
// An unknown id yields 200 with an empty object, not 404; the front end
// treats the empty object as "not logged in".
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get user")
		return
	}
	if user == nil {
		middleware.JSONResponse(w, http.StatusOK, struct{}{})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}

// Register handles POST /api/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	user, err := h.store.RegisterUser(req.Name, req.Email)
	if err != nil {
		storeError(w, err, "failed to register user")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// Login handles POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := h.store.LoginUser(req.Email)
	if err != nil {
		storeError(w, err, "failed to login user")
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}
