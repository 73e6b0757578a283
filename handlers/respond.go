// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/store"
)

// storeError translates a data-access failure into an HTTP response.
// Classified errors carry their own user-facing message; anything else is
// an internal failure.
func storeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, store.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		slog.Error(op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
