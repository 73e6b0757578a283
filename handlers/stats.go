// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/store"
)

type StatsHandler struct {
	store store.Store
}

func NewStatsHandler(st store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// GetStats handles GET /api/stats/{userId}
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.PathValue("userId"))
	if err != nil {
		storeError(w, err, "failed to get stats")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stats)
}
