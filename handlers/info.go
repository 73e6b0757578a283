// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/my-dashboard/cliparse"
	"github.com/danielhkuo/my-dashboard/middleware"
	"github.com/danielhkuo/my-dashboard/models"
)

type InfoHandler struct {
	cfg cliparse.Config
}

func NewInfoHandler(cfg cliparse.Config) *InfoHandler {
	return &InfoHandler{cfg: cfg}
}

// DatabaseInfo handles GET /api/database-info
func (h *InfoHandler) DatabaseInfo(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DatabaseInfoResponse{
		DatabaseType: h.cfg.DatabaseType,
		Message:      fmt.Sprintf("Currently using %s database", h.cfg.DatabaseType),
	})
}
