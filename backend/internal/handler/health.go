package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, nil)
}

// Ready reports 503 while the database does not answer a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("readiness check failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, api.Failure(http.StatusServiceUnavailable, "database unavailable"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
