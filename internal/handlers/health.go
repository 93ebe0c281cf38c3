package handlers

import (
	"context"
	"net/http"
	"time"

	"lostfound/internal/logger"
	"lostfound/internal/utils/helpers"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {object} helpers.Response
// @Router /livez [get]
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	helpers.Success(w, http.StatusOK, "ok", nil)
}

// Ready godoc
// @Summary Readiness probe
// @Description Fails with 503 while the database is unreachable.
// @Tags health
// @Success 200 {object} helpers.Response
// @Failure 503 {object} helpers.Response
// @Router /readyz [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		logger.WithCtx(r.Context()).Warn("Readiness check failed", zap.Error(err))
		helpers.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	helpers.Success(w, http.StatusOK, "ready", nil)
}
