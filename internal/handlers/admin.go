package handlers

import (
	"net/http"
	"strconv"

	"lostfound/internal/middleware"
	"lostfound/internal/models"
	"lostfound/internal/services"
	"lostfound/internal/utils/helpers"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Stats godoc
// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Success 200 {object} helpers.Response{data=models.SystemStats}
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context(), middleware.Identity(r))
	if err != nil {
		writeError(w, r, err, "Erro ao carregar estatísticas.")
		return
	}
	helpers.Success(w, http.StatusOK, "", stats)
}

// FailedNotifications godoc
// @Summary Emails that exhausted their retries
// @Tags admin
// @Produce json
// @Param limit query int false "Max rows (default 100, max 500)"
// @Success 200 {object} helpers.Response{data=[]models.DeadLetter}
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Router /api/admin/notificacoes-falhas [get]
func (h *AdminHandler) FailedNotifications(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := h.admin.FailedNotifications(r.Context(), middleware.Identity(r), limit)
	if err != nil {
		writeError(w, r, err, "Erro ao carregar notificações.")
		return
	}
	if rows == nil {
		rows = []models.DeadLetter{}
	}
	helpers.Success(w, http.StatusOK, "", rows)
}
