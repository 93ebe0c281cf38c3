package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"lostfound/internal/logger"
	"lostfound/internal/services"
	"lostfound/internal/utils/helpers"
)

type PasswordHandler struct {
	svc       *services.PasswordService
	staticDir string
}

func NewPasswordHandler(svc *services.PasswordService, staticDir string) *PasswordHandler {
	return &PasswordHandler{svc: svc, staticDir: staticDir}
}

type forgotReq struct {
	RegistrationNumber string `json:"registrationNumber"`
	Registro           string `json:"registro,omitempty"`
}

type resetReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
	NovaSenha   string `json:"nova_senha,omitempty"`
}

// Forgot godoc
// @Summary Request a password reset
// @Description Emails a single-use reset link valid for one hour.
// @Tags password
// @Accept json
// @Produce json
// @Param input body forgotReq true "Registration number"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/forgot-password [post]
func (h *PasswordHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	var req forgotReq
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if err := h.svc.RequestReset(r.Context(), firstNonEmpty(req.RegistrationNumber, req.Registro)); err != nil {
		writeError(w, r, err, "Erro ao enviar e-mail. Tente novamente.")
		return
	}
	helpers.Success(w, http.StatusOK, "E-mail de redefinição enviado!", nil)
}

// Reset godoc
// @Summary Reset the password with a token
// @Tags password
// @Accept json
// @Produce json
// @Param input body resetReq true "Token and new password"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/reset-password [post]
func (h *PasswordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Token, firstNonEmpty(req.NewPassword, req.NovaSenha)); err != nil {
		writeError(w, r, err, "Erro ao redefinir senha. Tente novamente.")
		return
	}
	helpers.Success(w, http.StatusOK, "Senha redefinida com sucesso!", nil)
}

// ResetPage serves the reset form for links that carry a token.
func (h *PasswordHandler) ResetPage(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(r.URL.Query().Get("token")) == "" {
		logger.WithCtx(r.Context()).Warn("Reset page without token")
		http.Error(w, "Token inválido.", http.StatusBadRequest)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.staticDir, "redefinir_senha.html"))
}
