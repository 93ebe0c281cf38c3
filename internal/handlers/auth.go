package handlers

import (
	"context"
	"net/http"

	"lostfound/internal/logger"
	"lostfound/internal/middleware"
	"lostfound/internal/models"
	"lostfound/internal/services"
	"lostfound/internal/utils/helpers"

	"go.uber.org/zap"
)

// SessionIssuer creates and destroys login sessions.
type SessionIssuer interface {
	Create(ctx context.Context, w http.ResponseWriter, identity models.Identity) (*models.Session, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

type AuthHandler struct {
	authService *services.AuthService
	sessions    SessionIssuer
}

func NewAuthHandler(authService *services.AuthService, sessions SessionIssuer) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type loginRequest struct {
	RegistrationNumber string `json:"registrationNumber"`
	Registro           string `json:"registro,omitempty"`
	Password           string `json:"password"`
	Senha              string `json:"senha,omitempty"`
}

type loginResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	RedirectPath string `json:"redirectPath"`
}

type sessionUserResponse struct {
	Success bool            `json:"success"`
	User    models.Identity `json:"user"`
}

type verifyMasterRequest struct {
	Email string `json:"email"`
}

type verifyMasterResponse struct {
	Success  bool `json:"success"`
	IsMaster bool `json:"isMaster"`
}

type usersResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}

// Login godoc
// @Summary User login
// @Description Verifies the registration number and password and starts a 24h session.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	user, err := h.authService.Authenticate(r.Context(),
		firstNonEmpty(req.RegistrationNumber, req.Registro),
		firstNonEmpty(req.Password, req.Senha),
	)
	if err != nil {
		writeError(w, r, err, "Erro ao autenticar. Tente novamente.")
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, user.Identity()); err != nil {
		writeError(w, r, err, "Erro ao autenticar. Tente novamente.")
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		Success:      true,
		Message:      "Login bem-sucedido! Redirecionando...",
		RedirectPath: services.LandingPage(user.Role),
	})
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.Response
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		logger.WithCtx(r.Context()).Error("Logout failed", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Erro ao fazer logout.")
		return
	}
	helpers.Success(w, http.StatusOK, "Logout realizado com sucesso!", nil)
}

// CheckAuth godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} sessionUserResponse
// @Failure 401 {object} helpers.Response
// @Router /api/check-auth [get]
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	id := middleware.Identity(r)
	if id == nil {
		helpers.Error(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}
	helpers.JSON(w, http.StatusOK, sessionUserResponse{Success: true, User: *id})
}

// CheckMaster godoc
// @Summary Current master session
// @Tags auth
// @Produce json
// @Success 200 {object} sessionUserResponse
// @Failure 401 {object} helpers.Response
// @Router /api/check-master [get]
func (h *AuthHandler) CheckMaster(w http.ResponseWriter, r *http.Request) {
	id := middleware.Identity(r)
	if id == nil || !id.Role.IsMaster() {
		helpers.Error(w, http.StatusUnauthorized, "Acesso restrito a usuários master.")
		return
	}
	helpers.JSON(w, http.StatusOK, sessionUserResponse{Success: true, User: *id})
}

// VerifyMaster godoc
// @Summary Check whether an email belongs to a master
// @Tags auth
// @Accept json
// @Produce json
// @Param input body verifyMasterRequest true "Email"
// @Success 200 {object} verifyMasterResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Router /api/verificar-master [post]
func (h *AuthHandler) VerifyMaster(w http.ResponseWriter, r *http.Request) {
	var req verifyMasterRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	ok, err := h.authService.IsMasterEmail(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err, "Erro ao verificar acesso.")
		return
	}
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Acesso negado. Usuário não é master.")
		return
	}
	helpers.JSON(w, http.StatusOK, verifyMasterResponse{Success: true, IsMaster: true})
}

// ListUsers godoc
// @Summary List accounts
// @Tags auth
// @Produce json
// @Param role query string false "regular or master"
// @Success 200 {object} usersResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Router /api/list-users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context(), middleware.Identity(r), r.URL.Query().Get("role"))
	if err != nil {
		writeError(w, r, err, "Erro ao listar usuários.")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	helpers.JSON(w, http.StatusOK, usersResponse{Success: true, Users: users})
}

// RegisterUser godoc
// @Summary Register a regular account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegistrationInput true "Account"
// @Success 201 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/registrar-usuario [post]
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in models.RegistrationInput
	if err := helpers.DecodeJSON(r, &in); err != nil {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), in, models.RoleRegular)
	if err != nil {
		writeError(w, r, err, "Erro ao processar o cadastro. Tente novamente.")
		return
	}
	helpers.Success(w, http.StatusCreated, "Usuário cadastrado com sucesso!", user)
}

// RegisterMaster godoc
// @Summary Register a master account
// @Description Requires a master session, except while no master exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegistrationInput true "Account"
// @Success 201 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Router /api/registrar-master [post]
func (h *AuthHandler) RegisterMaster(w http.ResponseWriter, r *http.Request) {
	var in models.RegistrationInput
	if err := helpers.DecodeJSON(r, &in); err != nil {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	user, err := h.authService.RegisterMaster(r.Context(), middleware.Identity(r), in)
	if err != nil {
		writeError(w, r, err, "Erro ao processar o cadastro. Tente novamente.")
		return
	}
	helpers.Success(w, http.StatusCreated, "Usuário master cadastrado com sucesso!", user)
}
