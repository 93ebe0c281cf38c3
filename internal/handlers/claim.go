package handlers

import (
	"errors"
	"net/http"
	"strings"

	"lostfound/internal/middleware"
	"lostfound/internal/models"
	"lostfound/internal/services"
	"lostfound/internal/utils/helpers"
)

type ClaimHandler struct {
	claims *services.ClaimService
}

func NewClaimHandler(claims *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claims: claims}
}

type claimRequest struct {
	Justification string `json:"justification"`
	Legacy        string `json:"descricao_reivindicacao,omitempty"`
}

type resolveRequest struct {
	Action string `json:"action"`
	Acao   string `json:"acao,omitempty"`
}

// legacyActions maps the action names of the restricted area page.
var legacyActions = map[string]string{
	"aprovar":  string(models.ActionApprove),
	"rejeitar": string(models.ActionReject),
}

// Submit godoc
// @Summary Claim an item
// @Tags claims
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param input body claimRequest false "Justification"
// @Success 200 {object} helpers.Response{data=models.Claim}
// @Failure 401 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /api/reivindicar/{itemId} [post]
func (h *ClaimHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "itemId")
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "ID de item inválido.")
		return
	}

	var req claimRequest
	if err := helpers.DecodeJSON(r, &req); err != nil && !errors.Is(err, helpers.ErrEmptyBody) {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	claim, err := h.claims.SubmitClaim(r.Context(), id, middleware.Identity(r), firstNonEmpty(req.Justification, req.Legacy))
	if err != nil {
		writeError(w, r, err, "Erro ao reivindicar item. Tente novamente.")
		return
	}
	helpers.Success(w, http.StatusOK, "Item reivindicado com sucesso! Aguarde aprovação.", claim)
}

// ListPending godoc
// @Summary Pending claims queue
// @Tags claims
// @Produce json
// @Success 200 {object} helpers.Response{data=[]models.PendingClaim}
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Router /api/reivindicacoes [get]
func (h *ClaimHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	claims, err := h.claims.ListPendingClaims(r.Context(), middleware.Identity(r))
	if err != nil {
		writeError(w, r, err, "Erro ao buscar reivindicações.")
		return
	}
	if claims == nil {
		claims = []models.PendingClaim{}
	}
	helpers.Success(w, http.StatusOK, "", claims)
}

// Resolve godoc
// @Summary Approve or reject a pending claim
// @Tags claims
// @Accept json
// @Produce json
// @Param claimId path int true "Claim ID"
// @Param input body resolveRequest true "approve or reject"
// @Success 200 {object} helpers.Response{data=models.Claim}
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /api/admin/reivindicacao/{claimId} [post]
func (h *ClaimHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "claimId")
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "ID de reivindicação inválido.")
		return
	}

	var req resolveRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	action := firstNonEmpty(req.Action, req.Acao)
	if mapped, ok := legacyActions[strings.ToLower(action)]; ok {
		action = mapped
	}

	claim, err := h.claims.ResolveClaim(r.Context(), id, action, middleware.Identity(r))
	if err != nil {
		writeError(w, r, err, "Erro ao processar reivindicação.")
		return
	}

	msg := "Reivindicação rejeitada com sucesso!"
	if claim.Status == models.ClaimApproved {
		msg = "Reivindicação aprovada com sucesso!"
	}
	helpers.Success(w, http.StatusOK, msg, claim)
}
