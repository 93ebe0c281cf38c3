package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lostfound/internal/logger"
	"lostfound/internal/services"
	"lostfound/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// statusOf maps service errors to HTTP status codes and user facing messages.
// Unknown errors are 500 with fallback as the message.
func statusOf(err error, fallback string) (int, string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, services.ErrClaimAlreadyResolved):
		return http.StatusBadRequest, "Esta reivindicação já foi processada."
	case errors.Is(err, services.ErrInvalidAction):
		return http.StatusBadRequest, "Ação inválida."
	case errors.Is(err, services.ErrInvalidCategory):
		return http.StatusBadRequest, "Categoria inválida. Escolha entre: all, clothing, electronics, documents, other."
	case errors.Is(err, services.ErrInvalidOrExpiredToken):
		return http.StatusBadRequest, "Token inválido ou expirado."
	case errors.Is(err, services.ErrDuplicateIdentity):
		return http.StatusBadRequest, "Registro ou e-mail já cadastrado."
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Senha incorreta."
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrNoSession):
		return http.StatusUnauthorized, "Não autenticado. Faça login para continuar."
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, "Acesso restrito a usuários master."
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound, "Registro não encontrado."
	case errors.Is(err, services.ErrItemNotEligible):
		return http.StatusNotFound, "Item não encontrado ou já foi reclamado."
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "Registro não encontrado."
	case errors.Is(err, services.ErrItemNotReturnable):
		return http.StatusConflict, "O item precisa estar reclamado para ser marcado como devolvido."
	default:
		return http.StatusInternalServerError, fallback
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, msg := statusOf(err, fallback)
	log := logger.WithCtx(r.Context()).With(zap.String("path", r.URL.Path), zap.Int("status", status))
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", zap.Error(err))
	} else {
		log.Warn("Request rejected", zap.Error(err))
	}
	helpers.Error(w, status, msg)
}

// pathID parses a positive integer path variable.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// firstNonEmpty returns the first non-empty value, so that both the English
// and the legacy Portuguese field names of the static pages are accepted.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
