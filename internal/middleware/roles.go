package middleware

import (
	"net/http"

	"lostfound/internal/logger"
	"lostfound/internal/models"
	"lostfound/internal/reqctx"
	"lostfound/internal/utils/helpers"
)

// RequireAuth rejects requests without a session with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := reqctx.GetIdentity(r.Context()); !ok {
			helpers.Error(w, http.StatusUnauthorized, "Não autenticado. Faça login para continuar.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// OnlyRole rejects requests without a session with 401 and sessions of
// another role with 403.
func OnlyRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := reqctx.GetIdentity(r.Context())
			if !ok {
				helpers.Error(w, http.StatusUnauthorized, "Não autenticado. Faça login para continuar.")
				return
			}
			if id.Role != role {
				logger.WithCtx(r.Context()).Warn("Access denied for role")
				helpers.Error(w, http.StatusForbidden, "Acesso negado.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireMaster allows master sessions only.
func RequireMaster(next http.Handler) http.Handler {
	return OnlyRole(models.RoleMaster)(next)
}
