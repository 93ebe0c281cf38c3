package middleware

import (
	"context"
	"errors"
	"net/http"

	"lostfound/internal/logger"
	"lostfound/internal/models"
	"lostfound/internal/reqctx"
	"lostfound/internal/session"

	"go.uber.org/zap"
)

type SessionResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*models.Session, error)
}

// LoadSession puts the identity of a live session into the request context.
// Requests without a session pass through anonymously.
func LoadSession(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := sessions.Resolve(r.Context(), r)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					logger.WithCtx(r.Context()).Error("Session lookup failed", zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := reqctx.WithIdentity(r.Context(), s.Identity)
			ctx = reqctx.WithSessionID(ctx, s.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the session identity of the request, or nil.
func Identity(r *http.Request) *models.Identity {
	id, ok := reqctx.GetIdentity(r.Context())
	if !ok {
		return nil
	}
	return &id
}
