package reqctx

import (
	"context"

	"lostfound/internal/models"
)

type key int

const (
	keyRequestID key = iota
	keyIdentity
	keySessionID
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

// WithIdentity stores the identity of the session owner.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, id)
}

func GetIdentity(ctx context.Context) (models.Identity, bool) {
	v, ok := ctx.Value(keyIdentity).(models.Identity)
	return v, ok
}

func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, keySessionID, sid)
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keySessionID).(string)
	return v, ok && v != ""
}
