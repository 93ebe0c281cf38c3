package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lostfound/internal/logger"
	"lostfound/internal/metrics"
	"lostfound/internal/models"
	"lostfound/internal/repository"
	"lostfound/internal/utils"

	"go.uber.org/zap"
)

var ErrInvalidRole = errors.New("invalid role")

const DefaultCookieName = "lf_session"

type Options struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
	Now        func() time.Time
}

type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
	cookie string
	secure bool
	now    func() time.Time
}

func NewManager(store Store, opts Options) *Manager {
	m := &Manager{
		store:  store,
		secret: opts.Secret,
		ttl:    opts.TTL,
		cookie: opts.CookieName,
		secure: opts.Secure,
		now:    opts.Now,
	}
	if m.ttl <= 0 {
		m.ttl = 24 * time.Hour
	}
	if m.cookie == "" {
		m.cookie = DefaultCookieName
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

func (m *Manager) CookieName() string { return m.cookie }

// Create starts a session for identity and sets the session cookie on w.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, identity models.Identity) (*models.Session, error) {
	if !identity.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, identity.Role)
	}

	id, err := utils.GenerateToken(32)
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := m.now()
	s := &models.Session{
		ID:        id,
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}

	value, err := utils.SignSessionID(m.secret, id, s.ExpiresAt)
	if err != nil {
		_ = m.store.Delete(ctx, id)
		return nil, fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    value,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	logger.WithCtx(ctx).Info("Session created",
		zap.Int64("user_id", identity.UserID),
		zap.String("role", string(identity.Role)),
		zap.Time("expires_at", s.ExpiresAt),
	)
	return s, nil
}

// Resolve returns the live session referenced by the request cookie.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*models.Session, error) {
	c, err := r.Cookie(m.cookie)
	if err != nil || c.Value == "" {
		return nil, ErrNoSession
	}

	id, err := utils.ParseSessionID(m.secret, c.Value)
	if err != nil {
		logger.WithCtx(ctx).Debug("Rejected session cookie", zap.Error(err))
		return nil, ErrNoSession
	}

	s, err := m.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoSession) || errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	if s.Expired(m.now()) {
		_ = m.store.Delete(ctx, id)
		return nil, ErrNoSession
	}
	return s, nil
}

// Destroy removes the session referenced by the request, if any, and
// expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var err error
	if c, cerr := r.Cookie(m.cookie); cerr == nil {
		if id, perr := utils.ParseSessionID(m.secret, c.Value); perr == nil {
			err = m.store.Delete(ctx, id)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return err
}

// Purge removes expired sessions from the store.
func (m *Manager) Purge(ctx context.Context) (int, error) {
	n, err := m.store.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, err
	}
	metrics.SessionsPurged.Add(float64(n))
	return n, nil
}

// RunJanitor purges expired sessions every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			n, err := m.Purge(ctx)
			if err != nil {
				logger.Log.Warn("Session purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Log.Debug("Expired sessions purged", zap.Int("count", n))
			}
		}
	}
}
