package services

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"testing"
	"time"

	"lostfound/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncMail struct {
	mailer *fakeMailer
}

func (s syncMail) SendNow(ctx context.Context, msg Notification) error {
	n := NewNotifier(s.mailer, nil, NotifierConfig{})
	return n.SendNow(ctx, msg)
}

var linkRe = regexp.MustCompile(`href="([^"]+)"`)

func resetTokenFrom(t *testing.T, body string) string {
	t.Helper()
	m := linkRe.FindStringSubmatch(body)
	require.Len(t, m, 2, "reset email carries a link")
	u, err := url.Parse(m[1])
	require.NoError(t, err)
	assert.Equal(t, "/reset-password", u.Path)
	return u.Query().Get("token")
}

func newPasswordEnv(t *testing.T) (*env, *PasswordService, *fakeMailer) {
	e := newEnv(t)
	mailer := &fakeMailer{}
	svc := NewPasswordService(fakeUsers{e.db}, fakeResets{e.db}, syncMail{mailer}, "https://achados.test/", time.Hour)
	return e, svc, mailer
}

func TestPasswordResetFlow(t *testing.T) {
	e, svc, mailer := newPasswordEnv(t)
	ctx := context.Background()
	e.user(t, "123456", models.RoleRegular)

	require.NoError(t, svc.RequestReset(ctx, "123456"))

	_, sent := mailer.snapshot()
	require.Len(t, sent, 1)
	assert.Equal(t, "u123456@"+testDomain, sent[0].To)
	token := resetTokenFrom(t, sent[0].Body)
	require.NotEmpty(t, token)

	for hash := range e.db.tokens {
		assert.NotEqual(t, token, hash, "only the fingerprint is stored")
	}

	require.NoError(t, svc.ResetPassword(ctx, token, "novaSenha"))

	_, err := e.auth.Authenticate(ctx, "123456", "novaSenha")
	assert.NoError(t, err)
	_, err = e.auth.Authenticate(ctx, "123456", "segredo1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ResetPassword(ctx, token, "outraSenha")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken, "tokens are single use")
}

func TestPasswordResetUnknownUser(t *testing.T) {
	_, svc, mailer := newPasswordEnv(t)

	err := svc.RequestReset(context.Background(), "654321")
	assert.ErrorIs(t, err, ErrUserNotFound)
	calls, _ := mailer.snapshot()
	assert.Zero(t, calls)

	var verr *ValidationError
	err = svc.RequestReset(context.Background(), "abc")
	assert.True(t, errors.As(err, &verr))
}

func TestPasswordResetExpiredToken(t *testing.T) {
	e, svc, mailer := newPasswordEnv(t)
	ctx := context.Background()
	e.user(t, "123456", models.RoleRegular)

	start := time.Now()
	svc.now = func() time.Time { return start }
	require.NoError(t, svc.RequestReset(ctx, "123456"))
	_, sent := mailer.snapshot()
	token := resetTokenFrom(t, sent[0].Body)

	svc.now = func() time.Time { return start.Add(time.Hour) }
	assert.ErrorIs(t, svc.ResetPassword(ctx, token, "novaSenha"), ErrInvalidOrExpiredToken)

	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPasswordResetValidation(t *testing.T) {
	_, svc, _ := newPasswordEnv(t)
	ctx := context.Background()

	var verr *ValidationError
	assert.True(t, errors.As(svc.ResetPassword(ctx, "tok", "123"), &verr))
	assert.Equal(t, "newPassword", verr.Field)

	assert.ErrorIs(t, svc.ResetPassword(ctx, "", "novaSenha"), ErrInvalidOrExpiredToken)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "unknown", "novaSenha"), ErrInvalidOrExpiredToken)
}

func TestPasswordResetMailFailure(t *testing.T) {
	e, svc, mailer := newPasswordEnv(t)
	e.user(t, "123456", models.RoleRegular)
	mailer.failN = -1

	err := svc.RequestReset(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrDependency)
}
