package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"lostfound/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	stats *models.SystemStats
	err   error
}

func (f fakeStats) Collect(context.Context) (*models.SystemStats, error) { return f.stats, f.err }

type fakeDeadLetters struct {
	rows      []models.DeadLetter
	lastLimit int
}

func (f *fakeDeadLetters) List(_ context.Context, limit int) ([]models.DeadLetter, error) {
	f.lastLimit = limit
	if limit < len(f.rows) {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func TestAdminRequiresMaster(t *testing.T) {
	svc := NewAdminService(fakeStats{stats: &models.SystemStats{}}, &fakeDeadLetters{})
	ctx := context.Background()
	regular := &models.Identity{UserID: 2, Role: models.RoleRegular}

	_, err := svc.Stats(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Stats(ctx, regular)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.FailedNotifications(ctx, nil, 10)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.FailedNotifications(ctx, regular, 10)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminStats(t *testing.T) {
	master := &models.Identity{UserID: 1, Role: models.RoleMaster}

	svc := NewAdminService(fakeStats{stats: &models.SystemStats{TotalUsers: 3, Masters: 1, DeadLetters: 2}}, &fakeDeadLetters{})
	stats, err := svc.Stats(context.Background(), master)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.DeadLetters)

	boom := errors.New("db down")
	svc = NewAdminService(fakeStats{err: boom}, &fakeDeadLetters{})
	_, err = svc.Stats(context.Background(), master)
	assert.ErrorIs(t, err, boom)
}

func TestFailedNotificationsLimit(t *testing.T) {
	master := &models.Identity{UserID: 1, Role: models.RoleMaster}
	dead := &fakeDeadLetters{rows: []models.DeadLetter{
		{ID: "01A", Recipient: "a@test", CreatedAt: time.Unix(2, 0)},
		{ID: "01B", Recipient: "b@test", CreatedAt: time.Unix(1, 0)},
	}}
	svc := NewAdminService(fakeStats{}, dead)

	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"default when zero", 0, 100},
		{"default when negative", -5, 100},
		{"as requested", 1, 1},
		{"upper bound", 500, 500},
		{"clamped to upper bound", 10000, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.FailedNotifications(context.Background(), master, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, dead.lastLimit)
		})
	}

	rows, err := svc.FailedNotifications(context.Background(), master, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "01A", rows[0].ID)
}
