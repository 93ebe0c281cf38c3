package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"lostfound/internal/db"
	"lostfound/internal/models"
	"lostfound/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a disposable Postgres, applies the migrations and
// returns a pool. The test is skipped when Docker is not available.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "lostfound",
			"POSTGRES_PASSWORD": "lostfound",
			"POSTGRES_DB":       "lostfound",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(90 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://lostfound:lostfound@%s:%s/lostfound?sslmode=disable", host, port.Port())
	pool, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.ApplyMigrations(pool))
	return pool
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE users, items, claims, password_reset_tokens, sessions, lost_reports, notification_dead_letters RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func newUser(t *testing.T, users *repository.UserRepository, reg string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		FirstName:          "Ana",
		LastName:           "Souza",
		Email:              reg + "@senaimgaluno.com.br",
		RegistrationNumber: reg,
		PasswordHash:       "hash",
		Role:               role,
		Active:             true,
		TermsAccepted:      true,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func newItem(t *testing.T, items *repository.ItemRepository, name string, cat models.Category) *models.Item {
	t.Helper()
	it := &models.Item{
		Name:        name,
		Description: name + " encontrado",
		Category:    cat,
		Location:    "library",
		FoundDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.ItemUnclaimed,
	}
	require.NoError(t, items.Create(context.Background(), it))
	return it
}

func TestPostgresRepositories(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	users := repository.NewUserRepository(pool)
	items := repository.NewItemRepository(pool)
	claims := repository.NewClaimRepository(pool)
	resets := repository.NewPasswordResetRepository(pool)
	sessions := repository.NewSessionRepository(pool)
	stats := repository.NewStatsRepository(pool)
	dead := repository.NewDeadLetterRepository(pool)

	t.Run("users are unique across roles", func(t *testing.T) {
		truncate(t, pool)
		newUser(t, users, "123456", models.RoleRegular)

		dup := &models.User{FirstName: "X", LastName: "Y", Email: "outro@senaimgaluno.com.br", RegistrationNumber: "123456", PasswordHash: "h", Role: models.RoleMaster, Active: true}
		assert.ErrorIs(t, users.Create(ctx, dup), repository.ErrDuplicate)

		taken, err := users.IsIdentityTaken(ctx, "999999", "123456@SENAIMGALUNO.com.br")
		require.NoError(t, err)
		assert.True(t, taken, "email comparison ignores case")

		_, err = users.GetByRegistration(ctx, "000000")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("search returns unclaimed items by category", func(t *testing.T) {
		truncate(t, pool)
		newItem(t, items, "Celular", models.CategoryElectronics)
		newItem(t, items, "RG", models.CategoryDocuments)
		newItem(t, items, "100%_off", models.CategoryOther)

		got, err := items.Search(ctx, models.ItemFilter{Category: models.CategoryElectronics})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Celular", got[0].Name)

		got, err = items.Search(ctx, models.ItemFilter{Term: "%"})
		require.NoError(t, err)
		require.Len(t, got, 1, "LIKE wildcards in the term are literal")
		assert.Equal(t, "100%_off", got[0].Name)
	})

	t.Run("concurrent claims admit exactly one", func(t *testing.T) {
		truncate(t, pool)
		item := newItem(t, items, "Mochila", models.CategoryOther)
		a := newUser(t, users, "111111", models.RoleRegular)
		b := newUser(t, users, "222222", models.RoleRegular)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, u := range []*models.User{a, b} {
			wg.Add(1)
			go func(i int, userID int64) {
				defer wg.Done()
				_, _, errs[i] = claims.CreatePending(ctx, item.ID, userID, "minha")
			}(i, u.ID)
		}
		wg.Wait()

		var ok, conflict int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, repository.ErrConflict):
				conflict++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 1, conflict)

		pending, err := claims.ListPending(ctx)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		got, err := items.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ItemPendingClaim, got.Status)
	})

	t.Run("resolve is terminal and drives the item status", func(t *testing.T) {
		truncate(t, pool)
		item := newItem(t, items, "Garrafa", models.CategoryOther)
		u := newUser(t, users, "333333", models.RoleRegular)
		master := newUser(t, users, "900001", models.RoleMaster)

		claim, _, err := claims.CreatePending(ctx, item.ID, u.ID, "minha")
		require.NoError(t, err)

		_, err = items.MarkReturned(ctx, item.ID)
		assert.ErrorIs(t, err, repository.ErrConflict, "only claimed items can be returned")

		resolved, err := claims.Resolve(ctx, claim.ID, models.ClaimApproved, models.ItemClaimed, master.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ClaimApproved, resolved.Status)
		require.NotNil(t, resolved.ResolvedBy)
		assert.Equal(t, master.ID, *resolved.ResolvedBy)

		_, err = claims.Resolve(ctx, claim.ID, models.ClaimRejected, models.ItemUnclaimed, master.ID)
		assert.ErrorIs(t, err, repository.ErrConflict)

		_, err = claims.Resolve(ctx, claim.ID+100, models.ClaimRejected, models.ItemUnclaimed, master.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		returned, err := items.MarkReturned(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ItemReturned, returned.Status)

		history, err := items.ListReturned(ctx)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "Ana Souza", history[0].ClaimedBy)

		s, err := stats.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Returned)
		assert.Equal(t, 1, s.Masters)
	})

	t.Run("reset tokens are single use", func(t *testing.T) {
		truncate(t, pool)
		u := newUser(t, users, "444444", models.RoleRegular)
		now := time.Now()

		require.NoError(t, resets.Create(ctx, u.ID, "fingerprint", now.Add(time.Hour)))
		id, err := resets.Redeem(ctx, "fingerprint", now, "new-hash")
		require.NoError(t, err)
		assert.Equal(t, u.ID, id)

		_, err = resets.Redeem(ctx, "fingerprint", now, "other-hash")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		require.NoError(t, resets.Create(ctx, u.ID, "old", now.Add(-time.Minute)))
		_, err = resets.Redeem(ctx, "old", now, "x")
		assert.ErrorIs(t, err, repository.ErrNotFound, "expired tokens are rejected")

		n, err := resets.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.PasswordHash)
	})

	t.Run("sessions round trip and expire", func(t *testing.T) {
		truncate(t, pool)
		now := time.Now().UTC().Truncate(time.Second)
		s := &models.Session{
			ID:        "sid-1",
			Identity:  models.Identity{UserID: 1, DisplayName: "Ana Souza", Role: models.RoleMaster},
			CreatedAt: now,
			ExpiresAt: now.Add(24 * time.Hour),
		}
		require.NoError(t, sessions.Save(ctx, s))

		got, err := sessions.Load(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, s.Identity, got.Identity)

		n, err := sessions.DeleteExpired(ctx, now.Add(25*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = sessions.Load(ctx, "sid-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
	t.Run("dead letters list newest first", func(t *testing.T) {
		truncate(t, pool)
		now := time.Now().UTC().Truncate(time.Second)
		for i, id := range []string{"01HZX0000000000000000000A1", "01HZX0000000000000000000A3", "01HZX0000000000000000000A2"} {
			require.NoError(t, dead.Save(ctx, &models.DeadLetter{
				ID:        id,
				Recipient: fmt.Sprintf("aluno%d@senaimgaluno.com.br", i),
				Subject:   "Reivindicação aprovada",
				Body:      "<p>ok</p>",
				Attempts:  5,
				LastError: "dial tcp: connection refused",
				CreatedAt: now,
			}))
		}

		rows, err := dead.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "01HZX0000000000000000000A3", rows[0].ID)
		assert.Equal(t, "01HZX0000000000000000000A2", rows[1].ID)
		assert.Equal(t, 5, rows[0].Attempts)
		assert.Equal(t, "dial tcp: connection refused", rows[0].LastError)
		assert.True(t, now.Equal(rows[0].CreatedAt))

		all, err := dead.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		st, err := stats.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, st.DeadLetters)
	})
}
