package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"lostfound/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitClaim(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	finder := e.user(t, "111111", models.RoleRegular)
	claimant := e.user(t, "222222", models.RoleRegular)
	item := e.item(t, finder, "Mochila azul", "other")

	claim, err := e.claims.SubmitClaim(ctx, item.ID, claimant, "  ")
	require.NoError(t, err)
	assert.Equal(t, models.ClaimPending, claim.Status)
	assert.Equal(t, DefaultJustification, claim.Justification)
	assert.Equal(t, claimant.UserID, claim.UserID)

	got, err := fakeItems{e.db}.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemPendingClaim, got.Status)

	sent := e.queue.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, claimant.Email, sent[0].To)
	assert.Contains(t, sent[0].Body, "Mochila azul")

	results, err := e.items.Search(ctx, SearchParams{})
	require.NoError(t, err)
	assert.Empty(t, results, "items pending a claim are not offered")
}

func TestSubmitClaimRequiresSession(t *testing.T) {
	e := newEnv(t)
	item := e.item(t, e.user(t, "111111", models.RoleRegular), "Livro", "other")

	_, err := e.claims.SubmitClaim(context.Background(), item.ID, nil, "meu")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSubmitClaimIneligibleItem(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.user(t, "111111", models.RoleRegular)
	b := e.user(t, "222222", models.RoleRegular)
	item := e.item(t, a, "Livro", "other")

	_, err := e.claims.SubmitClaim(ctx, 9999, a, "meu")
	assert.ErrorIs(t, err, ErrItemNotEligible)

	_, err = e.claims.SubmitClaim(ctx, item.ID, a, "meu")
	require.NoError(t, err)
	_, err = e.claims.SubmitClaim(ctx, item.ID, b, "é meu")
	assert.ErrorIs(t, err, ErrItemNotEligible)
}

func TestConcurrentSubmissionsExactlyOneWins(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	item := e.item(t, e.user(t, "100000", models.RoleRegular), "Celular", "electronics")

	const n = 16
	claimants := make([]*models.Identity, n)
	for i := range claimants {
		claimants[i] = e.user(t, fmt.Sprintf("%06d", 300000+i), models.RoleRegular)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		rejected int
	)
	for _, c := range claimants {
		wg.Add(1)
		go func(actor *models.Identity) {
			defer wg.Done()
			_, err := e.claims.SubmitClaim(ctx, item.ID, actor, "é meu")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrItemNotEligible):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(c)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, rejected)

	pending, err := fakeClaims{e.db}.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestResolveClaimApprove(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	master := e.user(t, "900000", models.RoleMaster)
	claimant := e.user(t, "222222", models.RoleRegular)
	item := e.item(t, claimant, "Carteira", "documents")

	claim, err := e.claims.SubmitClaim(ctx, item.ID, claimant, "tem meu RG")
	require.NoError(t, err)

	resolved, err := e.claims.ResolveClaim(ctx, claim.ID, "approve", master)
	require.NoError(t, err)
	assert.Equal(t, models.ClaimApproved, resolved.Status)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, master.UserID, *resolved.ResolvedBy)

	got, err := fakeItems{e.db}.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemClaimed, got.Status)

	sent := e.queue.sent()
	require.Len(t, sent, 2)
	assert.Equal(t, claimant.Email, sent[1].To)
	assert.Contains(t, sent[1].Subject, "aprovada")

	_, err = e.claims.ResolveClaim(ctx, claim.ID, "reject", master)
	assert.ErrorIs(t, err, ErrClaimAlreadyResolved)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Len(t, e.queue.sent(), 2, "a second resolution does not notify again")
}

func TestResolveClaimRejectReturnsItemToSearch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	master := e.user(t, "900000", models.RoleMaster)
	claimant := e.user(t, "222222", models.RoleRegular)
	item := e.item(t, claimant, "Fone de ouvido", "electronics")

	claim, err := e.claims.SubmitClaim(ctx, item.ID, claimant, "")
	require.NoError(t, err)

	_, err = e.claims.ResolveClaim(ctx, claim.ID, "REJECT", master)
	require.NoError(t, err)

	results, err := e.items.Search(ctx, SearchParams{Category: "electronics"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.ItemUnclaimed, results[0].Status)

	sent := e.queue.sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1].Subject, "recusada")

	_, err = e.claims.SubmitClaim(ctx, item.ID, claimant, "de novo")
	assert.NoError(t, err, "a rejected item can be claimed again")
}

func TestResolveClaimErrors(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	master := e.user(t, "900000", models.RoleMaster)
	regular := e.user(t, "222222", models.RoleRegular)
	item := e.item(t, regular, "Guarda-chuva", "other")
	claim, err := e.claims.SubmitClaim(ctx, item.ID, regular, "")
	require.NoError(t, err)

	_, err = e.claims.ResolveClaim(ctx, claim.ID, "approve", regular)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = e.claims.ResolveClaim(ctx, claim.ID, "approve", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = e.claims.ResolveClaim(ctx, claim.ID, "maybe", master)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.NotErrorIs(t, err, ErrClaimAlreadyResolved)

	_, err = e.claims.ResolveClaim(ctx, 4242, "approve", master)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := fakeItems{e.db}.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemPendingClaim, got.Status, "failed resolutions leave the item untouched")
}

func TestConcurrentResolutionNotifiesOnce(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	master := e.user(t, "900000", models.RoleMaster)
	claimant := e.user(t, "222222", models.RoleRegular)
	item := e.item(t, claimant, "Relógio", "other")
	claim, err := e.claims.SubmitClaim(ctx, item.ID, claimant, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			action := "approve"
			if i%2 == 1 {
				action = "reject"
			}
			_, _ = e.claims.ResolveClaim(ctx, claim.ID, action, master)
		}(i)
	}
	wg.Wait()

	assert.Len(t, e.queue.sent(), 2, "one receipt plus exactly one outcome")
}

func TestSubmitClaimSurvivesQueueFailure(t *testing.T) {
	e := newEnv(t)
	e.queue.err = errors.New("queue full")
	claimant := e.user(t, "222222", models.RoleRegular)
	item := e.item(t, claimant, "Caderno", "other")

	claim, err := e.claims.SubmitClaim(context.Background(), item.ID, claimant, "")
	require.NoError(t, err)
	assert.Equal(t, models.ClaimPending, claim.Status)
}

func TestListPendingClaims(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	master := e.user(t, "900000", models.RoleMaster)
	claimant := e.user(t, "222222", models.RoleRegular)
	first := e.item(t, claimant, "Primeiro", "other")
	second := e.item(t, claimant, "Segundo", "other")

	_, err := e.claims.SubmitClaim(ctx, second.ID, claimant, "")
	require.NoError(t, err)
	_, err = e.claims.SubmitClaim(ctx, first.ID, claimant, "")
	require.NoError(t, err)

	_, err = e.claims.ListPendingClaims(ctx, claimant)
	assert.ErrorIs(t, err, ErrForbidden)

	pending, err := e.claims.ListPendingClaims(ctx, master)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "Segundo", pending[0].ItemName, "queue is in submission order")
	assert.Equal(t, "Primeiro", pending[1].ItemName)
	assert.Equal(t, claimant.Email, pending[0].ClaimantEmail)
}
