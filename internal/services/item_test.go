package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"lostfound/internal/imaging"
	"lostfound/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemInput() models.ItemInput {
	return models.ItemInput{
		Name:        "Notebook",
		Description: "Notebook preto com adesivos",
		Category:    "electronics",
		Location:    "laboratory",
		Date:        "2024-05-02",
	}
}

func TestRegisterItem(t *testing.T) {
	e := newEnv(t)
	actor := e.user(t, "111111", models.RoleRegular)

	it, err := e.items.Register(context.Background(), actor, validItemInput(), strings.NewReader("fake image"))
	require.NoError(t, err)

	assert.Equal(t, models.ItemUnclaimed, it.Status)
	assert.Equal(t, models.CategoryElectronics, it.Category)
	assert.Equal(t, "2024-05-02", it.FoundDate.Format(models.DateLayout))
	require.NotNil(t, it.PhotoPath)
	assert.True(t, e.photos.saved[*it.PhotoPath])
}

func TestRegisterItemRequiresSession(t *testing.T) {
	e := newEnv(t)
	_, err := e.items.Register(context.Background(), nil, validItemInput(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRegisterItemValidation(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*models.ItemInput)
		field string
		is    error
	}{
		{"missing name", func(in *models.ItemInput) { in.Name = "" }, "name", nil},
		{"missing description", func(in *models.ItemInput) { in.Description = " " }, "description", nil},
		{"missing location", func(in *models.ItemInput) { in.Location = "" }, "location", nil},
		{"unknown location", func(in *models.ItemInput) { in.Location = "moon" }, "location", nil},
		{"missing date", func(in *models.ItemInput) { in.Date = "" }, "date", nil},
		{"bad date", func(in *models.ItemInput) { in.Date = "02/05/2024" }, "date", nil},
		{"missing category", func(in *models.ItemInput) { in.Category = "" }, "category", nil},
		{"unknown category", func(in *models.ItemInput) { in.Category = "weapons" }, "", ErrInvalidCategory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			actor := e.user(t, "111111", models.RoleRegular)
			in := validItemInput()
			tc.edit(&in)

			_, err := e.items.Register(context.Background(), actor, in, nil)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			} else {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "got %v", err)
				assert.Equal(t, tc.field, verr.Field)
			}
			assert.Empty(t, e.db.items)
		})
	}
}

func TestRegisterItemRejectsBadPhoto(t *testing.T) {
	e := newEnv(t)
	actor := e.user(t, "111111", models.RoleRegular)
	e.photos.err = fmt.Errorf("%w: text/plain", imaging.ErrUnsupportedFormat)

	_, err := e.items.Register(context.Background(), actor, validItemInput(), strings.NewReader("hello"))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "photo", verr.Field)
	assert.Empty(t, e.db.items)
}

func TestSearchByCategory(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	actor := e.user(t, "111111", models.RoleRegular)
	phone := e.item(t, actor, "Celular", "electronics")
	e.item(t, actor, "RG", "documents")
	charger := e.item(t, actor, "Carregador", "electronics")

	got, err := e.items.Search(ctx, SearchParams{Category: "electronics"})
	require.NoError(t, err)
	ids := make([]int64, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	if diff := cmp.Diff([]int64{charger.ID, phone.ID}, ids); diff != "" {
		t.Errorf("electronics search mismatch (-want +got):\n%s", diff)
	}

	got, err = e.items.Search(ctx, SearchParams{Category: "documents"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "RG", got[0].Name)

	all, err := e.items.Search(ctx, SearchParams{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = e.items.Search(ctx, SearchParams{Category: "food"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestSearchFilters(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	actor := e.user(t, "111111", models.RoleRegular)
	e.item(t, actor, "Garrafa Térmica", "other")
	e.item(t, actor, "Casaco", "clothing")

	got, err := e.items.Search(ctx, SearchParams{Term: "garrafa"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Garrafa Térmica", got[0].Name)

	got, err = e.items.Search(ctx, SearchParams{Term: "CORREDOR"})
	require.NoError(t, err)
	assert.Len(t, got, 2, "term also matches the description")

	got, err = e.items.Search(ctx, SearchParams{Location: "library", Date: "2024-03-10"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = e.items.Search(ctx, SearchParams{Date: "2024-03-11"})
	require.NoError(t, err)
	assert.Empty(t, got)

	var verr *ValidationError
	_, err = e.items.Search(ctx, SearchParams{Date: "ontem"})
	assert.True(t, errors.As(err, &verr))
	_, err = e.items.Search(ctx, SearchParams{Location: "moon"})
	assert.True(t, errors.As(err, &verr))
}

func TestRemoveItem(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	master := e.user(t, "900000", models.RoleMaster)
	regular := e.user(t, "111111", models.RoleRegular)

	it, err := e.items.Register(ctx, regular, validItemInput(), strings.NewReader("img"))
	require.NoError(t, err)
	_, err = e.claims.SubmitClaim(ctx, it.ID, regular, "")
	require.NoError(t, err)

	assert.ErrorIs(t, e.items.Remove(ctx, it.ID, regular), ErrForbidden)

	require.NoError(t, e.items.Remove(ctx, it.ID, master))
	assert.Equal(t, []string{*it.PhotoPath}, e.photos.removed)
	assert.Empty(t, e.db.claims, "claims go with the item")

	assert.ErrorIs(t, e.items.Remove(ctx, it.ID, master), ErrNotFound)
}

func TestMarkReturnedAndHistory(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	master := e.user(t, "900000", models.RoleMaster)
	claimant := e.user(t, "111111", models.RoleRegular)
	it := e.item(t, claimant, "Óculos", "other")

	_, err := e.items.MarkReturned(ctx, it.ID, master)
	assert.ErrorIs(t, err, ErrItemNotReturnable)

	claim, err := e.claims.SubmitClaim(ctx, it.ID, claimant, "")
	require.NoError(t, err)
	_, err = e.claims.ResolveClaim(ctx, claim.ID, "approve", master)
	require.NoError(t, err)

	_, err = e.items.MarkReturned(ctx, it.ID, claimant)
	assert.ErrorIs(t, err, ErrForbidden)

	returned, err := e.items.MarkReturned(ctx, it.ID, master)
	require.NoError(t, err)
	assert.Equal(t, models.ItemReturned, returned.Status)
	assert.NotNil(t, returned.ReturnedAt)

	_, err = e.items.MarkReturned(ctx, 777, master)
	assert.ErrorIs(t, err, ErrNotFound)

	history, err := e.items.ListReturned(ctx, master)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Ana Souza", history[0].ClaimedBy)

	all, err := e.items.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegisterStripsMarkup(t *testing.T) {
	e := newEnv(t)
	actor := e.user(t, "123456", models.RoleRegular)

	item, err := e.items.Register(context.Background(), actor, models.ItemInput{
		Name:        "<b>Caderno</b>",
		Description: `Capa azul <script>alert(1)</script>& folhas`,
		Category:    "other",
		Location:    "library",
		Date:        "2024-05-01",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Caderno", item.Name)
	assert.Equal(t, "Capa azul & folhas", item.Description)
}
