package wishlist

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
	"github.com/angelmondragon/wishlist-backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (f failingStore) Append(context.Context, Item) (Item, error) { return Item{}, f.err }
func (f failingStore) ListAll(context.Context) ([]Item, error)    { return nil, f.err }
func (f failingStore) Get(context.Context, int64) (Item, error)   { return Item{}, f.err }
func (f failingStore) UpdateCategory(context.Context, int64, *string) (Item, error) {
	return Item{}, f.err
}

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	repo := newTestRepository(t)
	svc, err := NewService(ServiceParams{
		Store: repo,
		Clock: newStepClock().Now,
	})
	require.NoError(t, err)
	return svc, repo
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestSubmitPersistsNormalizedItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitInput{
		Title:    "  Yoga Mat ",
		URL:      " https://example.com/mat ",
		Price:    price("29.99"),
		Category: strPtr("Clothing"),
		Priority: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Yoga Mat", created.Title)
	assert.Equal(t, "https://example.com/mat", created.URL)
	assert.Equal(t, "Clothing", *created.Category)
	assert.Nil(t, created.Priority)
	assert.False(t, created.CreatedAt.IsZero())

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestSubmitDefaultsPriceToZero(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Submit(context.Background(), SubmitInput{Title: "Free sample", URL: "https://example.com/free"})
	require.NoError(t, err)
	assert.True(t, created.Price.IsZero())
	assert.Nil(t, created.Category)
	assert.Equal(t, UncategorizedCategory, created.EffectiveCategory())
}

func TestSubmitRejectsInvalidInputWithoutPersisting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input SubmitInput
		field string
	}{
		{name: "blank title", input: SubmitInput{Title: "   ", URL: "u"}, field: "title"},
		{name: "missing url", input: SubmitInput{Title: "t"}, field: "url"},
		{name: "negative price", input: SubmitInput{Title: "t", URL: "u", Price: price("-1")}, field: "price"},
		{name: "reserved category", input: SubmitInput{Title: "t", URL: "u", Category: strPtr(AllCategory)}, field: "category"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.input)
			require.Error(t, err)
			appErr := pkgerrors.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
			details, ok := appErr.Details().(map[string]string)
			require.True(t, ok)
			assert.Contains(t, details, tc.field)
		})
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateCategoryChangesOnlyCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitInput{Title: "Lamp", URL: "u", Price: price("40"), Priority: strPtr("High")})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, created.ID, strPtr(" Home & Furniture "))
	require.NoError(t, err)
	assert.Equal(t, "Home & Furniture", *updated.Category)
	assert.Equal(t, created.Title, updated.Title)
	assert.True(t, created.Price.Equal(updated.Price))
	assert.Equal(t, "High", *updated.Priority)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	cleared, err := svc.UpdateCategory(ctx, created.ID, strPtr(""))
	require.NoError(t, err)
	assert.Nil(t, cleared.Category)
}

func TestUpdateCategoryUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []int64{0, 999} {
		_, err := svc.UpdateCategory(ctx, id, strPtr("Books"))
		require.Error(t, err)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound), "id %d: %v", id, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestViewRendersOverOneSnapshot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, in := range []SubmitInput{
		{Title: "Yoga Mat", URL: "u", Price: price("25"), Category: strPtr("Clothing")},
		{Title: "MacBook Air", URL: "u", Price: price("999"), Category: strPtr("Electronics")},
		{Title: "iMac Stand", URL: "u", Price: price("40"), Category: strPtr("Electronics")},
	} {
		_, err := svc.Submit(ctx, in)
		require.NoError(t, err)
	}

	result, err := svc.View(ctx, ViewState{Category: "Electronics", Sort: "price_low_high"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "iMac Stand", result.Items[0].Title)
	assert.Equal(t, "MacBook Air", result.Items[1].Title)
	assert.Equal(t, SortPriceLowHigh, result.State.Sort)
	assert.Equal(t, ViewModeGrid, result.State.ViewMode)
	assert.Equal(t, CategoryCount{Name: AllCategory, Count: 3}, result.Categories[0])

	newest, err := svc.View(ctx, ViewState{})
	require.NoError(t, err)
	assert.Equal(t, "iMac Stand", newest.Items[0].Title)

	counts, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.Categories, counts)
}

func TestStorageFailuresMapToDependency(t *testing.T) {
	svc, err := NewService(ServiceParams{Store: failingStore{err: errors.New("disk full")}})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Submit(ctx, SubmitInput{Title: "t", URL: "u"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	_, err = svc.List(ctx)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	_, err = svc.View(ctx, DefaultViewState())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	_, err = svc.UpdateCategory(ctx, 1, strPtr("Books"))
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestServiceRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWishlistMetrics(reg)
	repo := newTestRepository(t)
	svc, err := NewService(ServiceParams{Store: repo, Metrics: m})
	require.NoError(t, err)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitInput{Title: "t", URL: "u", Price: price("3")})
	require.NoError(t, err)
	_, err = svc.UpdateCategory(ctx, created.ID, strPtr("Books"))
	require.NoError(t, err)
	_, err = svc.UpdateCategory(ctx, created.ID+100, strPtr("Books"))
	require.Error(t, err)

	series := map[string]int{}
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		series[mf.GetName()] = len(mf.GetMetric())
	}
	assert.Equal(t, 1, series["wishlist_items_created_total"])
	assert.Equal(t, 2, series["wishlist_category_updates_total"])
}
