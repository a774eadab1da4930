package wishlist

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/angelmondragon/wishlist-backend/pkg/db"
	"github.com/angelmondragon/wishlist-backend/pkg/migrate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()
	client, err := db.New(ctx, config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "wishlist.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.SQL()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(ctx, sqlDB, client.Driver()))
	return NewRepository(client.DB())
}

type stepClock struct {
	next time.Time
}

func newStepClock() *stepClock {
	return &stepClock{next: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	now := c.next
	c.next = c.next.Add(time.Second)
	return now
}

func strPtr(v string) *string {
	return &v
}

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func item(id int64, title string, amount string, category, priority *string, createdAt time.Time) Item {
	return Item{
		ID:        id,
		Title:     title,
		URL:       "https://example.com/" + title,
		Price:     decimal.RequireFromString(amount),
		Category:  category,
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

func ids(items []Item) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
