package wishlist

import (
	"context"

	"github.com/angelmondragon/wishlist-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Store is the persistence contract the service depends on.
type Store interface {
	Append(ctx context.Context, item Item) (Item, error)
	ListAll(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	UpdateCategory(ctx context.Context, id int64, category *string) (Item, error)
}

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts the item and returns it with its assigned id.
func (r *Repository) Append(ctx context.Context, item Item) (Item, error) {
	row := toModel(item)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return Item{}, err
	}
	return fromModel(row), nil
}

// ListAll returns every item in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]Item, error) {
	var rows []models.WishlistItem
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromModel(row))
	}
	return items, nil
}

// Get returns gorm.ErrRecordNotFound when the id is unknown.
func (r *Repository) Get(ctx context.Context, id int64) (Item, error) {
	var row models.WishlistItem
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return Item{}, err
	}
	return fromModel(row), nil
}

// UpdateCategory replaces only the category column. A nil category clears it.
func (r *Repository) UpdateCategory(ctx context.Context, id int64, category *string) (Item, error) {
	var updated models.WishlistItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return err
		}
		var value any
		if category != nil {
			value = *category
		}
		if err := tx.Model(&models.WishlistItem{}).Where("id = ?", id).Update("category", value).Error; err != nil {
			return err
		}
		updated.Category = category
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	return fromModel(updated), nil
}

func toModel(item Item) models.WishlistItem {
	return models.WishlistItem{
		ID:        item.ID,
		Title:     item.Title,
		URL:       item.URL,
		Price:     item.Price,
		ImageURL:  item.ImageURL,
		Category:  item.Category,
		Priority:  item.Priority,
		CreatedAt: EpochSeconds(item.CreatedAt),
	}
}

func fromModel(row models.WishlistItem) Item {
	return Item{
		ID:        row.ID,
		Title:     row.Title,
		URL:       row.URL,
		Price:     row.Price,
		ImageURL:  row.ImageURL,
		Category:  row.Category,
		Priority:  row.Priority,
		CreatedAt: FromEpochSeconds(row.CreatedAt),
	}
}
