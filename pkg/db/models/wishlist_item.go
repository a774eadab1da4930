package models

import "github.com/shopspring/decimal"

// WishlistItem is one saved product row. CreatedAt holds epoch seconds with
// fractional precision, the layout the browser extension backend always used.
type WishlistItem struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string          `gorm:"column:title;not null"`
	URL       string          `gorm:"column:url;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	ImageURL  string          `gorm:"column:image_url;not null"`
	Category  *string         `gorm:"column:category"`
	Priority  *string         `gorm:"column:priority"`
	CreatedAt float64         `gorm:"column:created_at;not null;autoCreateTime:false"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
