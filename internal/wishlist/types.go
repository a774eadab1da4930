package wishlist

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// AllCategory is the synthetic selection that disables category filtering.
	AllCategory = "All"
	// UncategorizedCategory is the display bucket for items without a category.
	UncategorizedCategory = "Uncategorized"
)

// DefaultKnownCategories is used when no category list is configured.
var DefaultKnownCategories = []string{
	"Clothing",
	"Electronics",
	"Home & Furniture",
	"Books",
	"Miscellaneous",
	UncategorizedCategory,
}

// Item is a persisted wishlist entry.
type Item struct {
	ID        int64
	Title     string
	URL       string
	Price     decimal.Decimal
	ImageURL  string
	Category  *string
	Priority  *string
	CreatedAt time.Time
}

// EffectiveCategory is the category used for filtering and counting.
func (i Item) EffectiveCategory() string {
	return EffectiveCategory(i.Category)
}

// EffectiveCategory maps an absent or blank category to UncategorizedCategory
// and returns any other value verbatim, known or not.
func EffectiveCategory(category *string) string {
	if category == nil || strings.TrimSpace(*category) == "" {
		return UncategorizedCategory
	}
	return *category
}

// ItemDTO is the wire shape of an Item.
type ItemDTO struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Category  *string `json:"category"`
	Priority  *string `json:"priority"`
	CreatedAt float64 `json:"created_at"`
}

// ToDTO converts i to its JSON wire form with epoch-second timestamps.
func (i Item) ToDTO() ItemDTO {
	return ItemDTO{
		ID:        i.ID,
		Title:     i.Title,
		URL:       i.URL,
		Price:     i.Price.InexactFloat64(),
		ImageURL:  i.ImageURL,
		Category:  i.Category,
		Priority:  i.Priority,
		CreatedAt: EpochSeconds(i.CreatedAt),
	}
}

// ToDTOs converts a slice, never returning nil so JSON renders [].
func ToDTOs(items []Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToDTO())
	}
	return out
}

// SubmitInput is the raw item payload accepted by Service.Submit.
type SubmitInput struct {
	Title    string           `json:"title" validate:"required,notblank,max=500"`
	URL      string           `json:"url" validate:"required,notblank,max=2048"`
	Price    *decimal.Decimal `json:"price"`
	ImageURL string           `json:"image_url" validate:"max=2048"`
	Category *string          `json:"category" validate:"omitempty,max=100"`
	Priority *string          `json:"priority" validate:"omitempty,max=32"`
}

// UpdateCategoryInput is the body of a category update.
type UpdateCategoryInput struct {
	Category *string `json:"category" validate:"omitempty,max=100"`
}

// EpochSeconds renders t as fractional seconds since the Unix epoch.
func EpochSeconds(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

// FromEpochSeconds is the inverse of EpochSeconds at microsecond precision.
func FromEpochSeconds(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	micros := math.Round(frac * 1e6)
	return time.Unix(int64(whole), int64(micros)*int64(time.Microsecond)).UTC()
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
