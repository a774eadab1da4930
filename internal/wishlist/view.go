package wishlist

import (
	"cmp"
	"slices"
	"strings"

	"github.com/angelmondragon/wishlist-backend/pkg/enums"
)

// SortKey selects the ordering applied by Render.
type SortKey string

const (
	SortTimestamp    SortKey = "timestamp"
	SortPriceLowHigh SortKey = "price_low_high"
	SortPriceHighLow SortKey = "price_high_low"
	SortPriority     SortKey = "priority"
	defaultSortKey           = SortTimestamp
)

// ParseSortKey falls back to SortTimestamp for unknown keys.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.TrimSpace(raw)); key {
	case SortTimestamp, SortPriceLowHigh, SortPriceHighLow, SortPriority:
		return key
	default:
		return defaultSortKey
	}
}

// ViewMode is the dashboard layout.
type ViewMode string

const (
	ViewModeGrid  ViewMode = "grid"
	ViewModeTable ViewMode = "table"
)

func ParseViewMode(raw string) ViewMode {
	if ViewMode(strings.ToLower(strings.TrimSpace(raw))) == ViewModeTable {
		return ViewModeTable
	}
	return ViewModeGrid
}

// ViewState is the per-session view selection. It is never persisted with items.
type ViewState struct {
	Category string   `json:"category" yaml:"category"`
	Search   string   `json:"search" yaml:"search"`
	Sort     SortKey  `json:"sort" yaml:"sort"`
	ViewMode ViewMode `json:"view_mode" yaml:"view_mode"`
}

// DefaultViewState is the state of a fresh session.
func DefaultViewState() ViewState {
	return ViewState{
		Category: AllCategory,
		Sort:     defaultSortKey,
		ViewMode: ViewModeGrid,
	}
}

// Normalize fills defaults and coerces unknown sort keys and view modes.
func (v ViewState) Normalize() ViewState {
	if strings.TrimSpace(v.Category) == "" {
		v.Category = AllCategory
	}
	v.Sort = ParseSortKey(string(v.Sort))
	v.ViewMode = ParseViewMode(string(v.ViewMode))
	return v
}

// Render filters by category, then by case-insensitive title substring, then
// applies a stable sort. The input slice is not modified.
func Render(items []Item, state ViewState) []Item {
	state = state.Normalize()
	needle := strings.ToLower(state.Search)

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if state.Category != AllCategory && item.EffectiveCategory() != state.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Title), needle) {
			continue
		}
		out = append(out, item)
	}

	slices.SortStableFunc(out, comparator(state.Sort))
	return out
}

func comparator(key SortKey) func(a, b Item) int {
	switch key {
	case SortPriceLowHigh:
		return func(a, b Item) int { return a.Price.Cmp(b.Price) }
	case SortPriceHighLow:
		return func(a, b Item) int { return b.Price.Cmp(a.Price) }
	case SortPriority:
		return func(a, b Item) int { return cmp.Compare(priorityRank(a.Priority), priorityRank(b.Priority)) }
	default:
		return func(a, b Item) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}

func priorityRank(priority *string) int {
	if priority == nil {
		return enums.UnrankedPriority
	}
	return enums.Priority(*priority).Rank()
}
