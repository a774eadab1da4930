package wishlist

import (
	"context"
	"errors"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
	"github.com/angelmondragon/wishlist-backend/pkg/metrics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	itemResource            = "wishlist item"
	reservedCategoryMessage = "All is reserved"
)

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Store           Store
	KnownCategories []string
	Clock           func() time.Time
	Metrics         *metrics.WishlistMetrics
}

// Service exposes business rules for wishlist management.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	UpdateCategory(ctx context.Context, id int64, category *string) (Item, error)
	View(ctx context.Context, state ViewState) (ViewResult, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
}

// ViewResult is a rendered view plus the navigation counts for the same snapshot.
type ViewResult struct {
	Items      []Item
	Categories []CategoryCount
	State      ViewState
}

type service struct {
	store      Store
	aggregator *Aggregator
	clock      func() time.Time
	metrics    *metrics.WishlistMetrics
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist store is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		store:      params.Store,
		aggregator: NewAggregator(params.KnownCategories),
		clock:      clock,
		metrics:    params.Metrics,
	}, nil
}

// Submit validates the payload, stamps created_at and persists the item.
// Nothing is stored when validation fails.
func (s *service) Submit(ctx context.Context, input SubmitInput) (Item, error) {
	item, err := s.normalize(input)
	if err != nil {
		return Item{}, err
	}
	item.CreatedAt = s.clock().UTC()

	created, err := s.store.Append(ctx, item)
	if err != nil {
		return Item{}, pkgerrors.Dependency(err, "save wishlist item")
	}
	s.metrics.IncCreated()
	return created, nil
}

// List returns all items in insertion order.
func (s *service) List(ctx context.Context) ([]Item, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Dependency(err, "list wishlist items")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int64) (Item, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return Item{}, mapLookupError(err, id, "load wishlist item")
	}
	return item, nil
}

// UpdateCategory changes only the category of an existing item. An empty or
// nil category clears it.
func (s *service) UpdateCategory(ctx context.Context, id int64, category *string) (Item, error) {
	if id <= 0 {
		s.metrics.IncCategoryUpdate("not_found")
		return Item{}, pkgerrors.NotFound(itemResource, id)
	}
	category = optionalString(category)
	if err := validateCategory(category); err != nil {
		s.metrics.IncCategoryUpdate("invalid")
		return Item{}, err
	}

	item, err := s.store.UpdateCategory(ctx, id, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.metrics.IncCategoryUpdate("not_found")
		} else {
			s.metrics.IncCategoryUpdate("error")
		}
		return Item{}, mapLookupError(err, id, "update wishlist category")
	}
	s.metrics.IncCategoryUpdate("ok")
	return item, nil
}

// View renders the state over a single snapshot of the store.
func (s *service) View(ctx context.Context, state ViewState) (ViewResult, error) {
	items, err := s.List(ctx)
	if err != nil {
		return ViewResult{}, err
	}
	state = state.Normalize()
	return ViewResult{
		Items:      Render(items, state),
		Categories: s.aggregator.Count(items),
		State:      state,
	}, nil
}

func (s *service) Categories(ctx context.Context) ([]CategoryCount, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Count(items), nil
}

func (s *service) normalize(input SubmitInput) (Item, error) {
	fields := pkgerrors.FieldErrors{}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		fields.Add("title", "is required")
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		fields.Add("url", "is required")
	}
	price := decimal.Zero
	if input.Price != nil {
		price = *input.Price
		if price.IsNegative() {
			fields.Add("price", "must be greater than or equal to 0")
		}
	}
	category := optionalString(input.Category)
	if category != nil && *category == AllCategory {
		fields.Add("category", reservedCategoryMessage)
	}

	if err := fields.Err("invalid wishlist item"); err != nil {
		return Item{}, err
	}

	return Item{
		Title:    title,
		URL:      url,
		Price:    price,
		ImageURL: strings.TrimSpace(input.ImageURL),
		Category: category,
		Priority: optionalString(input.Priority),
	}, nil
}

func validateCategory(category *string) error {
	if category != nil && *category == AllCategory {
		return pkgerrors.FieldErrors{"category": reservedCategoryMessage}.Err("invalid category")
	}
	return nil
}

func mapLookupError(err error, id int64, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.NotFound(itemResource, id)
	}
	return pkgerrors.Dependency(err, action)
}
