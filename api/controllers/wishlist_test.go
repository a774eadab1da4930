package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
)

type stubWishlistService struct {
	items      []wishlist.Item
	err        error
	lastState  wishlist.ViewState
	lastUpdate *string
}

func (s *stubWishlistService) Submit(_ context.Context, in wishlist.SubmitInput) (wishlist.Item, error) {
	if s.err != nil {
		return wishlist.Item{}, s.err
	}
	item := wishlist.Item{ID: 1, Title: in.Title, URL: in.URL, Price: decimal.Zero, CreatedAt: time.Unix(1700000000, 0)}
	if in.Price != nil {
		item.Price = *in.Price
	}
	return item, nil
}

func (s *stubWishlistService) List(context.Context) ([]wishlist.Item, error) {
	return s.items, s.err
}

func (s *stubWishlistService) Get(context.Context, int64) (wishlist.Item, error) {
	return wishlist.Item{}, s.err
}

func (s *stubWishlistService) UpdateCategory(_ context.Context, id int64, category *string) (wishlist.Item, error) {
	s.lastUpdate = category
	if s.err != nil {
		return wishlist.Item{}, s.err
	}
	return wishlist.Item{ID: id, Title: "Lamp", Category: category}, nil
}

func (s *stubWishlistService) View(_ context.Context, state wishlist.ViewState) (wishlist.ViewResult, error) {
	s.lastState = state
	if s.err != nil {
		return wishlist.ViewResult{}, s.err
	}
	return wishlist.ViewResult{State: state.Normalize()}, nil
}

func (s *stubWishlistService) Categories(context.Context) ([]wishlist.CategoryCount, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []wishlist.CategoryCount{{Name: wishlist.AllCategory}}, nil
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestWishlistListEmptyRendersArray(t *testing.T) {
	resp := httptest.NewRecorder()
	WishlistList(&stubWishlistService{}, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/wishlist", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != `{"items":[]}` {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestWishlistAddItemEncodesStoredItem(t *testing.T) {
	body := `{"title":"Yoga Mat","url":"https://example.com/mat","price":"12.50"}`
	resp := httptest.NewRecorder()
	WishlistAddItem(&stubWishlistService{}, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/wishlist", strings.NewReader(body)))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Status string         `json:"status"`
		Item   map[string]any `json:"item"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Status != "success" {
		t.Fatalf("unexpected status %q", payload.Status)
	}
	if payload.Item["price"] != 12.5 {
		t.Fatalf("price should be a JSON number, got %#v", payload.Item["price"])
	}
	if payload.Item["created_at"] != float64(1700000000) {
		t.Fatalf("created_at should be epoch seconds, got %#v", payload.Item["created_at"])
	}
	if v, ok := payload.Item["category"]; !ok || v != nil {
		t.Fatalf("category should be present and null, got %#v", v)
	}
}

func TestWishlistAddItemRejectsUnknownFields(t *testing.T) {
	resp := httptest.NewRecorder()
	body := `{"title":"Mat","url":"u","colour":"red"}`
	WishlistAddItem(&stubWishlistService{}, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/wishlist", strings.NewReader(body)))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestWishlistHandlersMapServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"dependency", pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("db down"), "list"), http.StatusServiceUnavailable},
		{"not found", pkgerrors.New(pkgerrors.CodeNotFound, "wishlist item not found"), http.StatusNotFound},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubWishlistService{err: tc.err}

			resp := httptest.NewRecorder()
			WishlistList(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/wishlist", nil))
			if resp.Code != tc.status {
				t.Fatalf("list: expected %d got %d", tc.status, resp.Code)
			}

			resp = httptest.NewRecorder()
			req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/wishlist/3", strings.NewReader(`{"category":"Books"}`)), "id", "3")
			WishlistUpdateCategory(svc, nil).ServeHTTP(resp, req)
			if resp.Code != tc.status {
				t.Fatalf("update: expected %d got %d", tc.status, resp.Code)
			}

			resp = httptest.NewRecorder()
			WishlistCategories(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/wishlist/categories", nil))
			if resp.Code != tc.status {
				t.Fatalf("categories: expected %d got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestWishlistUpdateCategoryPassesCategory(t *testing.T) {
	svc := &stubWishlistService{}
	resp := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/wishlist/9", strings.NewReader(`{"category":"Books"}`)), "id", "9")
	WishlistUpdateCategory(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastUpdate == nil || *svc.lastUpdate != "Books" {
		t.Fatalf("category not forwarded: %v", svc.lastUpdate)
	}
}

func TestWishlistViewReadsQueryState(t *testing.T) {
	svc := &stubWishlistService{}
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wishlist/view?category=Books&search=%20dune%20&sort=bogus&view=table", nil)
	WishlistView(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastState.Category != "Books" || svc.lastState.Search != "dune" {
		t.Fatalf("unexpected state %+v", svc.lastState)
	}
	var payload struct {
		Items []any              `json:"items"`
		State wishlist.ViewState `json:"state"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Items == nil {
		t.Fatalf("items should render as an array")
	}
	if payload.State.Sort != wishlist.SortTimestamp || payload.State.ViewMode != wishlist.ViewModeTable {
		t.Fatalf("unexpected normalized state %+v", payload.State)
	}
}

func TestWishlistHandlersWithoutService(t *testing.T) {
	resp := httptest.NewRecorder()
	WishlistList(nil, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/wishlist", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
