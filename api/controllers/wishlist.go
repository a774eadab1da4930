package controllers

import (
	"net/http"

	"github.com/angelmondragon/wishlist-backend/api/responses"
	"github.com/angelmondragon/wishlist-backend/api/validators"
	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
)

const (
	statusSuccess  = "success"
	maxQueryLength = 200
)

type itemsResponse struct {
	Items []wishlist.ItemDTO `json:"items"`
}

type itemResponse struct {
	Status string           `json:"status"`
	Item   wishlist.ItemDTO `json:"item"`
}

type viewResponse struct {
	Items      []wishlist.ItemDTO       `json:"items"`
	Categories []wishlist.CategoryCount `json:"categories"`
	State      wishlist.ViewState       `json:"state"`
}

type categoriesResponse struct {
	Categories []wishlist.CategoryCount `json:"categories"`
}

// WishlistList returns every stored item in insertion order.
func WishlistList(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		items, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteJSON(w, itemsResponse{Items: wishlist.ToDTOs(items)})
	}
}

// WishlistAddItem validates and stores a captured product.
func WishlistAddItem(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		var payload wishlist.SubmitInput
		if err := validators.DecodeJSONBody(w, r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Submit(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(ctx, item.ID), "wishlist.item_added")
		}
		responses.WriteJSON(w, itemResponse{Status: statusSuccess, Item: item.ToDTO()})
	}
}

// WishlistUpdateCategory replaces the category of one item. Serves PATCH and PUT.
func WishlistUpdateCategory(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if logg != nil {
			ctx = logg.WithItemID(ctx, id)
		}

		var payload wishlist.UpdateCategoryInput
		if err := validators.DecodeJSONBody(w, r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.UpdateCategory(ctx, id, payload.Category)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithCategory(ctx, wishlist.EffectiveCategory(item.Category)), "wishlist.category_updated")
		}
		responses.WriteJSON(w, itemResponse{Status: statusSuccess, Item: item.ToDTO()})
	}
}

// WishlistView renders the filtered, searched and sorted view for the query state.
func WishlistView(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		state := wishlist.ViewState{
			Category: validators.QueryString(r, "category", maxQueryLength),
			Search:   validators.QueryString(r, "search", maxQueryLength),
			Sort:     wishlist.SortKey(validators.QueryString(r, "sort", maxQueryLength)),
			ViewMode: wishlist.ViewMode(validators.QueryString(r, "view", maxQueryLength)),
		}

		result, err := svc.View(ctx, state)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteJSON(w, viewResponse{
			Items:      wishlist.ToDTOs(result.Items),
			Categories: result.Categories,
			State:      result.State,
		})
	}
}

// WishlistCategories returns the category navigation counts.
func WishlistCategories(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		counts, err := svc.Categories(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteJSON(w, categoriesResponse{Categories: counts})
	}
}
