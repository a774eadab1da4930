package controllers

import (
	"net/http"

	"github.com/angelmondragon/wishlist-backend/api/responses"
)

const greeting = "Hello from the Universal Wishlist API!"

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, map[string]string{"message": greeting})
	}
}
