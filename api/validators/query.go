package validators

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
)

// ParsePathID reads a positive integer route parameter. Malformed ids are
// reported as not found since no item can carry them.
func ParsePathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, pkgerrors.NotFound("wishlist item", raw)
	}
	return value, nil
}

// QueryString returns the trimmed query value capped at maxLen runes.
func QueryString(r *http.Request, key string, maxLen int) string {
	return SanitizeString(r.URL.Query().Get(key), maxLen)
}

// SanitizeString trims input and caps it at maxLen runes; maxLen <= 0 means
// no cap.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 || utf8.RuneCountInString(trimmed) <= maxLen {
		return trimmed
	}
	return string([]rune(trimmed)[:maxLen])
}
