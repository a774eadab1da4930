package metrics

import "github.com/prometheus/client_golang/prometheus"

// WishlistMetrics counts domain writes.
type WishlistMetrics struct {
	created         prometheus.Counter
	categoryUpdates *prometheus.CounterVec
}

// NewWishlistMetrics registers the wishlist counters on the provided registerer.
func NewWishlistMetrics(reg prometheus.Registerer) *WishlistMetrics {
	if reg == nil {
		return &WishlistMetrics{}
	}
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wishlist_items_created_total",
		Help: "Wishlist items persisted.",
	})
	categoryUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wishlist_category_updates_total",
		Help: "Category update attempts, by result.",
	}, []string{"result"})
	reg.MustRegister(created, categoryUpdates)
	return &WishlistMetrics{
		created:         created,
		categoryUpdates: categoryUpdates,
	}
}

// IncCreated increments the created items counter.
func (w *WishlistMetrics) IncCreated() {
	if w == nil || w.created == nil {
		return
	}
	w.created.Inc()
}

// IncCategoryUpdate records a category update with result "ok", "not_found" or "error".
func (w *WishlistMetrics) IncCategoryUpdate(result string) {
	if w == nil || w.categoryUpdates == nil {
		return
	}
	w.categoryUpdates.WithLabelValues(normalizeLabel(result)).Inc()
}
