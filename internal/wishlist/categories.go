package wishlist

import "strings"

// CategoryCount is one entry of the category navigation.
type CategoryCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Aggregator counts items per effective category.
type Aggregator struct {
	known []string
}

// NewAggregator seeds the aggregator with known categories, preserving order
// and dropping blanks, duplicates and the reserved All name.
func NewAggregator(known []string) *Aggregator {
	if len(known) == 0 {
		known = DefaultKnownCategories
	}
	seen := make(map[string]struct{}, len(known))
	out := make([]string, 0, len(known))
	for _, name := range known {
		name = strings.TrimSpace(name)
		if name == "" || name == AllCategory {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return &Aggregator{known: out}
}

// Known returns a copy of the seeded categories.
func (a *Aggregator) Known() []string {
	return append([]string(nil), a.known...)
}

// Count returns All first, then every known category (zero counts included),
// then categories discovered on items in first-seen order. Counts sum to
// the All total.
func (a *Aggregator) Count(items []Item) []CategoryCount {
	index := make(map[string]int, len(a.known)+1)
	counts := make([]CategoryCount, 0, len(a.known)+1)
	counts = append(counts, CategoryCount{Name: AllCategory, Count: len(items)})
	for _, name := range a.known {
		index[name] = len(counts)
		counts = append(counts, CategoryCount{Name: name})
	}
	for _, item := range items {
		name := item.EffectiveCategory()
		pos, ok := index[name]
		if !ok {
			pos = len(counts)
			index[name] = pos
			counts = append(counts, CategoryCount{Name: name})
		}
		counts[pos].Count++
	}
	return counts
}

// Names lists the selectable categories in Count order.
func (a *Aggregator) Names(items []Item) []string {
	counts := a.Count(items)
	names := make([]string, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Name)
	}
	return names
}
