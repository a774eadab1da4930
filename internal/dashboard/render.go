package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
)

const (
	gridColumns     = 3
	timestampLayout = "2006-01-02 15:04:05"
	maxCellWidth    = 32
	emptyMessage    = "Your wishlist is currently empty. Start adding items!"
	noMatchMessage  = "No items match the current view."
)

// FormatPrice renders a price with two decimals.
func FormatPrice(item wishlist.Item) string {
	return "$" + item.Price.StringFixed(2)
}

// FormatTimestamp renders created_at in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func writeHeader(w io.Writer, state wishlist.ViewState, counts []wishlist.CategoryCount) {
	total := 0
	if len(counts) > 0 {
		total = counts[0].Count
	}
	fmt.Fprintf(w, "Shopping Wishlist\nTotal Items: %d\n", total)

	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		label := fmt.Sprintf("%s (%d)", c.Name, c.Count)
		if c.Name == state.Category {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))

	line := fmt.Sprintf("sort: %s", state.Sort)
	if state.Search != "" {
		line += fmt.Sprintf("  search: %q", state.Search)
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, strings.Repeat("-", 60))
}

// writeGrid lays items out in rows of three cards.
func writeGrid(w io.Writer, items []wishlist.Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	for start := 0; start < len(items); start += gridColumns {
		end := min(start+gridColumns, len(items))
		cards := make([][]string, 0, gridColumns)
		for _, item := range items[start:end] {
			cards = append(cards, card(item))
		}
		for line := 0; line < len(cards[0]); line++ {
			cells := make([]string, 0, len(cards))
			for _, c := range cards {
				cells = append(cells, c[line])
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
		}
		fmt.Fprintln(tw, "\t")
	}
	return tw.Flush()
}

func card(item wishlist.Item) []string {
	return []string{
		fmt.Sprintf("#%d %s", item.ID, truncate(item.Title, maxCellWidth)),
		FormatPrice(item),
		FormatTimestamp(item.CreatedAt),
		"category: " + item.EffectiveCategory(),
		"priority: " + priorityLabel(item.Priority),
		truncate(item.URL, maxCellWidth),
	}
}

func writeTable(w io.Writer, items []wishlist.Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tCATEGORY\tPRIORITY\tADDED\tURL")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			truncate(item.Title, maxCellWidth),
			FormatPrice(item),
			item.EffectiveCategory(),
			priorityLabel(item.Priority),
			FormatTimestamp(item.CreatedAt),
			item.URL,
		)
	}
	return tw.Flush()
}

func writeCategories(w io.Writer, counts []wishlist.CategoryCount) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tITEMS")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Name, c.Count)
	}
	return tw.Flush()
}

func priorityLabel(priority *string) string {
	if priority == nil || *priority == "" {
		return "-"
	}
	return *priority
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
