// Package dashboard renders the wishlist for the terminal: a category header
// with counts, then the current view as a three column grid or a table.
package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
)

// Dashboard renders the wishlist to a terminal writer.
type Dashboard struct {
	svc wishlist.Service
	out io.Writer
}

// New returns a Dashboard writing to out.
func New(svc wishlist.Service, out io.Writer) *Dashboard {
	return &Dashboard{svc: svc, out: out}
}

// List renders the view for state and returns the normalized state that was shown.
func (d *Dashboard) List(ctx context.Context, state wishlist.ViewState) (wishlist.ViewState, error) {
	result, err := d.svc.View(ctx, state)
	if err != nil {
		return state, err
	}

	if len(result.Categories) == 0 || result.Categories[0].Count == 0 {
		fmt.Fprintln(d.out, emptyMessage)
		return result.State, nil
	}

	writeHeader(d.out, result.State, result.Categories)
	if len(result.Items) == 0 {
		fmt.Fprintln(d.out, noMatchMessage)
		return result.State, nil
	}

	if result.State.ViewMode == wishlist.ViewModeTable {
		return result.State, writeTable(d.out, result.Items)
	}
	return result.State, writeGrid(d.out, result.Items)
}

// Categories prints the per-category item counts.
func (d *Dashboard) Categories(ctx context.Context) error {
	counts, err := d.svc.Categories(ctx)
	if err != nil {
		return err
	}
	return writeCategories(d.out, counts)
}

// SetCategory updates one item and prints its new effective category.
func (d *Dashboard) SetCategory(ctx context.Context, id int64, category *string) error {
	item, err := d.svc.UpdateCategory(ctx, id, category)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Updated #%d %q -> %s\n", item.ID, item.Title, item.EffectiveCategory())
	return nil
}
