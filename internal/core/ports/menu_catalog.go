package ports

import (
	"context"

	"hotelpos/internal/core/domain/model/menu"
)

// MenuCatalog is the read side of the menu used at order entry. It may be
// served from a cache, so writers call Invalidate after committing changes.
type MenuCatalog interface {
	// ListAvailable returns available items ordered by category then name.
	// An empty category returns every category.
	ListAvailable(ctx context.Context, category string) ([]*menu.MenuItem, error)

	Invalidate(ctx context.Context) error
}
