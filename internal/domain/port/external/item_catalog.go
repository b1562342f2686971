package external

import (
	"context"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// ItemCatalog is the read-only listing lookup owned by the marketplace
type ItemCatalog interface {
	// GetItem returns the listing, or ErrItemNotFound
	GetItem(ctx context.Context, itemID string) (*entity.Item, error)
}
