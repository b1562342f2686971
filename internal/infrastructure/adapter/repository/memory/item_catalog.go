package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
)

// ItemCatalog is a fixed in-memory listing catalog
type ItemCatalog struct {
	mu    sync.RWMutex
	items map[string]entity.Item
}

var _ external.ItemCatalog = (*ItemCatalog)(nil)

// NewItemCatalog creates a catalog holding items
func NewItemCatalog(items ...entity.Item) *ItemCatalog {
	c := &ItemCatalog{items: make(map[string]entity.Item, len(items))}
	for _, item := range items {
		c.items[item.ID] = item
	}
	return c
}

// Put adds or replaces a listing
func (c *ItemCatalog) Put(item entity.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[item.ID] = item
}

func (c *ItemCatalog) GetItem(_ context.Context, itemID string) (*entity.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[itemID]
	if !ok {
		return nil, errs.ErrItemNotFound
	}
	if item.BusinessID != nil {
		id := *item.BusinessID
		item.BusinessID = &id
	}
	return &item, nil
}
