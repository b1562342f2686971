package external

import (
	"context"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
)

// Notifier tells parties about committed changes. Delivery failures must
// never affect the change that triggered them.
type Notifier interface {
	Notify(ctx context.Context, event entity.Event)
}
