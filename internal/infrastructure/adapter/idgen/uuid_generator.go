package idgen

import (
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered UUIDv7 identifiers, optionally prefixed
type UUIDGenerator struct {
	prefix string
}

var _ core.IDGenerator = (*UUIDGenerator)(nil)

// NewUUIDGenerator creates a generator; prefix may be empty
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// NewID returns a fresh identifier
func (g *UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return g.prefix + id.String()
}
