package external

import "context"

// AccessControl answers role questions the escrow engine cannot derive from a transaction
type AccessControl interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
