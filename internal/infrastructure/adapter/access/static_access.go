package access

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
)

// StaticAccessControl grants the admin role to a configured set of user ids
type StaticAccessControl struct {
	admins map[string]struct{}
}

var _ external.AccessControl = (*StaticAccessControl)(nil)

// NewStaticAccessControl creates an access control from admin ids; blanks are ignored
func NewStaticAccessControl(adminIDs []string) *StaticAccessControl {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = struct{}{}
		}
	}
	return &StaticAccessControl{admins: admins}
}

// IsAdmin reports whether userID is a configured admin
func (a *StaticAccessControl) IsAdmin(_ context.Context, userID string) (bool, error) {
	_, ok := a.admins[userID]
	return ok, nil
}

// Count returns the number of configured admins
func (a *StaticAccessControl) Count() int {
	return len(a.admins)
}
