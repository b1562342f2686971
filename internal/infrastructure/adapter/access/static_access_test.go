package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAccessControl(t *testing.T) {
	ac := NewStaticAccessControl([]string{"admin-1", " admin-2 ", ""})
	assert.Equal(t, 2, ac.Count())

	tests := map[string]bool{
		"admin-1": true,
		"admin-2": true,
		"buyer-1": false,
		"":        false,
	}
	for userID, want := range tests {
		got, err := ac.IsAdmin(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, want, got, userID)
	}
}
