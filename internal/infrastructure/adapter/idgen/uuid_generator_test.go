package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator("")
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	parsed, err := uuid.Parse(gen.NewID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Prefix(t *testing.T) {
	id := NewUUIDGenerator("txn_").NewID()
	assert.True(t, strings.HasPrefix(id, "txn_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "txn_"))
	assert.NoError(t, err)
}
