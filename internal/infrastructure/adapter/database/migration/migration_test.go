package migration

import (
	"strings"
	"testing"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscrowIndexes(t *testing.T) {
	seen := map[string]bool{}
	for _, index := range escrowIndexes() {
		assert.False(t, seen[index.name], "duplicate index %s", index.name)
		seen[index.name] = true
		assert.Contains(t, index.ddl, "IF NOT EXISTS "+index.name)
	}

	require.True(t, seen[repository.ActiveDisputeIndex])
	for _, index := range escrowIndexes() {
		if index.name == repository.ActiveDisputeIndex {
			assert.Contains(t, index.ddl, "CREATE UNIQUE INDEX")
			assert.Contains(t, index.ddl, "WHERE status IN ('open', 'under_review')")
		}
	}
}

func TestStatusChecks(t *testing.T) {
	checks := statusChecks()
	require.Len(t, checks, 5)

	for _, check := range checks {
		assert.True(t, strings.HasPrefix(check.name, "chk_"+check.table+"_"), check.name)
		assert.NotEmpty(t, check.allowedSet)
	}
	assert.Contains(t, checks[0].allowedSet, "DISPUTED")
	assert.Contains(t, checks[1].allowedSet, "release_failed")

	var reasons []string
	for _, check := range checks {
		if check.name == "chk_disputes_reason" {
			reasons = check.allowedSet
		}
	}
	require.Len(t, reasons, len(entity.DisputeReasons()))
	for _, reason := range entity.DisputeReasons() {
		assert.Contains(t, reasons, string(reason))
	}
	assert.Contains(t, reasons, "delivery_issue")
	assert.Contains(t, reasons, "seller_unresponsive")
	assert.NotContains(t, reasons, "buyer_unresponsive")
}
