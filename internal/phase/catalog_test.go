package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrdering(t *testing.T) {
	catalog := Default()

	defs := catalog.Definitions()
	require.NotEmpty(t, defs)
	for i := 1; i < len(defs); i++ {
		assert.Greater(t, defs[i].Order, defs[i-1].Order, "definitions must be declared in ascending order")
	}

	assert.Equal(t, Proposal, defs[0].ID)
	assert.False(t, defs[0].Terminal)
}

func TestCanonicalResolvesAliases(t *testing.T) {
	catalog := Default()

	for alias, want := range map[ID]ID{
		"in_bank_review": BankReview,
		"preapproved":    PreApproved,
		"valuation":      Appraisal,
		"signed":         ContractSigned,
		"notarized":      Deed,
		"declined":       Rejected,
		"cancelled":      Withdrawn,
	} {
		assert.Equal(t, want, catalog.Canonical(alias), "alias %q", alias)
	}

	// Canonical ids and unknown ids pass through unchanged.
	assert.Equal(t, BankReview, catalog.Canonical(BankReview))
	assert.Equal(t, ID("mystery"), catalog.Canonical("mystery"))
}

func TestUnknownPhaseFallbacks(t *testing.T) {
	catalog := Default()

	assert.Equal(t, FallbackLabel, catalog.LabelOf("mystery"))
	assert.Equal(t, UnknownOrder, catalog.OrderOf("mystery"))

	_, ok := catalog.Lookup("mystery")
	assert.False(t, ok)

	// Every known phase sorts before any unknown one.
	for _, def := range catalog.Definitions() {
		assert.Less(t, catalog.OrderOf(def.ID), UnknownOrder)
	}
}

func TestTerminalPhases(t *testing.T) {
	catalog := Default()

	rejected, ok := catalog.Lookup(Rejected)
	require.True(t, ok)
	assert.True(t, rejected.Terminal)

	withdrawn, ok := catalog.Lookup(Withdrawn)
	require.True(t, ok)
	assert.True(t, withdrawn.Terminal)

	deed, ok := catalog.Lookup(Deed)
	require.True(t, ok)
	assert.False(t, deed.Terminal, "deed is a successful outcome, not a terminal failure")
}
