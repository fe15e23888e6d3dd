// Package phase defines the static catalog of workflow phases a process moves
// through, plus the alias table for deprecated phase id spellings.
package phase

// ID names a workflow phase. Unknown ids are tolerated everywhere and rendered
// with a fallback label; they never cause an error.
type ID string

// Known phase ids, in pipeline order.
const (
	Proposal       ID = "proposal"
	Documentation  ID = "documentation"
	BankReview     ID = "bank_review"
	PreApproved    ID = "pre_approved"
	Appraisal      ID = "appraisal"
	Approved       ID = "approved"
	ContractSigned ID = "contract_signed"
	Deed           ID = "deed"

	// Terminal negative outcomes. These never appear in a synthesized normal
	// progression unless they are the current phase.
	Rejected  ID = "rejected"
	Withdrawn ID = "withdrawn"
)

// Definition describes one catalog entry. Order defines canonical progression
// for display; Terminal marks negative outcomes that sit outside the normal
// chain.
type Definition struct {
	ID       ID
	Label    string
	Order    int
	Terminal bool
}

// Catalog is an ordered set of phase definitions with lookup by id.
type Catalog struct {
	defs  []Definition
	byID  map[ID]Definition
	alias map[ID]ID
}

// UnknownOrder sorts phases absent from the catalog after every known phase.
const UnknownOrder = 1 << 30

// FallbackLabel renders phases absent from the catalog.
const FallbackLabel = "Unknown phase"

// New builds a catalog from definitions and an alias table mapping deprecated
// spellings to canonical ids.
func New(defs []Definition, aliases map[ID]ID) Catalog {
	byID := make(map[ID]Definition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return Catalog{defs: defs, byID: byID, alias: aliases}
}

// Default returns the standard credit transaction pipeline.
func Default() Catalog {
	return New([]Definition{
		{ID: Proposal, Label: "Proposal", Order: 10},
		{ID: Documentation, Label: "Documentation", Order: 20},
		{ID: BankReview, Label: "Bank review", Order: 30},
		{ID: PreApproved, Label: "Pre-approved", Order: 40},
		{ID: Appraisal, Label: "Property appraisal", Order: 50},
		{ID: Approved, Label: "Approved", Order: 60},
		{ID: ContractSigned, Label: "Contract signed", Order: 70},
		{ID: Deed, Label: "Deed executed", Order: 80},
		{ID: Rejected, Label: "Rejected", Order: 90, Terminal: true},
		{ID: Withdrawn, Label: "Withdrawn", Order: 91, Terminal: true},
	}, map[ID]ID{
		// Spellings still present in historical status events.
		"in_bank_review": BankReview,
		"preapproved":    PreApproved,
		"valuation":      Appraisal,
		"signed":         ContractSigned,
		"notarized":      Deed,
		"declined":       Rejected,
		"cancelled":      Withdrawn,
	})
}

// Canonical resolves deprecated alias spellings to their canonical id.
// Ids without an alias entry pass through unchanged, including unknown ones.
func (c Catalog) Canonical(id ID) ID {
	if canonical, ok := c.alias[id]; ok {
		return canonical
	}
	return id
}

// Lookup returns the definition for a canonical id.
func (c Catalog) Lookup(id ID) (Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// OrderOf returns the display order for id, or UnknownOrder when the phase is
// not in the catalog.
func (c Catalog) OrderOf(id ID) int {
	if d, ok := c.byID[id]; ok {
		return d.Order
	}
	return UnknownOrder
}

// LabelOf returns the display label for id, or a neutral fallback.
func (c Catalog) LabelOf(id ID) string {
	if d, ok := c.byID[id]; ok {
		return d.Label
	}
	return FallbackLabel
}

// Definitions returns the catalog entries in declaration order.
func (c Catalog) Definitions() []Definition {
	return c.defs
}
