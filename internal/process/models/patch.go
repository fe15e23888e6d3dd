package models

// Patch is the category-partitioned result of merging one extraction into the
// process's current canonical fields. The field groups carry fully merged
// values (extracted where present, previous otherwise) and are persisted
// wholesale; Additional carries outputs that belong to the process record
// itself rather than to a field group.
type Patch struct {
	Personal   PersonalData   `json:"personal"`
	Financial  FinancialData  `json:"financial"`
	RealEstate RealEstateData `json:"real_estate"`
	Additional Additional     `json:"additional"`
}

// Additional holds top-level outputs surfaced outside the field groups.
type Additional struct {
	// Contact fields from the primary buyer, applied with the same
	// non-empty-wins rule as group fields.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// ReplaceCoBuyers distinguishes "replace with this list" from "leave the
	// stored list alone"; an extraction with an empty buyers group must not
	// clear previously stored co-buyers.
	ReplaceCoBuyers bool     `json:"replace_co_buyers,omitempty"`
	CoBuyers        []Person `json:"co_buyers,omitempty"`

	Seller *Person `json:"seller,omitempty"`
	Broker *Broker `json:"broker,omitempty"`
}
