package models

// Canonical field groups. Every extraction route ultimately populates these
// fixed schemas; the merge policy treats the empty string as "no value", so a
// later, less complete extraction can never erase a field populated earlier.
//
// Values are kept as strings regardless of their logical type (amounts, dates,
// areas): the analyzer boundary normalizes scalars to strings, which keeps the
// merge rule uniform across every field.

// PersonalData holds the primary buyer's canonical personal fields.
type PersonalData struct {
	FullName       string `json:"full_name,omitempty"`
	TaxID          string `json:"tax_id,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	DocumentExpiry string `json:"document_expiry,omitempty"`
	Birthplace     string `json:"birthplace,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	Sex            string `json:"sex,omitempty"`
	FatherName     string `json:"father_name,omitempty"`
	MotherName     string `json:"mother_name,omitempty"`
	Height         string `json:"height,omitempty"`
	MaritalStatus  string `json:"marital_status,omitempty"`
	Profession     string `json:"profession,omitempty"`
	Address        string `json:"address,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
}

// FinancialData holds income and financing request fields.
type FinancialData struct {
	NetIncome            string `json:"net_income,omitempty"`
	GrossIncome          string `json:"gross_income,omitempty"`
	Employer             string `json:"employer,omitempty"`
	ContractType         string `json:"contract_type,omitempty"`
	ProfessionalCategory string `json:"professional_category,omitempty"`
	RequestedValue       string `json:"requested_value,omitempty"`
	DownPayment          string `json:"down_payment,omitempty"`
	DepositDate          string `json:"deposit_date,omitempty"`
	DepositReinforcement string `json:"deposit_reinforcement,omitempty"`
	BrokerageFee         string `json:"brokerage_fee,omitempty"`
}

// RealEstateData holds the property's canonical fields.
type RealEstateData struct {
	Location             string `json:"location,omitempty"`
	PostalCode           string `json:"postal_code,omitempty"`
	Locality             string `json:"locality,omitempty"`
	Parish               string `json:"parish,omitempty"`
	Municipality         string `json:"municipality,omitempty"`
	Typology             string `json:"typology,omitempty"`
	GrossArea            string `json:"gross_area,omitempty"`
	UsableArea           string `json:"usable_area,omitempty"`
	Unit                 string `json:"unit,omitempty"`
	MatrixArticle        string `json:"matrix_article,omitempty"`
	TaxableValue         string `json:"taxable_value,omitempty"`
	RegistryOffice       string `json:"registry_office,omitempty"`
	RegistryNumber       string `json:"registry_number,omitempty"`
	EnergyCertificate    string `json:"energy_certificate,omitempty"`
	Parking              string `json:"parking,omitempty"`
	Storage              string `json:"storage,omitempty"`
	Description          string `json:"description,omitempty"`
	PropertyValue        string `json:"property_value,omitempty"`
	ContractDate         string `json:"contract_date,omitempty"`
	NotarizationDate     string `json:"notarization_date,omitempty"`
	NotarizationDeadline string `json:"notarization_deadline_days,omitempty"`
	KeyHandoverDate      string `json:"key_handover_date,omitempty"`
	SuspensiveConditions string `json:"suspensive_conditions,omitempty"`
}

// CreditData holds the lender's decision fields. No extraction route writes
// here; operators fill it in once the bank responds.
type CreditData struct {
	Bank          string `json:"bank,omitempty"`
	ApprovedValue string `json:"approved_value,omitempty"`
	Rate          string `json:"rate,omitempty"`
	TermMonths    string `json:"term_months,omitempty"`
	Spread        string `json:"spread,omitempty"`
}
