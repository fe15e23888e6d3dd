// Package extraction defines the typed result of analyzing one document.
//
// Result is a tagged union: Type selects which payload pointer is set. The
// field mapper switches exhaustively on Type, so adding a document type
// without a mapping route fails to compile rather than silently dropping
// fields.
package extraction

// DocumentType tags an extraction result with the kind of document analyzed.
type DocumentType string

const (
	DocIdentity     DocumentType = "identity_document"
	DocPayslip      DocumentType = "payslip"
	DocTaxReturn    DocumentType = "tax_return"
	DocLandRegistry DocumentType = "land_registry"
	DocSaleContract DocumentType = "sale_contract"
	DocOther        DocumentType = "other"
)

// ParseDocumentType normalizes external input. Unknown values degrade to
// DocOther; they are routed through the fallback mapping, never rejected.
func ParseDocumentType(s string) DocumentType {
	switch DocumentType(s) {
	case DocIdentity, DocPayslip, DocTaxReturn, DocLandRegistry, DocSaleContract:
		return DocumentType(s)
	default:
		return DocOther
	}
}

// Result is the structured output of analyzing one document. Exactly one
// payload matching Type is expected to be non-nil; a missing payload is
// treated as an empty extraction, never as an error.
type Result struct {
	Type     DocumentType  `json:"document_type"`
	Identity *Identity     `json:"identity,omitempty"`
	Income   *Income       `json:"income,omitempty"`
	Property *Property     `json:"property,omitempty"`
	Contract *SaleContract `json:"contract,omitempty"`
	Generic  *Generic      `json:"generic,omitempty"`
}

// Identity carries the flat fields of an identity document.
type Identity struct {
	FullName       string `json:"full_name,omitempty"`
	TaxID          string `json:"tax_id,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	Expiry         string `json:"expiry,omitempty"`
	Birthplace     string `json:"birthplace,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	Sex            string `json:"sex,omitempty"`
	FatherName     string `json:"father_name,omitempty"`
	MotherName     string `json:"mother_name,omitempty"`
	Height         string `json:"height,omitempty"`
}

// Income carries the flat fields shared by payslips and tax returns.
type Income struct {
	NetIncome            string `json:"net_income,omitempty"`
	GrossIncome          string `json:"gross_income,omitempty"`
	Employer             string `json:"employer,omitempty"`
	ContractType         string `json:"contract_type,omitempty"`
	ProfessionalCategory string `json:"professional_category,omitempty"`
}

// Property carries the flat fields of a land-registry extract.
type Property struct {
	MatrixArticle string `json:"matrix_article,omitempty"`
	TaxableValue  string `json:"taxable_value,omitempty"`
	Area          string `json:"area,omitempty"`
	Location      string `json:"location,omitempty"`
	Typology      string `json:"typology,omitempty"`
}

// Generic carries the only fields mapped for unrecognized documents.
type Generic struct {
	FullName string `json:"full_name,omitempty"`
	TaxID    string `json:"tax_id,omitempty"`
}

// SaleContract is the composite promissory sale-purchase contract extraction.
// Any nested group may be nil when the analyzer could not locate it; the
// mapper simply omits the corresponding outputs.
type SaleContract struct {
	Buyers     []Party     `json:"buyers,omitempty"`
	Seller     *Party      `json:"seller,omitempty"`
	Property   *Premises   `json:"property,omitempty"`
	Amounts    *Amounts    `json:"amounts,omitempty"`
	Dates      *Dates      `json:"dates,omitempty"`
	Broker     *Brokerage  `json:"broker,omitempty"`
	Conditions *Conditions `json:"conditions,omitempty"`
}

// Party is one person named on the contract.
type Party struct {
	Name           string `json:"name,omitempty"`
	TaxID          string `json:"tax_id,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	MaritalStatus  string `json:"marital_status,omitempty"`
	Profession     string `json:"profession,omitempty"`
	Address        string `json:"address,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// Premises is the contract's property description group.
type Premises struct {
	Location          string `json:"location,omitempty"`
	PostalCode        string `json:"postal_code,omitempty"`
	Locality          string `json:"locality,omitempty"`
	Parish            string `json:"parish,omitempty"`
	Municipality      string `json:"municipality,omitempty"`
	Typology          string `json:"typology,omitempty"`
	GrossArea         string `json:"gross_area,omitempty"`
	UsableArea        string `json:"usable_area,omitempty"`
	Unit              string `json:"unit,omitempty"`
	MatrixArticle     string `json:"matrix_article,omitempty"`
	RegistryOffice    string `json:"registry_office,omitempty"`
	RegistryNumber    string `json:"registry_number,omitempty"`
	EnergyCertificate string `json:"energy_certificate,omitempty"`
	Parking           string `json:"parking,omitempty"`
	Storage           string `json:"storage,omitempty"`
	Description       string `json:"description,omitempty"`
}

// Amounts is the contract's monetary group. TotalPrice belongs to the
// property, the rest to the financing request; the mapper keeps that split.
type Amounts struct {
	TotalPrice           string `json:"total_price,omitempty"`
	FinancingAmount      string `json:"financing_amount,omitempty"`
	Deposit              string `json:"deposit,omitempty"`
	DepositDate          string `json:"deposit_date,omitempty"`
	DepositReinforcement string `json:"deposit_reinforcement,omitempty"`
	BrokerageFee         string `json:"brokerage_fee,omitempty"`
}

// Dates is the contract's schedule group.
type Dates struct {
	ContractDate         string `json:"contract_date,omitempty"`
	NotarizationDate     string `json:"notarization_date,omitempty"`
	NotarizationDeadline string `json:"notarization_deadline_days,omitempty"`
	KeyHandoverDate      string `json:"key_handover_date,omitempty"`
}

// Brokerage is the mediating agency group.
type Brokerage struct {
	CompanyName   string `json:"company_name,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	AgentName     string `json:"agent_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// Conditions is the contract's free-text clause group.
type Conditions struct {
	Suspensive string `json:"suspensive,omitempty"`
}
