package models

// Person is a buyer, co-buyer, or seller record. The co-buyer list and the
// seller are replaced wholesale on each contract extraction, never merged
// field-by-field.
type Person struct {
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

// Broker is the mediating agency on a sale contract, replaced wholesale.
type Broker struct {
	CompanyName   string `json:"company_name,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	AgentName     string `json:"agent_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}
