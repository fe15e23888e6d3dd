// Package mapper merges one document-extraction result into a process's
// canonical fields, producing a category-partitioned patch.
//
// The merge is monotonic: a field only changes when the extraction supplies a
// non-empty value for it, so a later, less complete document can never erase
// data populated by an earlier one. The mapper is a pure function; persisting
// the patch is the caller's job, and a failed save must retain the patch for
// retry rather than re-running extraction.
package mapper

import (
	"dossier/internal/extraction"
	"dossier/internal/process/models"
)

// Merge routes the extraction's fields into the canonical categories and
// merges them over the current values. Unknown document types degrade to the
// fallback route; missing payloads or nested groups produce no output for the
// affected fields and never fail.
func Merge(result extraction.Result, current models.Snapshot) models.Patch {
	patch := models.Patch{
		Personal:   current.Personal,
		Financial:  current.Financial,
		RealEstate: current.RealEstate,
	}

	switch result.Type {
	case extraction.DocIdentity:
		mergeIdentity(&patch, result.Identity)
	case extraction.DocPayslip, extraction.DocTaxReturn:
		mergeIncome(&patch, result.Income)
	case extraction.DocLandRegistry:
		mergeLandRegistry(&patch, result.Property)
	case extraction.DocSaleContract:
		mergeContract(&patch, result.Contract)
	case extraction.DocOther:
		mergeGeneric(&patch, result.Generic)
	default:
		mergeGeneric(&patch, result.Generic)
	}

	return patch
}

// pick implements the uniform merge policy for scalar fields: the extracted
// value wins only when non-empty.
func pick(extracted, previous string) string {
	if extracted != "" {
		return extracted
	}
	return previous
}

func mergeIdentity(patch *models.Patch, doc *extraction.Identity) {
	if doc == nil {
		return
	}
	p := &patch.Personal
	p.FullName = pick(doc.FullName, p.FullName)
	p.TaxID = pick(doc.TaxID, p.TaxID)
	p.DocumentNumber = pick(doc.DocumentNumber, p.DocumentNumber)
	p.BirthDate = pick(doc.BirthDate, p.BirthDate)
	p.DocumentExpiry = pick(doc.Expiry, p.DocumentExpiry)
	p.Birthplace = pick(doc.Birthplace, p.Birthplace)
	p.Nationality = pick(doc.Nationality, p.Nationality)
	p.Sex = pick(doc.Sex, p.Sex)
	p.FatherName = pick(doc.FatherName, p.FatherName)
	p.MotherName = pick(doc.MotherName, p.MotherName)
	p.Height = pick(doc.Height, p.Height)
}

func mergeIncome(patch *models.Patch, doc *extraction.Income) {
	if doc == nil {
		return
	}
	f := &patch.Financial
	f.NetIncome = pick(doc.NetIncome, f.NetIncome)
	f.GrossIncome = pick(doc.GrossIncome, f.GrossIncome)
	f.Employer = pick(doc.Employer, f.Employer)
	f.ContractType = pick(doc.ContractType, f.ContractType)
	f.ProfessionalCategory = pick(doc.ProfessionalCategory, f.ProfessionalCategory)
}

func mergeLandRegistry(patch *models.Patch, doc *extraction.Property) {
	if doc == nil {
		return
	}
	re := &patch.RealEstate
	re.MatrixArticle = pick(doc.MatrixArticle, re.MatrixArticle)
	re.TaxableValue = pick(doc.TaxableValue, re.TaxableValue)
	re.GrossArea = pick(doc.Area, re.GrossArea)
	re.Location = pick(doc.Location, re.Location)
	re.Typology = pick(doc.Typology, re.Typology)
}

func mergeGeneric(patch *models.Patch, doc *extraction.Generic) {
	if doc == nil {
		return
	}
	p := &patch.Personal
	p.TaxID = pick(doc.TaxID, p.TaxID)
	p.FullName = pick(doc.FullName, p.FullName)
}

// mergeContract handles the composite promissory sale-purchase contract: the
// one extraction that writes across categories and surfaces additional
// top-level outputs.
func mergeContract(patch *models.Patch, doc *extraction.SaleContract) {
	if doc == nil {
		return
	}
	mergePrimaryBuyer(patch, doc.Buyers)
	mergeCoBuyers(patch, doc.Buyers)
	mergeSeller(patch, doc.Seller)
	mergePremises(patch, doc.Property)
	mergeAmounts(patch, doc.Amounts)
	mergeDates(patch, doc.Dates)
	mergeBroker(patch, doc.Broker)
	mergeConditions(patch, doc.Conditions)
}

// mergePrimaryBuyer maps buyers[0] into the personal category. Contact fields
// surface as top-level additional outputs because they belong to the process
// record itself, not to the personal-data group.
func mergePrimaryBuyer(patch *models.Patch, buyers []extraction.Party) {
	if len(buyers) == 0 {
		return
	}
	buyer := buyers[0]
	p := &patch.Personal
	p.FullName = pick(buyer.Name, p.FullName)
	p.TaxID = pick(buyer.TaxID, p.TaxID)
	p.DocumentNumber = pick(buyer.DocumentNumber, p.DocumentNumber)
	p.MaritalStatus = pick(buyer.MaritalStatus, p.MaritalStatus)
	p.Profession = pick(buyer.Profession, p.Profession)
	p.Address = pick(buyer.Address, p.Address)
	p.PostalCode = pick(buyer.PostalCode, p.PostalCode)

	patch.Additional.Email = buyer.Email
	patch.Additional.Phone = buyer.Phone
}

// mergeCoBuyers surfaces the full buyers list (index 0 included) as a
// wholesale replacement of the stored co-buyer list.
func mergeCoBuyers(patch *models.Patch, buyers []extraction.Party) {
	if len(buyers) == 0 {
		return
	}
	coBuyers := make([]models.Person, 0, len(buyers))
	for _, b := range buyers {
		coBuyers = append(coBuyers, toPerson(b))
	}
	patch.Additional.ReplaceCoBuyers = true
	patch.Additional.CoBuyers = coBuyers
}

// mergeSeller replaces the stored seller wholesale, but only when the
// extraction actually identified one.
func mergeSeller(patch *models.Patch, seller *extraction.Party) {
	if seller == nil || (seller.Name == "" && seller.TaxID == "") {
		return
	}
	person := toPerson(*seller)
	patch.Additional.Seller = &person
}

func mergePremises(patch *models.Patch, property *extraction.Premises) {
	if property == nil {
		return
	}
	re := &patch.RealEstate
	re.Location = pick(property.Location, re.Location)
	re.PostalCode = pick(property.PostalCode, re.PostalCode)
	re.Locality = pick(property.Locality, re.Locality)
	re.Parish = pick(property.Parish, re.Parish)
	re.Municipality = pick(property.Municipality, re.Municipality)
	re.Typology = pick(property.Typology, re.Typology)
	re.GrossArea = pick(property.GrossArea, re.GrossArea)
	re.UsableArea = pick(property.UsableArea, re.UsableArea)
	re.Unit = pick(property.Unit, re.Unit)
	re.MatrixArticle = pick(property.MatrixArticle, re.MatrixArticle)
	re.RegistryOffice = pick(property.RegistryOffice, re.RegistryOffice)
	re.RegistryNumber = pick(property.RegistryNumber, re.RegistryNumber)
	re.EnergyCertificate = pick(property.EnergyCertificate, re.EnergyCertificate)
	re.Parking = pick(property.Parking, re.Parking)
	re.Storage = pick(property.Storage, re.Storage)
	re.Description = pick(property.Description, re.Description)
}

// mergeAmounts splits the monetary group across two categories: the total
// sale price describes the property, everything else describes the financing
// request. The split is intentional and must not be collapsed.
func mergeAmounts(patch *models.Patch, amounts *extraction.Amounts) {
	if amounts == nil {
		return
	}
	f := &patch.Financial
	f.RequestedValue = pick(amounts.FinancingAmount, f.RequestedValue)
	f.DownPayment = pick(amounts.Deposit, f.DownPayment)
	f.DepositDate = pick(amounts.DepositDate, f.DepositDate)
	f.DepositReinforcement = pick(amounts.DepositReinforcement, f.DepositReinforcement)
	f.BrokerageFee = pick(amounts.BrokerageFee, f.BrokerageFee)

	patch.RealEstate.PropertyValue = pick(amounts.TotalPrice, patch.RealEstate.PropertyValue)
}

func mergeDates(patch *models.Patch, dates *extraction.Dates) {
	if dates == nil {
		return
	}
	re := &patch.RealEstate
	re.ContractDate = pick(dates.ContractDate, re.ContractDate)
	re.NotarizationDate = pick(dates.NotarizationDate, re.NotarizationDate)
	re.NotarizationDeadline = pick(dates.NotarizationDeadline, re.NotarizationDeadline)
	re.KeyHandoverDate = pick(dates.KeyHandoverDate, re.KeyHandoverDate)
}

// mergeBroker replaces the stored broker wholesale, but only when the
// extraction identified the agency.
func mergeBroker(patch *models.Patch, broker *extraction.Brokerage) {
	if broker == nil || (broker.CompanyName == "" && broker.LicenseNumber == "") {
		return
	}
	patch.Additional.Broker = &models.Broker{
		CompanyName:   broker.CompanyName,
		LicenseNumber: broker.LicenseNumber,
		AgentName:     broker.AgentName,
		Email:         broker.Email,
		Phone:         broker.Phone,
	}
}

func mergeConditions(patch *models.Patch, conditions *extraction.Conditions) {
	if conditions == nil {
		return
	}
	patch.RealEstate.SuspensiveConditions = pick(conditions.Suspensive, patch.RealEstate.SuspensiveConditions)
}

func toPerson(party extraction.Party) models.Person {
	return models.Person{
		Name:           party.Name,
		TaxID:          party.TaxID,
		DocumentNumber: party.DocumentNumber,
		MaritalStatus:  party.MaritalStatus,
		Profession:     party.Profession,
		Address:        party.Address,
		PostalCode:     party.PostalCode,
		Email:          party.Email,
		Phone:          party.Phone,
	}
}
