package models

// CreditApplicationPayload is the full nested application record submitted
// from the multi-step form. It is validated as a whole before anything is
// persisted; the accepted payload is stored verbatim in the data column.
type CreditApplicationPayload struct {
	Company         CompanyInfo      `json:"company"`
	Owners          []Owner          `json:"owners"`
	BankReference   BankReference    `json:"bankReference"`
	TradeReferences []TradeReference `json:"tradeReferences"`
	Sales           SalesProfile     `json:"sales"`
	Agreements      Agreements       `json:"agreements"`
}

type CompanyInfo struct {
	LegalName       string `json:"legalName"`
	DBA             string `json:"dba,omitempty"`
	EntityType      string `json:"entityType"`
	YearsInBusiness int    `json:"yearsInBusiness"`
	FederalTaxID    string `json:"federalTaxId"`
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website,omitempty"`
}

type Owner struct {
	Name             string  `json:"name"`
	Title            string  `json:"title"`
	OwnershipPercent float64 `json:"ownershipPercent"`
	HomeAddress      string  `json:"homeAddress"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
}

type BankReference struct {
	BankName    string `json:"bankName"`
	AccountType string `json:"accountType"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone"`
}

type TradeReference struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
}

type SalesProfile struct {
	EstimatedMonthlyGallons float64  `json:"estimatedMonthlyGallons"`
	Products                []string `json:"products"`
	DeliveryAddress         string   `json:"deliveryAddress"`
	DesiredCreditLimit      *float64 `json:"desiredCreditLimit,omitempty"`
}

// Agreements carries the two consents plus the signature block. IPAddress,
// SignedAt and IntegrityTag are stamped server-side by the pipeline; any
// client-supplied values are overwritten.
type Agreements struct {
	AgreedToTerms         bool   `json:"agreedToTerms"`
	AuthorizedCreditCheck bool   `json:"authorizedCreditCheck"`
	SignatureName         string `json:"signatureName"`
	SignatureTitle        string `json:"signatureTitle"`
	Signature             string `json:"signature"`
	IPAddress             string `json:"ipAddress,omitempty"`
	SignedAt              string `json:"signedAt,omitempty"`
	IntegrityTag          string `json:"integrityTag,omitempty"`
}

// Known entity types for CompanyInfo.EntityType.
var EntityTypes = []string{
	"sole_proprietorship",
	"partnership",
	"llc",
	"corporation",
	"other",
}

// Known account types for BankReference.AccountType.
var BankAccountTypes = []string{
	"checking",
	"savings",
	"line_of_credit",
}

// Products the sales team quotes against.
var ProductTypes = []string{
	"diesel",
	"gasoline",
	"heating_oil",
	"kerosene",
	"def",
	"lubricants",
}

// DocumentPaths maps the supporting-document slots to their storage paths.
// A field is omitted from the stored JSON when that document was not
// uploaded. OtherDocs keeps the client's slot order.
type DocumentPaths struct {
	W9               *string  `json:"w9,omitempty"`
	TaxExemptionCert *string  `json:"taxExemptionCert,omitempty"`
	COI              *string  `json:"coi,omitempty"`
	OtherDocs        []string `json:"otherDocs,omitempty"`
}

// IsEmpty reports whether no document was recorded at all.
func (d DocumentPaths) IsEmpty() bool {
	return d.W9 == nil && d.TaxExemptionCert == nil && d.COI == nil && len(d.OtherDocs) == 0
}
