package services

import (
	"fmt"
	"strings"

	"fuel-distribution-api/models"
	"fuel-distribution-api/utils"
)

// FieldError is one schema violation, addressed by its dotted field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payload, not just the
// first, so the client can correct a submission in one round trip.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
}

type fieldErrorList struct {
	errors []FieldError
}

func (l *fieldErrorList) add(field, message string) {
	l.errors = append(l.errors, FieldError{Field: field, Message: message})
}

func (l *fieldErrorList) requireText(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		l.add(field, message)
	}
}

// ValidateCreditApplication checks the whole nested payload and returns nil
// or a ValidationError listing every violated field. Validation is atomic:
// a single failing field rejects the submission wholesale.
func ValidateCreditApplication(app *models.CreditApplicationPayload) *ValidationError {
	list := &fieldErrorList{}

	validateCompanyInfo(list, &app.Company)
	validateOwners(list, app.Owners)
	validateBankReference(list, &app.BankReference)
	validateTradeReferences(list, app.TradeReferences)
	validateSalesProfile(list, &app.Sales)
	validateAgreements(list, &app.Agreements)

	if len(list.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: list.errors}
}

func validateCompanyInfo(list *fieldErrorList, c *models.CompanyInfo) {
	list.requireText("company.legalName", c.LegalName, "Legal business name is required")

	if !containsString(models.EntityTypes, c.EntityType) {
		list.add("company.entityType", "Entity type must be one of: "+strings.Join(models.EntityTypes, ", "))
	}
	if c.YearsInBusiness < 0 {
		list.add("company.yearsInBusiness", "Years in business cannot be negative")
	}
	if !utils.ValidateTaxID(c.FederalTaxID) {
		list.add("company.federalTaxId", "Federal tax ID must match the format NN-NNNNNNN")
	}

	list.requireText("company.street", c.Street, "Street address is required")
	list.requireText("company.city", c.City, "City is required")

	if !utils.ValidateState(c.State) {
		list.add("company.state", "State must be a 2-letter abbreviation")
	}
	if !utils.ValidateZip(c.Zip) {
		list.add("company.zip", "ZIP code must be 5 or 9 digits")
	}
	if !utils.ValidatePhone(c.Phone) {
		list.add("company.phone", "Phone must be a valid US number")
	}
	if !utils.ValidateEmail(c.Email) {
		list.add("company.email", "A valid email address is required")
	}
}

func validateOwners(list *fieldErrorList, owners []models.Owner) {
	if len(owners) == 0 {
		list.add("owners", "At least one owner or officer is required")
		return
	}

	for i := range owners {
		owner := &owners[i]
		prefix := fmt.Sprintf("owners[%d]", i)

		list.requireText(prefix+".name", owner.Name, "Owner name is required")
		list.requireText(prefix+".title", owner.Title, "Owner title is required")

		if owner.OwnershipPercent < 0 || owner.OwnershipPercent > 100 {
			list.add(prefix+".ownershipPercent", "Ownership percent must be between 0 and 100")
		}

		list.requireText(prefix+".homeAddress", owner.HomeAddress, "Owner home address is required")

		if !utils.ValidatePhone(owner.Phone) {
			list.add(prefix+".phone", "Phone must be a valid US number")
		}
		if !utils.ValidateEmail(owner.Email) {
			list.add(prefix+".email", "A valid email address is required")
		}
	}
}

func validateBankReference(list *fieldErrorList, b *models.BankReference) {
	list.requireText("bankReference.bankName", b.BankName, "Bank name is required")

	if !containsString(models.BankAccountTypes, b.AccountType) {
		list.add("bankReference.accountType", "Account type must be one of: "+strings.Join(models.BankAccountTypes, ", "))
	}
	if !utils.ValidatePhone(b.Phone) {
		list.add("bankReference.phone", "Phone must be a valid US number")
	}
}

func validateTradeReferences(list *fieldErrorList, refs []models.TradeReference) {
	if len(refs) != 3 {
		list.add("tradeReferences", "Exactly 3 trade references are required")
		return
	}

	for i := range refs {
		ref := &refs[i]
		prefix := fmt.Sprintf("tradeReferences[%d]", i)

		list.requireText(prefix+".companyName", ref.CompanyName, "Reference company name is required")

		if !utils.ValidatePhone(ref.Phone) {
			list.add(prefix+".phone", "Phone must be a valid US number")
		}
		if ref.Email != "" && !utils.ValidateEmail(ref.Email) {
			list.add(prefix+".email", "Email address is not valid")
		}
	}
}

func validateSalesProfile(list *fieldErrorList, s *models.SalesProfile) {
	if s.EstimatedMonthlyGallons < 0 {
		list.add("sales.estimatedMonthlyGallons", "Estimated monthly gallons cannot be negative")
	}
	if len(s.Products) == 0 {
		list.add("sales.products", "Select at least one product")
	}
	for i, product := range s.Products {
		if !containsString(models.ProductTypes, product) {
			list.add(fmt.Sprintf("sales.products[%d]", i), "Unknown product: "+product)
		}
	}

	list.requireText("sales.deliveryAddress", s.DeliveryAddress, "Delivery address is required")

	if s.DesiredCreditLimit != nil && *s.DesiredCreditLimit < 0 {
		list.add("sales.desiredCreditLimit", "Desired credit limit cannot be negative")
	}
}

func validateAgreements(list *fieldErrorList, a *models.Agreements) {
	if !a.AgreedToTerms {
		list.add("agreements.agreedToTerms", "You must agree to the terms and conditions")
	}
	if !a.AuthorizedCreditCheck {
		list.add("agreements.authorizedCreditCheck", "You must authorize the credit check")
	}

	list.requireText("agreements.signatureName", a.SignatureName, "Signer name is required")
	list.requireText("agreements.signatureTitle", a.SignatureTitle, "Signer title is required")
	list.requireText("agreements.signature", a.Signature, "Signature is required")
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
