// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	taxIDRegex = regexp.MustCompile(`^\d{2}-\d{7}$`)
	zipRegex   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	stateRegex = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateTaxID checks a federal tax identifier (EIN, NN-NNNNNNN).
func ValidateTaxID(taxID string) bool {
	return taxIDRegex.MatchString(taxID)
}

// ValidateZip checks a 5- or 9-digit US ZIP code.
func ValidateZip(zip string) bool {
	return zipRegex.MatchString(zip)
}

// ValidateState checks a 2-letter US state abbreviation.
func ValidateState(state string) bool {
	return stateRegex.MatchString(state)
}

// ValidatePhone checks a US phone number: optional leading +1, then at
// least 10 digits once separators are stripped.
func ValidatePhone(phone string) bool {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+1")

	digits := 0
	for _, r := range p {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separator, ignore
		default:
			return false
		}
	}
	return digits >= 10
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
