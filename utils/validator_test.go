package utils

import (
	"net/http/httptest"
	"testing"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"4055551234",
		"+14055551234",
		"+1 (405) 555-1234",
		"405.555.1234",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Fatalf("expected %q to be valid", phone)
		}
	}

	invalid := []string{
		"555-1234",      // too few digits
		"405555123",     // 9 digits
		"call me maybe", // letters
		"405-555-1234 ext 2",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Fatalf("expected %q to be invalid", phone)
		}
	}
}

func TestValidateTaxID(t *testing.T) {
	if !ValidateTaxID("12-3456789") {
		t.Fatal("expected 12-3456789 to be valid")
	}
	for _, taxID := range []string{"123456789", "1-23456789", "12-345678", "12-34567890", "ab-cdefghi"} {
		if ValidateTaxID(taxID) {
			t.Fatalf("expected %q to be invalid", taxID)
		}
	}
}

func TestValidateZip(t *testing.T) {
	for _, zip := range []string{"74101", "74101-1234"} {
		if !ValidateZip(zip) {
			t.Fatalf("expected %q to be valid", zip)
		}
	}
	for _, zip := range []string{"7410", "741011", "74101-12", "ABCDE"} {
		if ValidateZip(zip) {
			t.Fatalf("expected %q to be invalid", zip)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("jane@x.com") {
		t.Fatal("expected jane@x.com to be valid")
	}
	for _, email := range []string{"jane", "jane@", "@x.com", "jane@x"} {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestRequesterIP(t *testing.T) {
	req := httptest.NewRequest("POST", "/", nil)
	if got := RequesterIP(req); got != "unknown" {
		t.Fatalf("expected sentinel for bare request, got %q", got)
	}

	req.Header.Set("X-Real-IP", "198.51.100.7")
	if got := RequesterIP(req); got != "198.51.100.7" {
		t.Fatalf("expected X-Real-IP fallback, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := RequesterIP(req); got != "203.0.113.9" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}
