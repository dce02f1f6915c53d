// Package validation holds the pure form checks run before any network
// call. Errors are ordered, human-readable strings shown inline as a list.
package validation

import (
	"regexp"
	"strings"
)

const maxInterests = 10

var (
	zipRe     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	numericRe = regexp.MustCompile(`^\d+$`)

	// commonPasswords is a small blocklist, matched case-insensitively.
	commonPasswords = map[string]bool{
		"password": true,
		"12345678": true,
		"qwerty":   true,
		"abc123":   true,
	}
)

type Result struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

type RegistrationData struct {
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
	Street    string
	City      string
	State     string
	ZipCode   string
}

type LoginData struct {
	Email    string
	Password string
}

func ValidateRegistration(data RegistrationData) Result {
	var errs []string

	if data.Email == "" {
		errs = append(errs, "Email is required")
	} else if !strings.Contains(data.Email, "@") || !strings.Contains(data.Email, ".") {
		errs = append(errs, "Please enter a valid email address")
	}

	if data.Password == "" {
		errs = append(errs, "Password is required")
	} else {
		if len(data.Password) < 8 {
			errs = append(errs, "Password must be at least 8 characters long")
		}
		if numericRe.MatchString(data.Password) {
			errs = append(errs, "Password cannot be entirely numeric")
		}
		if commonPasswords[strings.ToLower(data.Password)] {
			errs = append(errs, "This password is too common. Please choose a stronger password.")
		}
	}

	if data.Password != data.Password2 {
		errs = append(errs, "Passwords do not match")
	}

	if strings.TrimSpace(data.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(data.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if strings.TrimSpace(data.Street) == "" {
		errs = append(errs, "Street address is required")
	}
	if strings.TrimSpace(data.City) == "" {
		errs = append(errs, "City is required")
	}
	if strings.TrimSpace(data.State) == "" {
		errs = append(errs, "State is required")
	}
	if strings.TrimSpace(data.ZipCode) == "" {
		errs = append(errs, "ZIP code is required")
	} else if !zipRe.MatchString(data.ZipCode) {
		errs = append(errs, "Please enter a valid ZIP code (e.g., 12345 or 12345-6789)")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func ValidateLogin(data LoginData) Result {
	var errs []string

	if data.Email == "" {
		errs = append(errs, "Email is required")
	} else if !strings.Contains(data.Email, "@") {
		errs = append(errs, "Please enter a valid email address")
	}

	if data.Password == "" {
		errs = append(errs, "Password is required")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidZipCode accepts 5-digit and ZIP+4 formats.
func ValidZipCode(zip string) bool {
	return zipRe.MatchString(strings.TrimSpace(zip))
}

// ParseInterests splits a comma-separated free-text field into a trimmed
// list: blank entries dropped, order preserved, capped at 10.
func ParseInterests(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
		if len(out) == maxInterests {
			break
		}
	}
	return out
}
