// Package validation holds input validation helpers shared by the service layer.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// ValidateUsername checks that a username is 3-30 characters of letters,
// digits, and underscores.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-30 characters and contain only letters, numbers, and underscores")
	}
	return nil
}

// ValidateEmail checks that an address parses as RFC 5322.
func ValidateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the password policy: at least 8 characters with
// at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

// NonEmpty reports whether s contains any non-whitespace content.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
