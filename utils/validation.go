package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Password validation regex patterns
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasNumber  = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[\W_]`)
)

// ValidateEmail checks if the email is well-formed
func ValidateEmail(email string) (bool, string) {
	if strings.TrimSpace(email) == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, ErrInvalidEmail
	}
	return true, ""
}

// ValidatePassword checks the password against the strength policy
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, ErrInvalidPassword
	}
	if !hasLower.MatchString(password) || !hasUpper.MatchString(password) ||
		!hasNumber.MatchString(password) || !hasSpecial.MatchString(password) {
		return false, ErrInvalidPassword
	}
	return true, ""
}

// Blank reports whether any of the values is empty after trimming
func Blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
