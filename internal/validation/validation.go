// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateUsername checks that a username is present and of sane length.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	return nil
}

// ValidateEmail checks that an email address is present and plausibly shaped.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ValidateBio checks the bio length limit.
func ValidateBio(bio string) error {
	if len(bio) > 500 {
		return fmt.Errorf("bio must not exceed 500 characters")
	}
	return nil
}

// ValidateCaption checks the post caption length limit.
func ValidateCaption(caption string) error {
	if len(caption) > 2200 {
		return fmt.Errorf("caption must not exceed 2200 characters")
	}
	return nil
}
