// Package validation holds the stateless payload format rules. These are pure
// functions with no store access; services run them before any write.
package validation

import (
	"regexp"

	dErrors "contactregistry/pkg/domain-errors"
)

// phonePattern allows digits, whitespace and parentheses with an optional
// leading +. An embedded + or any punctuation fails.
var phonePattern = regexp.MustCompile(`^\+?[\d\s()]+$`)

// emailPattern is deliberately conservative: one @, at least one character
// before it, at least one between @ and the first dot of the domain, and at
// least one after the final dot.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@.]+(\.[^@.]+)+$`)

const phoneNumberMessage = "Phone number invalid, it can only contain numbers, () and whitespace with an optional + at the start"

// PhoneNumber validates the character set of a phone number.
func PhoneNumber(number string) error {
	if !phonePattern.MatchString(number) {
		return dErrors.Validation(phoneNumberMessage)
	}
	return nil
}

// EmailAddress validates the shape of an email address.
func EmailAddress(address string) error {
	if !emailPattern.MatchString(address) {
		return dErrors.Validation("Email address is invalid")
	}
	return nil
}
