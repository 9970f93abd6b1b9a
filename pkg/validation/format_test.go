package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "contactregistry/pkg/domain-errors"
)

func TestPhoneNumberAccepted(t *testing.T) {
	for _, number := range []string{
		"+447777777777",
		"0114 2345678",
		"(0114) 234 5678",
		"999",
	} {
		assert.NoError(t, PhoneNumber(number), number)
	}
}

func TestPhoneNumberRejected(t *testing.T) {
	bad := []string{"!", "\"", "£", "$", "%", "^", "&", "*", "_", "-", "=", ":", ";", "[", "]", "{", "}", "@", "#", "~", "/", "\\", "'"}
	for _, char := range bad {
		err := PhoneNumber("0114" + char + "234")
		require.Error(t, err, char)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "Phone number invalid, it can only contain numbers, () and whitespace with an optional + at the start", err.Error())
	}
}

func TestPhoneNumberPlusOnlyLeading(t *testing.T) {
	assert.NoError(t, PhoneNumber("+44 1234"))
	assert.Error(t, PhoneNumber("44+1234"))
	assert.Error(t, PhoneNumber("441234+"))
	assert.Error(t, PhoneNumber("++441234"))
}

func TestEmailAddress(t *testing.T) {
	for _, address := range []string{
		"test@example.com",
		"first.last@justice.gov.uk",
		"a@b.c",
	} {
		assert.NoError(t, EmailAddress(address), address)
	}

	for _, address := range []string{
		"",
		"@example.com",
		"test@.com",
		"test@example.",
		"test@example",
		"test@@example.com",
		"test@exam@ple.com",
		"plain",
	} {
		err := EmailAddress(address)
		require.Error(t, err, address)
		assert.Equal(t, "Email address is invalid", err.Error())
	}
}
