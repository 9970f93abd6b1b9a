package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("Contact", 99)
	assert.Equal(t, "Contact (99) not found", err.Error())
	assert.True(t, HasCode(err, CodeNotFound))

	err = NotFound("Contact address phone", 2)
	assert.Equal(t, "Contact address phone (2) not found", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeInternal, "failed to load contact")

	require.True(t, HasCode(err, CodeInternal))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load contact", err.Error())
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New(CodeNotFound, "Employment with id 1 not found")
	outer := fmt.Errorf("patch failed: %w", inner)

	assert.True(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(outer, CodeValidation))
}

func TestCodeOfUncodedError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	assert.Equal(t, CodeValidation, CodeOf(Validation("Email address is invalid")))
}
