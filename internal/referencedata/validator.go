package referencedata

import (
	"context"
	"errors"
	"fmt"

	dErrors "contactregistry/pkg/domain-errors"
	"contactregistry/pkg/platform/sentinel"
)

// ValidationContext names the call site instead of passing a bare
// allow-inactive boolean around. Creates must use active codes; edits may keep
// a code that has been deactivated since the row was written, so an existing
// record stays editable without forcing a code change.
type ValidationContext int

const (
	CreationContext ValidationContext = iota
	EditContext
)

func (c ValidationContext) allowsInactive() bool {
	return c == EditContext
}

// Validator checks coded values against the catalogue.
type Validator struct {
	codes Store
}

func NewValidator(codes Store) *Validator {
	return &Validator{codes: codes}
}

// Validate resolves group/code and enforces the active rule for the call
// site. Unknown codes and inactive codes (outside EditContext) produce the
// same validation error shape, parameterized by the offending code.
func (v *Validator) Validate(ctx context.Context, group Group, code string, vc ValidationContext) (*Code, error) {
	entry, err := v.codes.Lookup(ctx, group, code)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, unsupported(group, code)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up reference code")
	}
	if !entry.Active && !vc.allowsInactive() {
		return nil, unsupported(group, code)
	}
	return entry, nil
}

// Description resolves a code to its display description for detail views.
// A catalogue miss on the read path yields an empty description rather than a
// failure: the row already exists, and reads must not break when a code is
// retired from the catalogue.
func (v *Validator) Description(ctx context.Context, group Group, code string) (string, error) {
	if code == "" {
		return "", nil
	}
	entry, err := v.codes.Lookup(ctx, group, code)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", nil
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up reference code")
	}
	return entry.Description, nil
}

func unsupported(group Group, code string) *dErrors.Error {
	return dErrors.Validation(fmt.Sprintf("Unsupported %s (%s)", KindOf(group), code))
}
