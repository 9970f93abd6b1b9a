package models

import (
	"time"

	id "contactregistry/pkg/domain"
	dErrors "contactregistry/pkg/domain-errors"
)

// ContactRestriction is an estate-wide restriction on a contact, independent
// of any specific prisoner relationship.
type ContactRestriction struct {
	ID                  id.ContactRestrictionID `json:"id"`
	ContactID           id.ContactID            `json:"contact_id"`
	RestrictionTypeCode string                  `json:"restriction_type_code"`
	StartDate           *time.Time              `json:"start_date,omitempty"`
	ExpiryDate          *time.Time              `json:"expiry_date,omitempty"`
	Comments            string                  `json:"comments,omitempty"`
	StaffUsername       string                  `json:"entered_by_username"`
	Audit
}

// ValidateRestrictionDates enforces start/expiry ordering. Either date may be
// absent (open-ended restriction); the rule only fires when both are present
// and the start falls after the expiry. Applied identically on create and
// update.
func ValidateRestrictionDates(start, expiry *time.Time) error {
	if start == nil || expiry == nil {
		return nil
	}
	if start.After(*expiry) {
		return dErrors.Validation("Restriction start date should be before the restriction end date")
	}
	return nil
}
