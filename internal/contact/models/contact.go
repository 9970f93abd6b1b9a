// Package models holds the contact aggregate and its dependent entities.
// Coded attributes are stored as raw codes and resolved to descriptions only
// on read, matching the external system of record.
package models

import (
	"time"

	id "contactregistry/pkg/domain"
)

// EstimatedIsOverEighteen records the over-eighteen judgement used only when
// the date of birth is unknown.
type EstimatedIsOverEighteen string

const (
	OverEighteenYes       EstimatedIsOverEighteen = "YES"
	OverEighteenNo        EstimatedIsOverEighteen = "NO"
	OverEighteenDoNotKnow EstimatedIsOverEighteen = "DO_NOT_KNOW"
)

// Contact is the aggregate root. It is created once; every dependent entity
// references it by id, and nothing in this service ever re-creates it
// implicitly.
type Contact struct {
	ID                      id.ContactID            `json:"id"`
	TitleCode               string                  `json:"title_code,omitempty"`
	LastName                string                  `json:"last_name"`
	FirstName               string                  `json:"first_name"`
	MiddleNames             string                  `json:"middle_names,omitempty"`
	DateOfBirth             *time.Time              `json:"date_of_birth,omitempty"`
	EstimatedIsOverEighteen EstimatedIsOverEighteen `json:"estimated_is_over_eighteen,omitempty"`
	IsStaff                 bool                    `json:"is_staff"`
	Suspended               bool                    `json:"suspended"`
	DeceasedDate            *time.Time              `json:"deceased_date,omitempty"`
	GenderCode              string                  `json:"gender_code,omitempty"`
	DomesticStatusCode      string                  `json:"domestic_status_code,omitempty"`
	LanguageCode            string                  `json:"language_code,omitempty"`
	NationalityCode         string                  `json:"nationality_code,omitempty"`
	InterpreterRequired     bool                    `json:"interpreter_required"`
	Audit
}
