// Package referencedata resolves and validates coded values against the
// reference-code catalogue. Codes have an active/inactive lifecycle; whether an
// inactive code is acceptable depends on the call site (create vs edit).
package referencedata

// Group names a reference-code catalogue.
type Group string

const (
	GroupTitle           Group = "TITLE"
	GroupPhoneType       Group = "PHONE_TYPE"
	GroupIdentityType    Group = "ID_TYPE"
	GroupRestrictionType Group = "RESTRICTION"
	GroupRelationship    Group = "RELATIONSHIP"
	GroupGender          Group = "GENDER"
	GroupDomesticStatus  Group = "DOMESTIC_STS"
	GroupLanguage        Group = "LANGUAGE"
	GroupNationality     Group = "NAT"
	GroupCity            Group = "CITY"
	GroupCounty          Group = "COUNTY"
	GroupCountry         Group = "COUNTRY"
)

// Code is one entry in a reference-code catalogue.
type Code struct {
	Group        Group  `json:"group"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	Active       bool   `json:"active"`
}

// kinds maps a group to the noun used in validation messages, e.g.
// "Unsupported phone type (MOB)".
var kinds = map[Group]string{
	GroupTitle:           "title",
	GroupPhoneType:       "phone type",
	GroupIdentityType:    "identity type",
	GroupRestrictionType: "restriction type",
	GroupRelationship:    "relationship type",
	GroupGender:          "gender",
	GroupDomesticStatus:  "domestic status",
	GroupLanguage:        "language",
	GroupNationality:     "nationality",
	GroupCity:            "city",
	GroupCounty:          "county",
	GroupCountry:         "country",
}

// KindOf returns the validation-message noun for a group, defaulting to the
// group name itself for catalogues without a friendlier label.
func KindOf(group Group) string {
	if kind, ok := kinds[group]; ok {
		return kind
	}
	return string(group)
}
