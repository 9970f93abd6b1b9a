package organisation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// PostgresStore reads the organisation summary view. The view joins the
// organisation row with its primary address and business phone; it is
// maintained by the organisations service and treated as read-only here.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SummaryByID(ctx context.Context, orgID id.OrganisationID) (*Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT organisation_id, organisation_name, organisation_active,
		       coalesce(flat, ''), coalesce(property, ''), coalesce(street, ''), coalesce(area, ''),
		       coalesce(city_code, ''), coalesce(city_description, ''),
		       coalesce(county_code, ''), coalesce(county_description, ''),
		       coalesce(postcode, ''),
		       coalesce(country_code, ''), coalesce(country_description, ''),
		       coalesce(business_phone_number, ''), coalesce(business_phone_extension, '')
		FROM organisation_summary
		WHERE organisation_id = $1`,
		int64(orgID))

	var summary Summary
	err := row.Scan(
		&summary.OrganisationID, &summary.Name, &summary.Active,
		&summary.Flat, &summary.Property, &summary.Street, &summary.Area,
		&summary.CityCode, &summary.CityDescription,
		&summary.CountyCode, &summary.CountyDescription,
		&summary.Postcode,
		&summary.CountryCode, &summary.CountryDescription,
		&summary.BusinessPhoneNumber, &summary.BusinessPhoneExtension,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("load organisation summary: %w", err)
	}
	return &summary, nil
}
