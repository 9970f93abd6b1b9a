package service

import (
	dErrors "contactregistry/pkg/domain-errors"
)

func (s *ServiceSuite) TestCreateEmailRejectsBadFormat() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)

	for _, bad := range []string{"@example.com", "test@examplecom", "test@example@com", "test@.com"} {
		_, err := f.service.CreateEmail(s.ctx, contactID, EmailRequest{EmailAddress: bad})
		s.Require().Error(err, bad)
		s.Equal("Email address is invalid", err.Error())
	}
}

func (s *ServiceSuite) TestCreateEmailRejectsCaseInsensitiveDuplicate() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	_, err := f.service.CreateEmail(s.ctx, contactID, EmailRequest{EmailAddress: "joan@example.com"})
	s.Require().NoError(err)

	_, err = f.service.CreateEmail(s.ctx, contactID, EmailRequest{EmailAddress: "JOAN@Example.COM"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestUpdateEmailMayKeepItsOwnAddress() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	created, err := f.service.CreateEmail(s.ctx, contactID, EmailRequest{EmailAddress: "joan@example.com"})
	s.Require().NoError(err)

	// Re-saving the same value is not a duplicate of itself.
	updated, err := f.service.UpdateEmail(s.ctx, contactID, created.ID, EmailRequest{EmailAddress: "Joan@example.com"})
	s.Require().NoError(err)
	s.Equal("Joan@example.com", updated.EmailAddress)
}

func (s *ServiceSuite) TestUpdateEmailRejectsDuplicateOfSibling() {
	f := newMemoryFixture()
	contactID := f.seedContact(s.ctx)
	_, err := f.service.CreateEmail(s.ctx, contactID, EmailRequest{EmailAddress: "joan@example.com"})
	s.Require().NoError(err)
	second, err := f.service.CreateEmail(s.ctx, contactID, EmailRequest{EmailAddress: "work@example.com"})
	s.Require().NoError(err)

	_, err = f.service.UpdateEmail(s.ctx, contactID, second.ID, EmailRequest{EmailAddress: "joan@example.com"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}
