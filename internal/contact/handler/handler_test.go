package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"contactregistry/internal/contact/service"
	"contactregistry/internal/contact/store/memory"
	"contactregistry/internal/organisation"
	"contactregistry/internal/referencedata"
	"contactregistry/pkg/requestcontext"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// HandlerSuite drives the contact routes through a chi router backed by the
// real service over memory stores.
type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *HandlerSuite) SetupTest() {
	catalogue := referencedata.NewInMemory()
	catalogue.Put(&referencedata.Code{Group: referencedata.GroupPhoneType, Code: "MOB", Description: "Mobile", Active: true})
	catalogue.Put(&referencedata.Code{Group: referencedata.GroupTitle, Code: "MR", Description: "Mr", Active: true})

	svc := service.New(service.Stores{
		Contacts:      memory.NewContactStore(),
		Addresses:     memory.NewAddressStore(),
		Phones:        memory.NewPhoneStore(),
		AddressPhones: memory.NewAddressPhoneStore(),
		Emails:        memory.NewEmailStore(),
		Identities:    memory.NewIdentityStore(),
		Restrictions:  memory.NewRestrictionStore(),
		Employments:   memory.NewEmploymentStore(),
	}, organisation.NewInMemory(), referencedata.NewValidator(catalogue))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := requestcontext.WithUsername(req.Context(), "JBAKER_GEN")
			ctx = requestcontext.WithTime(ctx, fixedTime)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	New(svc, testLogger()).Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) createContact() int64 {
	w := s.do(http.MethodPost, "/contacts", map[string]any{
		"title_code": "MR",
		"first_name": "John",
		"last_name":  "Baker",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&created))
	s.Require().NotZero(created.ID)
	return created.ID
}

func (s *HandlerSuite) TestCreateContactReturnsDetails() {
	w := s.do(http.MethodPost, "/contacts", map[string]any{
		"title_code": "MR",
		"first_name": "John",
		"last_name":  "Baker",
	})
	s.Equal(http.StatusCreated, w.Code)

	var details map[string]any
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&details))
	s.Equal("Mr", details["title_description"])
	s.Equal("JBAKER_GEN", details["created_by"])
}

func (s *HandlerSuite) TestCreateContactRejectsMissingNames() {
	w := s.do(http.MethodPost, "/contacts", map[string]any{"first_name": "John"})
	s.Equal(http.StatusBadRequest, w.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&body))
	s.Equal("Contact first name and last name are required", body["error_description"])
}

func (s *HandlerSuite) TestGetMissingContactReturnsEnvelope() {
	w := s.do(http.MethodGet, "/contacts/99", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&body))
	s.Equal("not_found", body["error"])
	s.Equal("Contact (99) not found", body["error_description"])
}

func (s *HandlerSuite) TestPhoneValidationMessageReachesClient() {
	contactID := s.createContact()

	w := s.do(http.MethodPost, pathForContact(contactID, "/phones"), map[string]any{
		"phone_type_code": "SAT",
		"phone_number":    "07700900000",
	})
	s.Equal(http.StatusBadRequest, w.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&body))
	s.Equal("Unsupported phone type (SAT)", body["error_description"])
}

func (s *HandlerSuite) TestPhoneRoundTrip() {
	contactID := s.createContact()

	w := s.do(http.MethodPost, pathForContact(contactID, "/phones"), map[string]any{
		"phone_type_code": "MOB",
		"phone_number":    "07700 900000",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&created))
	s.Equal("Mobile", created["phone_type_description"])
}

func (s *HandlerSuite) TestPatchEmploymentsRejectsUnknownID() {
	contactID := s.createContact()

	w := s.do(http.MethodPatch, pathForContact(contactID, "/employments"), map[string]any{
		"delete_employments": []int64{42},
	})
	s.Equal(http.StatusNotFound, w.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&body))
	s.Equal("Employment with id 42 not found", body["error_description"])
}

func (s *HandlerSuite) TestInvalidPathIDRejected() {
	w := s.do(http.MethodGet, "/contacts/abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pathForContact(contactID int64, suffix string) string {
	return "/contacts/" + strconv.FormatInt(contactID, 10) + suffix
}
