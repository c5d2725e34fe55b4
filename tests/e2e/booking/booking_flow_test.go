//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"pawbook/internal/domain/user"
	"pawbook/internal/handler/dto/request"
	"pawbook/internal/handler/dto/response"
	"pawbook/tests/common/dbtest"
	"pawbook/tests/common/httptest"
	"pawbook/tests/e2e"
	"pawbook/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type seeded struct {
	customerID uuid.UUID
	dogID      uuid.UUID
	serviceID  uuid.UUID
}

func (s *BookingSuite) seed() seeded {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.DB, "Jane", "Smith")
	return seeded{
		customerID: customerID,
		dogID:      dbtest.CreateTestDog(t, s.DB, customerID, "Biscuit"),
		serviceID:  dbtest.CreateTestService(t, s.DB, "Group Walk", 1500),
	}
}

func (s *BookingSuite) login() string {
	t := s.T()
	sessions := helper.NewSessionTestHelper(s.DB)
	return sessions.CreateAndLogin(t, s.Router, "walker@example.com", string(user.RoleStaff))
}

func (s *BookingSuite) TestCreateBookingSeries() {
	s.Run("Normal case: weekly repeats create the whole series", func() {
		t := s.T()
		token := s.login()
		ids := s.seed()

		reqBody := request.CreateBookingRequest{
			CustomerID:  ids.customerID,
			DogID:       ids.dogID,
			ServiceID:   ids.serviceID,
			Date:        "2026-05-04",
			TimeOfDay:   "09:30",
			RepeatWeeks: 3,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var series []response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
		require.Len(t, series, 4)

		wantDates := []string{"2026-05-04", "2026-05-11", "2026-05-18", "2026-05-25"}
		for i, b := range series {
			require.Equal(t, wantDates[i], b.Date)
			require.Equal(t, "09:30", b.TimeOfDay)
			require.Equal(t, int64(1500), b.PricePence)
		}
	})

	s.Run("Normal case: price comes from the linked service", func() {
		t := s.T()
		token := s.login()
		ids := s.seed()

		reqBody := request.CreateBookingRequest{
			CustomerID: ids.customerID,
			DogID:      ids.dogID,
			ServiceID:  ids.serviceID,
			Date:       "2026-05-04",
			TimeOfDay:  "09:30",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var series []response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
		require.Len(t, series, 1)
		require.Equal(t, int64(1500), series[0].PricePence)
	})

	s.Run("Error case: an unknown service is rejected", func() {
		t := s.T()
		token := s.login()
		ids := s.seed()

		reqBody := request.CreateBookingRequest{
			CustomerID: ids.customerID,
			DogID:      ids.dogID,
			ServiceID:  uuid.New(),
			Date:       "2026-05-04",
			TimeOfDay:  "09:30",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})
}

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: newest date first, earliest time first within a day", func() {
		t := s.T()
		token := s.login()
		ids := s.seed()

		may4 := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
		may5 := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)
		dbtest.CreateTestBooking(t, s.DB, ids.customerID, ids.dogID, ids.serviceID, may4, "14:00")
		dbtest.CreateTestBooking(t, s.DB, ids.customerID, ids.dogID, ids.serviceID, may5, "09:30")
		dbtest.CreateTestBooking(t, s.DB, ids.customerID, ids.dogID, ids.serviceID, may4, "09:30")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var bookings []response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
		require.Len(t, bookings, 3)
		require.Equal(t, "2026-05-05", bookings[0].Date)
		require.Equal(t, "2026-05-04", bookings[1].Date)
		require.Equal(t, "09:30", bookings[1].TimeOfDay)
		require.Equal(t, "14:00", bookings[2].TimeOfDay)
	})

	s.Run("Normal case: date range filter", func() {
		t := s.T()
		token := s.login()
		ids := s.seed()

		dbtest.CreateTestBooking(t, s.DB, ids.customerID, ids.dogID, ids.serviceID,
			time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), "09:30")
		dbtest.CreateTestBooking(t, s.DB, ids.customerID, ids.dogID, ids.serviceID,
			time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), "09:30")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"?from=2026-05-01&to=2026-05-31", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var bookings []response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
		require.Len(t, bookings, 1)
		require.Equal(t, "2026-05-04", bookings[0].Date)
	})
}

func (s *BookingSuite) TestUpdateInvoicedBooking() {
	s.Run("Error case: invoiced bookings cannot be changed or removed", func() {
		t := s.T()
		token := s.login()
		ids := s.seed()

		dbtest.CreateTestBooking(t, s.DB, ids.customerID, ids.dogID, ids.serviceID,
			time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "09:30")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/invoices",
			request.GenerateInvoiceRequest{
				CustomerID:  ids.customerID,
				PeriodStart: "2026-03-01",
				PeriodEnd:   "2026-03-31",
			}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var bookings []response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
		require.Len(t, bookings, 1)
		bookingID := bookings[0].ID

		notes := "reschedule please"
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+bookingID.String(), request.UpdateBookingRequest{Notes: &notes}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "invoice")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+bookingID.String(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "invoice")
	})
}
