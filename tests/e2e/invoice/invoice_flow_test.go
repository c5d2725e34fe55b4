//go:build e2e

package invoice_test

import (
	"context"
	"encoding/json"
	"fmt"
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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const invoicesURL = "/api/invoices"

type InvoiceSuite struct {
	e2e.SharedSuite
}

func (s *InvoiceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestInvoiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InvoiceSuite))
}

func (s *InvoiceSuite) login() string {
	t := s.T()
	sessions := helper.NewSessionTestHelper(s.DB)
	return sessions.CreateAndLogin(t, s.Router, "billing@example.com", string(user.RoleAdmin))
}

// seedMonth creates a customer with a dog and puts three walks in March 2026.
func (s *InvoiceSuite) seedMonth() (customerID uuid.UUID) {
	t := s.T()
	customerID = dbtest.CreateTestCustomer(t, s.DB, "Jane", "Smith")
	dogID := dbtest.CreateTestDog(t, s.DB, customerID, "Biscuit")
	serviceID := dbtest.CreateTestService(t, s.DB, "Group Walk", 1500)

	for _, day := range []int{2, 9, 16} {
		dbtest.CreateTestBooking(t, s.DB, customerID, dogID, serviceID,
			time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC), "09:30")
	}
	return customerID
}

func generateRequest(customerID uuid.UUID, discount int64) request.GenerateInvoiceRequest {
	return request.GenerateInvoiceRequest{
		CustomerID:    customerID,
		PeriodStart:   "2026-03-01",
		PeriodEnd:     "2026-03-31",
		DiscountPence: discount,
	}
}

func (s *InvoiceSuite) TestGenerateInvoice() {
	s.Run("Normal case: invoice collects the month's bookings", func() {
		t := s.T()
		token := s.login()
		customerID := s.seedMonth()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 500), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		require.Regexp(t, `^W4LKIES-[0-9A-F]{8}$`, created.Reference)
		require.Equal(t, int64(4500), created.SubtotalPence)
		require.Equal(t, int64(500), created.DiscountPence)
		require.Equal(t, int64(4000), created.TotalPence)
		require.Len(t, created.Lines, 3)

		issued, err := time.Parse("2006-01-02", created.DateIssued)
		require.NoError(t, err)
		due, err := time.Parse("2006-01-02", created.DateDue)
		require.NoError(t, err)
		require.Equal(t, issued.AddDate(0, 0, 7), due)

		// Fetching the invoice back returns exactly what creation returned.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, invoicesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var fetched response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		if diff := cmp.Diff(created, fetched, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("fetched invoice differs from created invoice (-created +fetched):\n%s", diff)
		}
	})

	s.Run("Normal case: a period without bookings yields a zero invoice", func() {
		t := s.T()
		token := s.login()
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Quiet", "Customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		require.Equal(t, int64(0), created.SubtotalPence)
		require.Equal(t, int64(0), created.TotalPence)
		require.Empty(t, created.Lines)
	})

	s.Run("Error case: generating twice for the same period conflicts", func() {
		t := s.T()
		token := s.login()
		customerID := s.seedMonth()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Error case: unknown customer", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(uuid.New(), 0), token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Customer not found")
	})

	s.Run("Error case: unauthenticated", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(uuid.New(), 0), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *InvoiceSuite) TestRegenerateInvoice() {
	s.Run("Normal case: regeneration picks up new bookings", func() {
		t := s.T()
		token := s.login()
		customerID := s.seedMonth()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		require.Equal(t, int64(4500), created.TotalPence)

		dogID := dbtest.CreateTestDog(t, s.DB, customerID, "Pepper")
		serviceID := dbtest.CreateTestService(t, s.DB, "Solo Walk", 2000)
		dbtest.CreateTestBooking(t, s.DB, customerID, dogID, serviceID,
			time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC), "14:00")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			invoicesURL+"/"+created.ID.String()+"/regenerate", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var refreshed response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
		require.Equal(t, created.Reference, refreshed.Reference)
		require.Equal(t, int64(6500), refreshed.TotalPence)
		require.Len(t, refreshed.Lines, 4)
	})

	s.Run("Normal case: regeneration reflects a service price edit", func() {
		t := s.T()
		token := s.login()
		customerID := s.seedMonth()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		require.Equal(t, int64(4500), created.TotalPence)

		_, err := s.DB.Exec(context.Background(),
			`UPDATE services SET price_pence = 2000 WHERE name = 'Group Walk'`)
		require.NoError(t, err)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			invoicesURL+"/"+created.ID.String()+"/regenerate", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var refreshed response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
		require.Equal(t, int64(6000), refreshed.SubtotalPence)
		for _, line := range refreshed.Lines {
			require.Equal(t, int64(2000), line.PricePence)
		}
	})
}

func (s *InvoiceSuite) TestDownloadInvoice() {
	s.Run("Normal case: downloads a PDF named after customer and issue date", func() {
		t := s.T()
		token := s.login()
		customerID := s.seedMonth()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		issued, err := time.Parse("2006-01-02", created.DateIssued)
		require.NoError(t, err)
		wantName := fmt.Sprintf(`"Jane Smith %d %s.pdf"`, issued.Year(), issued.Month())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			invoicesURL+"/"+created.ID.String()+"/download", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		require.Contains(t, w.Header().Get("Content-Disposition"), wantName)
		require.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
	})
}

func (s *InvoiceSuite) TestDeleteInvoice() {
	s.Run("Normal case: deletion releases the bookings", func() {
		t := s.T()
		token := s.login()
		customerID := s.seedMonth()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			invoicesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		// The same period can be invoiced again once the invoice is gone.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			generateRequest(customerID, 0), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}
