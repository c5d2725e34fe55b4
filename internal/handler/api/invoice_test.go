//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pawbook/internal/handler/api"
	reqdto "pawbook/internal/handler/dto/request"
	resdto "pawbook/internal/handler/dto/response"
	"pawbook/internal/mailer"
	"pawbook/internal/pdf"
	"pawbook/internal/pkg/config"
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"
	"pawbook/tests/common/httptest"
	commandsmock "pawbook/tests/mock/commands"
	queriesmock "pawbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockInvoiceCommands
	mockQueries   *queriesmock.MockInvoiceQueries
	mockCustomers *queriesmock.MockCustomerQueries
	handler       *api.InvoiceHandler
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
	})

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInvoiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	s.mockCustomers = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.handler = api.NewInvoiceHandler(s.mockCommands, s.mockQueries, s.mockCustomers,
		pdf.NewRenderer(cfg.Invoice), mailer.New(cfg.Mail))

	s.router.POST("/invoices", s.handler.GenerateInvoice)
	s.router.GET("/invoices/:id", s.handler.GetInvoice)
	s.router.GET("/invoices/:id/download", s.handler.DownloadInvoice)
	s.router.POST("/invoices/:id/email", s.handler.EmailInvoice)
	s.router.POST("/invoices/:id/regenerate", s.handler.RegenerateInvoice)
	s.router.DELETE("/invoices/:id", s.handler.DeleteInvoice)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func sampleInvoiceView() *queries.InvoiceView {
	return &queries.InvoiceView{
		ID:            uuid.New(),
		Reference:     "W4LKIES-1A2B3C4D",
		CustomerID:    uuid.New(),
		CustomerName:  "Jane Smith",
		PeriodStart:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		DateIssued:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DateDue:       time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		SubtotalPence: 7500,
		DiscountPence: 500,
		TotalPence:    7000,
	}
}

func (s *InvoiceHandlerTestSuite) TestGenerateInvoice() {
	url := "/invoices"
	inv := sampleInvoiceView()
	reqBody := reqdto.GenerateInvoiceRequest{
		CustomerID:    inv.CustomerID,
		PeriodStart:   "2026-03-01",
		PeriodEnd:     "2026-03-31",
		DiscountPence: 500,
	}

	s.Run("success: returns 201 Created with formatted totals", func() {
		s.mockCommands.EXPECT().GenerateInvoice(gomock.Any(), reqBody, gomock.Any()).
			Return(inv, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(inv.Reference, response.Reference)
		s.Equal(int64(7000), response.TotalPence)
		s.Equal("70.00", response.Total)
		s.Equal("2026-03-01", response.PeriodStart)
	})

	s.Run("error: 404 when the customer does not exist", func() {
		s.mockCommands.EXPECT().GenerateInvoice(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, commands.ErrInvoiceCustomer).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: 409 when the invoice already exists", func() {
		s.mockCommands.EXPECT().GenerateInvoice(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, commands.ErrDuplicateInvoice).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 for a reversed period", func() {
		s.mockCommands.EXPECT().GenerateInvoice(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvoicePeriod).Times(1)

		bad := reqBody
		bad.PeriodStart = "2026-03-31"
		bad.PeriodEnd = "2026-03-01"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid invoice period")
	})
}

func (s *InvoiceHandlerTestSuite) TestDownloadInvoice() {
	inv := sampleInvoiceView()

	s.Run("success: streams a PDF attachment named after customer and period", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices/"+inv.ID.String()+"/download", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/pdf", rec.Header().Get("Content-Type"))
		s.Contains(rec.Header().Get("Content-Disposition"), `"Jane Smith 2026 April.pdf"`)
		s.True(len(rec.Body.Bytes()) > 4)
		s.Equal("%PDF", string(rec.Body.Bytes()[:4]))
	})

	s.Run("error: 404 for an unknown invoice", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), unknown).
			Return(nil, queries.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices/"+unknown.String()+"/download", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices/not-a-uuid/download", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid invoice ID format")
	})
}

func (s *InvoiceHandlerTestSuite) TestEmailInvoice() {
	inv := sampleInvoiceView()

	s.Run("success: 202 Accepted when the customer has an email", func() {
		email := "jane@example.com"
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil).Times(1)
		s.mockCustomers.EXPECT().GetCustomer(gomock.Any(), inv.CustomerID).
			Return(&queries.CustomerView{ID: inv.CustomerID, Email: &email}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/invoices/"+inv.ID.String()+"/email", nil, "")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("error: 422 when the customer has no email address", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil).Times(1)
		s.mockCustomers.EXPECT().GetCustomer(gomock.Any(), inv.CustomerID).
			Return(&queries.CustomerView{ID: inv.CustomerID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/invoices/"+inv.ID.String()+"/email", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "no email address")
	})
}

func (s *InvoiceHandlerTestSuite) TestRegenerateInvoice() {
	inv := sampleInvoiceView()

	s.Run("success: returns the refreshed invoice", func() {
		s.mockCommands.EXPECT().RegenerateInvoice(gomock.Any(), inv.ID, gomock.Any()).
			Return(inv, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/invoices/"+inv.ID.String()+"/regenerate", nil, "")

		var response resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(inv.Reference, response.Reference)
	})

	s.Run("error: 404 for an unknown invoice", func() {
		unknown := uuid.New()
		s.mockCommands.EXPECT().RegenerateInvoice(gomock.Any(), unknown, gomock.Any()).
			Return(nil, commands.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/invoices/"+unknown.String()+"/regenerate", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})
}

func (s *InvoiceHandlerTestSuite) TestDeleteInvoice() {
	id := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/invoices/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown invoice", func() {
		s.mockCommands.EXPECT().DeleteInvoice(gomock.Any(), id).
			Return(commands.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/invoices/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})
}
