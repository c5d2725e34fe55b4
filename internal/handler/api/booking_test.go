//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pawbook/internal/handler/api"
	reqdto "pawbook/internal/handler/dto/request"
	resdto "pawbook/internal/handler/dto/response"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
	})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", s.handler.UpdateBooking)
	s.router.DELETE("/bookings/:id", s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleBookingView(date time.Time) *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Jane Smith",
		DogID:        uuid.New(),
		DogName:      "Biscuit",
		ServiceID:    uuid.New(),
		ServiceName:  "Group Walk",
		Date:         date,
		TimeOfDay:    "09:30",
		PricePence:   1500,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	first := sampleBookingView(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC))
	reqBody := reqdto.CreateBookingRequest{
		CustomerID: first.CustomerID,
		DogID:      first.DogID,
		ServiceID:  first.ServiceID,
		Date:       "2026-05-04",
		TimeOfDay:  "09:30",
	}

	s.Run("success: a single booking returns a one-element series", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, gomock.Any()).
			Return([]*queries.BookingView{first}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response, 1)
		s.Equal("2026-05-04", response[0].Date)
		s.Equal("15.00", response[0].Price)
	})

	s.Run("success: weekly repeats return every booking in the series", func() {
		repeated := reqBody
		repeated.RepeatWeeks = 2
		series := []*queries.BookingView{
			first,
			sampleBookingView(time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)),
			sampleBookingView(time.Date(2026, 5, 18, 0, 0, 0, 0, time.UTC)),
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), repeated, gomock.Any()).
			Return(series, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, repeated, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response, 3)
		s.Equal("2026-05-18", response[2].Date)
	})

	s.Run("error: 404 when a related record is missing", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, commands.ErrBookingRelation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer, dog or service not found")
	})

	s.Run("error: 400 for a malformed body", func() {
		bad := reqBody
		bad.Date = "04/05/2026"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: passes query filters through", func() {
		customerID := uuid.New()
		from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), queries.BookingFilters{
			CustomerID: &customerID,
			DateFrom:   &from,
			DateTo:     &to,
			Uninvoiced: true,
		}).Return([]*queries.BookingView{}, nil).Times(1)

		url := "/bookings?customerId=" + customerID.String() + "&from=2026-05-01&to=2026-05-31&uninvoiced=true"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for a malformed customer filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?customerId=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer ID format")
	})

	s.Run("error: 400 for a malformed date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=May-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from date")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	booking := sampleBookingView(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC))
	notes := "bring treats"
	reqBody := reqdto.UpdateBookingRequest{Notes: &notes}

	s.Run("success: returns the updated booking", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), booking.ID, reqBody, gomock.Any()).
			Return(booking, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+booking.ID.String(), reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(booking.ID, response.ID)
	})

	s.Run("error: 409 when the booking is already invoiced", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), booking.ID, reqBody, gomock.Any()).
			Return(nil, commands.ErrBookingInvoiced).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+booking.ID.String(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "belongs to an invoice")
	})

	s.Run("error: 404 for an unknown booking", func() {
		unknown := uuid.New()
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), unknown, reqBody, gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+unknown.String(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the booking is already invoiced", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).
			Return(commands.ErrBookingInvoiced).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "belongs to an invoice")
	})
}
