package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "pawbook/internal/handler/dto/request"
	resdto "pawbook/internal/handler/dto/response"
	"pawbook/internal/handler/middleware"
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookings, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingRelation):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer, dog or service not found",
			})
		case errors.Is(err, commands.ErrBookingBadSchedule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking schedule",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingViews(bookings))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	booking, err := h.bookingQueries.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(booking))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	customerID, err := queryUUID(c, "customerId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	assignedTo, err := queryUUID(c, "assignedTo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid assignee ID format",
		})
		return
	}

	dateFrom, err := queryDate(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from date",
		})
		return
	}

	dateTo, err := queryDate(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to date",
		})
		return
	}

	uninvoiced := false
	if raw := c.Query("uninvoiced"); raw != "" {
		uninvoiced, err = strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid uninvoiced filter",
			})
			return
		}
	}

	bookings, err := h.bookingQueries.ListBookings(c.Request.Context(), queries.BookingFilters{
		CustomerID: customerID,
		AssignedTo: assignedTo,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Uninvoiced: uninvoiced,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(bookings))
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	booking, err := h.bookingCommands.UpdateBooking(c.Request.Context(), id, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingInvoiced):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already belongs to an invoice",
			})
		case errors.Is(err, commands.ErrBookingRelation):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer, dog or service not found",
			})
		case errors.Is(err, commands.ErrBookingBadSchedule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking schedule",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(booking))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingInvoiced):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already belongs to an invoice",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
