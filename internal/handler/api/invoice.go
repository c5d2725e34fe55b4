package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "pawbook/internal/handler/dto/request"
	resdto "pawbook/internal/handler/dto/response"
	"pawbook/internal/handler/middleware"
	"pawbook/internal/mailer"
	"pawbook/internal/pdf"
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	invoiceQueries  queries.InvoiceQueries
	customerQueries queries.CustomerQueries
	renderer        *pdf.Renderer
	mail            *mailer.Mailer
}

func NewInvoiceHandler(
	invoiceCommands commands.InvoiceCommands,
	invoiceQueries queries.InvoiceQueries,
	customerQueries queries.CustomerQueries,
	renderer *pdf.Renderer,
	mail *mailer.Mailer,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		invoiceQueries:  invoiceQueries,
		customerQueries: customerQueries,
		renderer:        renderer,
		mail:            mail,
	}
}

func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inv, err := h.invoiceCommands.GenerateInvoice(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceCustomer):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrInvoicePeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid invoice period",
			})
		case errors.Is(err, commands.ErrDuplicateInvoice):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invoice already exists for this customer and period",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceView(inv))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return
	}

	inv, err := h.invoiceQueries.GetInvoice(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(inv))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	customerID, err := queryUUID(c, "customerId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	paid, err := queryBool(c, "paid")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid paid filter",
		})
		return
	}

	invoices, err := h.invoiceQueries.ListInvoices(c.Request.Context(), queries.InvoiceFilters{
		CustomerID: customerID,
		Paid:       paid,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceListItems(invoices))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
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
			"error": "Invalid invoice ID format",
		})
		return
	}

	var req reqdto.UpdateInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inv, err := h.invoiceCommands.UpdateInvoice(c.Request.Context(), id, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(inv))
}

func (h *InvoiceHandler) RegenerateInvoice(c *gin.Context) {
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
			"error": "Invalid invoice ID format",
		})
		return
	}

	inv, err := h.invoiceCommands.RegenerateInvoice(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(inv))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return
	}

	if err := h.invoiceCommands.DeleteInvoice(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
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

func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return
	}

	inv, err := h.invoiceQueries.GetInvoice(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	document, err := h.renderer.Render(inv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render invoice",
		})
		return
	}

	filename := h.renderer.Filename(inv)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", document)
}

func (h *InvoiceHandler) EmailInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return
	}

	inv, err := h.invoiceQueries.GetInvoice(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	customer, err := h.customerQueries.GetCustomer(c.Request.Context(), inv.CustomerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if customer.Email == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Customer has no email address",
		})
		return
	}

	document, err := h.renderer.Render(inv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render invoice",
		})
		return
	}

	if err := h.mail.SendInvoice(c.Request.Context(), *customer.Email, inv, h.renderer.Filename(inv), document); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to send invoice email",
		})
		return
	}

	c.Status(http.StatusAccepted)
}
