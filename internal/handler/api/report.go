package api

import (
	"net/http"

	resdto "pawbook/internal/handler/dto/response"
	"pawbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

func (h *ReportHandler) IncomeStatement(c *gin.Context) {
	from, err := queryDate(c, "from")
	if err != nil || from == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing or invalid from date",
		})
		return
	}

	to, err := queryDate(c, "to")
	if err != nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing or invalid to date",
		})
		return
	}

	if to.Before(*from) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Report period end precedes start",
		})
		return
	}

	stmt, err := h.reportQueries.IncomeStatement(c.Request.Context(), *from, *to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIncomeStatement(stmt))
}
