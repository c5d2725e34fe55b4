package api

import (
	"errors"
	"net/http"

	reqdto "pawbook/internal/handler/dto/request"
	resdto "pawbook/internal/handler/dto/response"
	"pawbook/internal/handler/middleware"
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	expenseCommands commands.ExpenseCommands
	expenseQueries  queries.ExpenseQueries
}

func NewExpenseHandler(expenseCommands commands.ExpenseCommands, expenseQueries queries.ExpenseQueries) *ExpenseHandler {
	return &ExpenseHandler{
		expenseCommands: expenseCommands,
		expenseQueries:  expenseQueries,
	}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	expense, err := h.expenseCommands.CreateExpense(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrExpenseCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense category not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromExpenseView(expense))
}

func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid expense ID format",
		})
		return
	}

	expense, err := h.expenseQueries.GetExpense(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenseView(expense))
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	categoryID, err := queryUUID(c, "categoryId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
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

	expenses, err := h.expenseQueries.ListExpenses(c.Request.Context(), queries.ExpenseFilters{
		CategoryID: categoryID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenseViews(expenses))
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
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
			"error": "Invalid expense ID format",
		})
		return
	}

	var req reqdto.UpdateExpenseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	expense, err := h.expenseCommands.UpdateExpense(c.Request.Context(), id, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense not found",
			})
		case errors.Is(err, commands.ErrExpenseCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense category not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenseView(expense))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid expense ID format",
		})
		return
	}

	if err := h.expenseCommands.DeleteExpense(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense not found",
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

func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	categories, err := h.expenseQueries.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenseCategoryViews(categories))
}

func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.expenseCommands.CreateCategory(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateExpenseCategory):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Expense category already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ExpenseHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	if err := h.expenseCommands.DeleteCategory(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrExpenseCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense category not found",
			})
		case errors.Is(err, commands.ErrExpenseCategoryInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Expense category still has expenses",
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
