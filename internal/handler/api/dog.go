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

type DogHandler struct {
	dogCommands commands.DogCommands
	dogQueries  queries.DogQueries
}

func NewDogHandler(dogCommands commands.DogCommands, dogQueries queries.DogQueries) *DogHandler {
	return &DogHandler{
		dogCommands: dogCommands,
		dogQueries:  dogQueries,
	}
}

func (h *DogHandler) CreateDog(c *gin.Context) {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	dog, err := h.dogCommands.CreateDog(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDogOwner):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDogView(dog))
}

func (h *DogHandler) GetDog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dog ID format",
		})
		return
	}

	dog, err := h.dogQueries.GetDog(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDogNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Dog not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDogView(dog))
}

func (h *DogHandler) ListDogs(c *gin.Context) {
	customerID, err := queryUUID(c, "customerId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	active, err := queryBool(c, "active")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid active filter",
		})
		return
	}

	dogs, err := h.dogQueries.ListDogs(c.Request.Context(), queries.DogFilters{
		CustomerID: customerID,
		Active:     active,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDogViews(dogs))
}

func (h *DogHandler) UpdateDog(c *gin.Context) {
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
			"error": "Invalid dog ID format",
		})
		return
	}

	var req reqdto.UpdateDogRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	dog, err := h.dogCommands.UpdateDog(c.Request.Context(), id, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDogNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Dog not found",
			})
		case errors.Is(err, commands.ErrDogOwner):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDogView(dog))
}

func (h *DogHandler) DeleteDog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dog ID format",
		})
		return
	}

	if err := h.dogCommands.DeleteDog(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrDogNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Dog not found",
			})
		case errors.Is(err, commands.ErrDogInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Dog still has bookings",
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
