package api

import (
	"errors"
	"net/http"

	reqdto "pawbook/internal/handler/dto/request"
	resdto "pawbook/internal/handler/dto/response"
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VetHandler struct {
	vetCommands commands.VetCommands
	vetQueries  queries.VetQueries
}

func NewVetHandler(vetCommands commands.VetCommands, vetQueries queries.VetQueries) *VetHandler {
	return &VetHandler{
		vetCommands: vetCommands,
		vetQueries:  vetQueries,
	}
}

func (h *VetHandler) CreateVet(c *gin.Context) {
	var req reqdto.CreateVetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vet, err := h.vetCommands.CreateVet(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVetView(vet))
}

func (h *VetHandler) GetVet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vet ID format",
		})
		return
	}

	vet, err := h.vetQueries.GetVet(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vet not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVetView(vet))
}

func (h *VetHandler) ListVets(c *gin.Context) {
	vets, err := h.vetQueries.ListVets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVetViews(vets))
}

func (h *VetHandler) UpdateVet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vet ID format",
		})
		return
	}

	var req reqdto.UpdateVetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vet, err := h.vetCommands.UpdateVet(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vet not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVetView(vet))
}

func (h *VetHandler) DeleteVet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vet ID format",
		})
		return
	}

	if err := h.vetCommands.DeleteVet(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrVetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vet not found",
			})
		case errors.Is(err, commands.ErrVetInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Vet is still assigned to dogs",
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
