package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ListIncomes returns the rent payments recorded against a property.
func (h *Handler) ListIncomes(c *gin.Context) {
	propertyID := c.Param("id")

	incomes, err := h.registry.IncomesFor(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list incomes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomes": incomes})
}

// CreateIncome records a rent payment against a property.
func (h *Handler) CreateIncome(c *gin.Context) {
	var income domain.Income
	if err := c.ShouldBindJSON(&income); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	income.PropertyID = c.Param("id")
	if income.Status == "" {
		income.Status = domain.IncomePending
	}

	if err := h.registry.AddIncome(c.Request.Context(), &income); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create income"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}
