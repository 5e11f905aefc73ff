package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ListExpenses returns the expenses of a property.
func (h *Handler) ListExpenses(c *gin.Context) {
	propertyID := c.Param("id")

	expenses, err := h.registry.ExpensesFor(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense records an expense against a property.
func (h *Handler) CreateExpense(c *gin.Context) {
	var expense domain.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	expense.PropertyID = c.Param("id")

	if err := h.registry.AddExpense(c.Request.Context(), &expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}
