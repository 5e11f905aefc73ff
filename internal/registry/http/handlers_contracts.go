package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ListContracts returns the contracts of a property, active and inactive.
func (h *Handler) ListContracts(c *gin.Context) {
	propertyID := c.Param("id")

	contracts, err := h.registry.ContractsFor(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contracts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

// CreateContract records a new tenant contract. Any previously active
// contract of the property is deactivated and the property's tenant is
// updated to the new contract's tenant.
func (h *Handler) CreateContract(c *gin.Context) {
	var contract domain.TenantContract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	contract.PropertyID = c.Param("id")
	if contract.TenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenantId is required"})
		return
	}

	if err := h.registry.AddContract(c.Request.Context(), &contract); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create contract"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contract": contract})
}

// UpdateContract replaces a stored contract in place.
func (h *Handler) UpdateContract(c *gin.Context) {
	var contract domain.TenantContract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	contract.ID = c.Param("id")

	if err := h.registry.UpdateContract(c.Request.Context(), &contract); err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contract"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": contract})
}
