package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ListServices returns the recurring services of a property.
func (h *Handler) ListServices(c *gin.Context) {
	propertyID := c.Param("id")

	services, err := h.registry.ServicesFor(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService attaches a recurring service to a property.
func (h *Handler) CreateService(c *gin.Context) {
	var service domain.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	service.PropertyID = c.Param("id")

	if err := h.registry.AddService(c.Request.Context(), &service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

// DeleteService removes a recurring service.
func (h *Handler) DeleteService(c *gin.Context) {
	id := c.Param("id")

	if err := h.registry.DeleteService(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}

	c.Status(http.StatusNoContent)
}
