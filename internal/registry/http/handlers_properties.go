package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ListProperties returns all properties, filtered by owner when the
// owner_id query parameter is set.
func (h *Handler) ListProperties(c *gin.Context) {
	ownerID := c.Query("owner_id")

	properties, err := h.registry.Properties(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GetProperty returns a single property by id.
func (h *Handler) GetProperty(c *gin.Context) {
	id := c.Param("id")

	property, err := h.registry.Property(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// CreateProperty records a new property. The client may supply the id.
func (h *Handler) CreateProperty(c *gin.Context) {
	var property domain.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if property.OwnerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerId is required"})
		return
	}

	if err := h.registry.AddProperty(c.Request.Context(), &property); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// UpdateProperty replaces a stored property in place.
func (h *Handler) UpdateProperty(c *gin.Context) {
	var property domain.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	property.ID = c.Param("id")

	if err := h.registry.UpdateProperty(c.Request.Context(), &property); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// DeleteProperty removes a property. Deleting an id that is already gone
// reports 404; stored state is unchanged either way.
func (h *Handler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")

	if err := h.registry.DeleteProperty(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete property"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPropertyImage stores an uploaded image and appends its URL to the
// property's image list.
func (h *Handler) UploadPropertyImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	id := c.Param("id")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	url, err := h.uploader.Upload(c.Request.Context(), file.Filename, contentType, src)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to store image"})
		return
	}

	property, err := h.registry.AddPropertyImage(c.Request.Context(), id, url)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property, "url": url})
}
