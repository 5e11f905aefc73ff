package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// Login resolves an email to a registry user. This is the legacy
// password-less lookup; identity-provider sign-in happens client-side and
// only reaches the API as a verified token.
func (h *Handler) Login(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := h.registry.Login(c.Request.Context(), body.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RegisterUser appends a new user account to the registry.
func (h *Handler) RegisterUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if user.Role == "" {
		user.Role = domain.RoleOwner
	}

	if err := h.registry.Register(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetProfile returns the registry user matching the authenticated identity.
// The identity provider vouches for the email; the registry stays the source
// of the user record itself.
func (h *Handler) GetProfile(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.registry.Login(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
