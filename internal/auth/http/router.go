package http

import "github.com/gin-gonic/gin"

// Register mounts the public session routes; RegisterProtected mounts the
// routes that require a verified identity.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/register", h.RegisterUser)
}

func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
}
