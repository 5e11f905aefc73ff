package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches Gin to release mode outside of development so
// request logging stays quiet in deployed environments.
func SetGinMode(env string) {
	switch env {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	}
}
