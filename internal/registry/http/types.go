package http

import (
	"github.com/propadmin/prop-admin-backend/internal/assets"
	"github.com/propadmin/prop-admin-backend/internal/registry/service"
)

type Handler struct {
	registry *service.Registry
	uploader assets.Uploader
}

// New builds the registry handler. uploader may be nil; image upload then
// responds 503.
func New(registry *service.Registry, uploader assets.Uploader) *Handler {
	return &Handler{
		registry: registry,
		uploader: uploader,
	}
}
