package http

import "github.com/propadmin/prop-admin-backend/internal/registry/service"

type Handler struct {
	registry *service.Registry
}

func New(registry *service.Registry) *Handler {
	return &Handler{
		registry: registry,
	}
}
