package bootstrap

import (
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/propadmin/prop-admin-backend/internal/api/http"
	"github.com/propadmin/prop-admin-backend/internal/api/http/middleware"
	"github.com/propadmin/prop-admin-backend/internal/assets"
	authmw "github.com/propadmin/prop-admin-backend/internal/auth/middleware"

	authhttp "github.com/propadmin/prop-admin-backend/internal/auth/http"
	registryhttp "github.com/propadmin/prop-admin-backend/internal/registry/http"
	"github.com/propadmin/prop-admin-backend/internal/registry/repository"
	"github.com/propadmin/prop-admin-backend/internal/registry/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Store       *redis.Client
	AuthClient  *firebaseauth.Client // nil disables token verification
	Uploader    assets.Uploader      // nil disables image upload
	Logger      *zap.Logger
}

// BuildRouter assembles the full API: health endpoints, session routes, and
// the registry CRUD surface. It also constructs the Registry service so
// every consumer shares the one serialized write path.
func BuildRouter(dep RouterDeps) (*gin.Engine, *service.Registry) {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	registry := service.NewRegistry(
		repository.NewUserRepository(dep.Store),
		repository.NewPropertyRepository(dep.Store),
		repository.NewServiceRepository(dep.Store),
		repository.NewExpenseRepository(dep.Store),
		repository.NewIncomeRepository(dep.Store),
		repository.NewContractRepository(dep.Store),
		dep.Logger,
	)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID(dep.Logger))
	api.Use(middleware.RateLimit(50, 100))

	authHandler := authhttp.New(registry)
	authGroup := api.Group("/auth")
	authHandler.Register(authGroup)

	protected := api.Group("")
	protected.Use(authmw.FirebaseAuth(dep.AuthClient))

	authHandler.RegisterProtected(protected.Group("/auth"))

	registryHandler := registryhttp.New(registry, dep.Uploader)
	registryHandler.Register(protected)

	return r, registry
}
