// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/royalvilla/villa-catalog-api/internal/config"
	"github.com/royalvilla/villa-catalog-api/internal/handler"
	"github.com/royalvilla/villa-catalog-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check for load balancers and
// monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints under /api/auth.
// Register and login are the only unauthenticated API operations; they
// issue the bearer token the protected routes require.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterCatalog registers the villa and villa-amenities resources
// under /api. Both groups require a valid bearer token. When the
// configuration names required roles, the role middleware is applied on
// top; with no roles configured authentication alone is enforced (role
// restriction is a configuration point, not a hard requirement). GET
// responses are served through the Redis cache middleware when a client
// is available.
func RegisterCatalog(e *echo.Echo, cfg config.Config, v *handler.VillaHandler, a *handler.AmenityHandler, rdb *redis.Client) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	villas := e.Group("/api/villa")
	villas.Use(middleware.JWTAuth(cfg.JWTSecret))
	if len(cfg.RequiredRoles) > 0 {
		villas.Use(middleware.RequireRole(cfg.RequiredRoles...))
	}
	villas.GET("", v.List, cache)
	villas.GET("/:id", v.GetByID, cache)
	villas.POST("", v.Create)
	villas.PUT("/:id", v.Update)
	villas.DELETE("/:id", v.Delete)

	amenities := e.Group("/api/villa-amenities")
	amenities.Use(middleware.JWTAuth(cfg.JWTSecret))
	if len(cfg.RequiredRoles) > 0 {
		amenities.Use(middleware.RequireRole(cfg.RequiredRoles...))
	}
	amenities.GET("", a.List, cache)
	amenities.GET("/:id", a.GetByID, cache)
	amenities.POST("", a.Create)
	amenities.PUT("/:id", a.Update)
	amenities.DELETE("/:id", a.Delete)
}
