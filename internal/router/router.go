package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/virtual-tryon-platform/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/virtual-tryon-platform/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/iliyamo/virtual-tryon-platform/internal/model"      // role constants for route gating
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The health endpoint is used by load balancers and monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session: login issues
	// the initial token pair, the refresh endpoints exchange tokens,
	// and logout clears the session and revokes refresh tokens.
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	// Rotates the refresh token alongside the new access token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a refresh token in the body or a bearer token in
	// the header; either way the session store is cleared immediately.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  All handlers on this
	// group run the JWTAuth middleware before being invoked, followed
	// by a role check accepting every known role; narrower role
	// restrictions are applied where the individual routes register.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser))
	// The current session snapshot and partial profile updates.
	auth.GET("/me", a.Me)
	auth.PATCH("/me", a.UpdateMe)
}

// RegisterCatalog registers unauthenticated catalog browsing endpoints.
// The optional cache middleware fronts these routes since the catalog
// changes rarely; pass nil to skip caching.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{}
	if cache != nil {
		mws = append(mws, cache)
	}
	e.GET("/v1/products", h.ListProducts, mws...)
	e.GET("/v1/products/:id", h.GetProduct, mws...)
}

// RegisterTryOn registers the try-on lifecycle endpoints under the
// protected /v1 prefix.
func RegisterTryOn(e *echo.Echo, h *handler.TryOnHandler, jwtSecret string) {
	g := e.Group("/v1/tryon")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser))
	g.GET("", h.Get)
	g.POST("/select", h.Select)
	g.POST("/start", h.Start)
	g.POST("/end", h.End)
	g.POST("/capture", h.Capture)
	g.POST("/interactions", h.Interact)
	g.GET("/recommendations", h.Recommendations)
}

// RegisterAdmin registers the management endpoints restricted to admin
// and manager roles: the tenant's user directory and the analytics
// overview feeding the dashboard charts.
func RegisterAdmin(e *echo.Echo, d *handler.DirectoryHandler, a *handler.AnalyticsHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	g.GET("/users", d.ListUsers)
	// Creating directory users is admin-only.
	g.POST("/users", d.CreateUser, middleware.RequireRole(model.RoleAdmin))
	g.GET("/analytics/overview", a.Overview)
}
