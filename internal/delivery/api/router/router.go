// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"horus/internal/delivery/api/middleware"
	"horus/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	e.POST("/auth/login", r.authHandler.Login)

	// Registration is public.
	e.POST("/users", r.userHandler.CreateUser)

	e.GET("/profile", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
}
