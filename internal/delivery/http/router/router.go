// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cognify/internal/delivery/http/middleware"
	"cognify/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:userId", r.userHandler.GetUser)
		userGroup.PUT("/:userId", r.userHandler.UpdateUser)
		userGroup.DELETE("/:userId", r.userHandler.DeleteUser)
		userGroup.PATCH("/:userId/activate", r.userHandler.ActivateUser)
		userGroup.PATCH("/:userId/deactivate", r.userHandler.DeactivateUser)
	}
}
