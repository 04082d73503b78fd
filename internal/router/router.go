// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/citdeveloper/cit/internal/config"
	"github.com/citdeveloper/cit/internal/handler"
	"github.com/citdeveloper/cit/internal/middleware"
)

// RegisterRoutes wires every endpoint of the ticket API onto the provided
// Echo instance. /health stays outside the ticket group so orchestrator
// probes are never blocked by a missing API key or an exhausted rate
// bucket. Echo matches static segments before parameters, so
// /tickets/search is never swallowed by /tickets/:date.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h *handler.TicketHandler, hh *handler.HealthHandler, rdb *redis.Client) {
	// Health probe used by the compose health check and readiness gates.
	e.GET("/health", hh.Health)

	t := e.Group("/tickets")
	t.Use(middleware.APIKeyAuth(cfg.APIKey))
	t.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	t.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	t.GET("", h.ListTickets)
	t.POST("", h.CreateTicket)
	t.GET("/search", h.SearchTickets)
	t.GET("/:date", h.GetTicketsByDate)
	t.PUT("/:ticket_number", h.UpdateTicket)
	t.DELETE("/:ticket_number", h.DeleteTicket)
}
