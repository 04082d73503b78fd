package handler // handler contains the HTTP handlers for the ticket API

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
)

// HealthHandler answers the /health probe used by the compose health check
// and by orchestration readiness gates.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler constructs a HealthHandler over the given pool.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health verifies database connectivity with a trivial query. A healthy
// service answers {"status":"ok"}; any database failure yields a 500 so
// the orchestrator marks the container unhealthy.
func (h *HealthHandler) Health(c echo.Context) error {
	var one int
	if err := h.db.GetContext(c.Request().Context(), &one, "SELECT 1"); err != nil {
		c.Logger().Errorf("health check failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Service Unavailable."})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
