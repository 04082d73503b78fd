package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/citdeveloper/cit/internal/repository"
)

// SearchTickets handles GET /tickets/search. Filters combine with AND:
// exact ticket_number, case-insensitive substring pax_name, exact
// agent_issue_pcc. All filters are optional; none means "everything",
// same as the plain listing.
func (h *TicketHandler) SearchTickets(c echo.Context) error {
	page, pageSize := paginationParams(c)
	q := repository.SearchQuery{
		TicketNumber:  strings.TrimSpace(c.QueryParam("ticket_number")),
		PaxName:       strings.TrimSpace(c.QueryParam("pax_name")),
		AgentIssuePCC: strings.TrimSpace(c.QueryParam("agent_issue_pcc")),
		Page:          page,
		PageSize:      pageSize,
	}
	tickets, err := h.TicketRepo.Search(c.Request().Context(), q)
	if err != nil {
		c.Logger().Errorf("search tickets: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, tickets)
}
