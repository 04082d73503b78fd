package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"

	"github.com/citdeveloper/cit/internal/model"
	"github.com/citdeveloper/cit/internal/queue"
	"github.com/citdeveloper/cit/internal/repository"
)

// PublishFunc publishes a ticket lifecycle event. It is a field rather
// than a hard dependency so tests and broker-less deployments can leave it
// nil, which disables publishing.
type PublishFunc func(ctx context.Context, event any) error

// TicketHandler bundles the ticket repository and the event publisher.
type TicketHandler struct {
	TicketRepo *repository.TicketRepo
	Publish    PublishFunc
}

// NewTicketHandler constructs a TicketHandler and panics if the repository
// is nil. The publisher may be nil.
func NewTicketHandler(repo *repository.TicketRepo, publish PublishFunc) *TicketHandler {
	if repo == nil {
		panic("nil repository passed to NewTicketHandler")
	}
	return &TicketHandler{TicketRepo: repo, Publish: publish}
}

// ListTickets handles GET /tickets and returns all stored tickets. The
// optional page/page_size parameters page through large tables; when
// absent the full table is returned.
func (h *TicketHandler) ListTickets(c echo.Context) error {
	page, pageSize := paginationParams(c)
	tickets, err := h.TicketRepo.ListAll(c.Request().Context(), page, pageSize)
	if err != nil {
		c.Logger().Errorf("list tickets: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, tickets)
}

// CreateTicket handles POST /tickets. ticket_code and ticket_number are
// required; everything else is optional and stored as given. The response
// is the row as the database stored it, including id and timestamps.
func (h *TicketHandler) CreateTicket(c echo.Context) error {
	var t model.Ticket
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t.TicketCode = strings.TrimSpace(t.TicketCode)
	t.TicketNumber = strings.TrimSpace(t.TicketNumber)
	if t.TicketCode == "" || t.TicketNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_code and ticket_number are required"})
	}
	if err := h.TicketRepo.Create(c.Request().Context(), &t); err != nil {
		c.Logger().Errorf("create ticket: %v", err)
		status, msg := dbErrorResponse(err)
		return c.JSON(status, echo.Map{"error": msg})
	}
	h.publishCreated(c, &t)
	return c.JSON(http.StatusCreated, t)
}

// UpdateTicket handles PUT /tickets/:ticket_number. The body carries the
// full set of writable fields; every row with the number is rewritten and
// updated_at is bumped (the schema has no trigger to do it). Responds with
// the updated rows.
func (h *TicketHandler) UpdateTicket(c echo.Context) error {
	number := strings.TrimSpace(c.Param("ticket_number"))
	if number == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_number is required"})
	}
	var t model.Ticket
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t.TicketNumber = number // path wins over any number in the body
	t.TicketCode = strings.TrimSpace(t.TicketCode)
	if t.TicketCode == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_code is required"})
	}
	if err := h.TicketRepo.UpdateByNumber(c.Request().Context(), &t); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		c.Logger().Errorf("update ticket %s: %v", number, err)
		status, msg := dbErrorResponse(err)
		return c.JSON(status, echo.Map{"error": msg})
	}
	updated, err := h.TicketRepo.ListByNumber(c.Request().Context(), number)
	if err != nil {
		c.Logger().Errorf("reload ticket %s: %v", number, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// GetTicketsByDate handles GET /tickets/:date and returns all tickets
// issued on that day. The path segment must be YYYY-MM-DD.
func (h *TicketHandler) GetTicketsByDate(c echo.Context) error {
	raw := c.Param("date")
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}
	tickets, err := h.TicketRepo.ListByIssueDate(c.Request().Context(), model.Date{Time: parsed})
	if err != nil {
		c.Logger().Errorf("tickets by date %s: %v", raw, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, tickets)
}

// DeleteTicket handles DELETE /tickets/:ticket_number. All rows carrying
// the number are removed; a miss answers 404.
func (h *TicketHandler) DeleteTicket(c echo.Context) error {
	number := strings.TrimSpace(c.Param("ticket_number"))
	deleted, err := h.TicketRepo.DeleteByNumber(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		c.Logger().Errorf("delete ticket %s: %v", number, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	h.publishDeleted(c, number, deleted)
	return c.JSON(http.StatusOK, echo.Map{"message": "ticket deleted", "deleted": deleted})
}

// publishCreated emits a best-effort ticket.created event. Publish errors
// are already logged by the publisher and never fail the request.
func (h *TicketHandler) publishCreated(c echo.Context, t *model.Ticket) {
	if h.Publish == nil {
		return
	}
	ev := queue.TicketCreatedEvent{
		TicketCode:   t.TicketCode,
		TicketNumber: t.TicketNumber,
		PaxName:      t.PaxName,
		Currency:     t.Currency,
		TotalFare:    t.TotalFare,
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.IssueDate != nil {
		ev.IssueDate = t.IssueDate.Format("2006-01-02")
	}
	_ = h.Publish(c.Request().Context(), ev)
}

// publishDeleted emits a best-effort ticket.deleted event.
func (h *TicketHandler) publishDeleted(c echo.Context, number string, deleted int64) {
	if h.Publish == nil {
		return
	}
	_ = h.Publish(c.Request().Context(), queue.TicketDeletedEvent{
		TicketNumber: number,
		Deleted:      deleted,
		DeletedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

// paginationParams reads the optional page/page_size query parameters.
// page_size is clamped to 100; a missing or zero page_size means unpaged.
func paginationParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// dbErrorResponse maps a database error to an HTTP status and message.
// Constraint and data errors are the client's fault; anything else is a
// server-side failure.
func dbErrorResponse(err error) (int, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505": // unique_violation
			return http.StatusConflict, "duplicate ticket"
		case pqErr.Code.Class() == "23": // other integrity violations
			return http.StatusBadRequest, "invalid data provided"
		case pqErr.Code.Class() == "22": // data exceptions (bad numeric, overlong string)
			return http.StatusBadRequest, "invalid data provided"
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
