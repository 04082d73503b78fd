// Package repository contains data access logic for tickets. The tickets
// table is flat and append-heavy: ticket_number is indexed but not unique,
// so number-keyed operations work on row sets, not single rows.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/citdeveloper/cit/internal/model"
)

// insertColumns lists every client-writable column, in table order. id,
// created_at and updated_at are owned by the database.
const insertColumns = `ticket_code, ticket_number, type, document_status_code, owner_pcc, owner_agent,
		agent_issue_pcc, agent_issue_name, class_, pax_name, itinerary, ticket_exchange_info,
		indicator, group_name, issue_date, currency, fare, net_fare, taxes, total_fare, comm,
		cancellation_fee, payable, amount_used, booking_date, booking_signon, pnr_code, tour_code,
		claim_amount, date_of_payment, form_of_payment, place_of_payment, remark, phone, email, sold_price`

// insertValues is the matching named-parameter list for sqlx.
const insertValues = `:ticket_code, :ticket_number, :type, :document_status_code, :owner_pcc, :owner_agent,
		:agent_issue_pcc, :agent_issue_name, :class_, :pax_name, :itinerary, :ticket_exchange_info,
		:indicator, :group_name, :issue_date, :currency, :fare, :net_fare, :taxes, :total_fare, :comm,
		:cancellation_fee, :payable, :amount_used, :booking_date, :booking_signon, :pnr_code, :tour_code,
		:claim_amount, :date_of_payment, :form_of_payment, :place_of_payment, :remark, :phone, :email, :sold_price`

// SearchQuery defines the optional filters for searching tickets. Empty
// fields are skipped; an empty query matches every row. Page and PageSize
// are optional, a zero PageSize disables pagination.
type SearchQuery struct {
	TicketNumber  string
	PaxName       string
	AgentIssuePCC string
	Page          int
	PageSize      int
}

// TicketRepo manages persistence for tickets.
type TicketRepo struct {
	db *sqlx.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sqlx.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// DB exposes the underlying sqlx.DB for callers that need raw access,
// such as the health check.
func (r *TicketRepo) DB() *sqlx.DB {
	return r.db
}

// ListAll returns tickets ordered by id. When pageSize is positive the
// result is limited to that page; otherwise the full table is returned,
// matching the original unpaged listing behavior.
func (r *TicketRepo) ListAll(ctx context.Context, page, pageSize int) ([]model.Ticket, error) {
	q := `SELECT * FROM tickets ORDER BY id`
	args := []any{}
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		q += ` LIMIT $1 OFFSET $2`
		args = append(args, pageSize, (page-1)*pageSize)
	}
	tickets := []model.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, q, args...); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListByNumber returns every row carrying the given ticket number,
// ordered by id. Exchanged or reissued tickets share a number, so more
// than one row is normal.
func (r *TicketRepo) ListByNumber(ctx context.Context, number string) ([]model.Ticket, error) {
	const q = `SELECT * FROM tickets WHERE ticket_number = $1 ORDER BY id`
	tickets := []model.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, q, number); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Create inserts a new ticket and populates the DB-owned fields (id,
// created_at, updated_at) on the given model from the RETURNING clause.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	q := `INSERT INTO tickets (` + insertColumns + `) VALUES (` + insertValues + `) RETURNING *`
	rows, err := r.db.NamedQueryContext(ctx, q, t)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return fmt.Errorf("insert returned no row")
	}
	if err := rows.StructScan(t); err != nil {
		return err
	}
	return rows.Close()
}

// Search returns tickets matching the query filters. Filters are combined
// with AND: exact ticket_number, case-insensitive substring pax_name and
// exact agent_issue_pcc. All three columns are indexed.
func (r *TicketRepo) Search(ctx context.Context, q SearchQuery) ([]model.Ticket, error) {
	where := []string{}
	args := []any{}
	if q.TicketNumber != "" {
		where = append(where, fmt.Sprintf("ticket_number = $%d", len(args)+1))
		args = append(args, q.TicketNumber)
	}
	if q.PaxName != "" {
		where = append(where, fmt.Sprintf("pax_name ILIKE $%d", len(args)+1))
		args = append(args, "%"+q.PaxName+"%")
	}
	if q.AgentIssuePCC != "" {
		where = append(where, fmt.Sprintf("agent_issue_pcc = $%d", len(args)+1))
		args = append(args, q.AgentIssuePCC)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	sql := `SELECT * FROM tickets WHERE ` + cond + ` ORDER BY id`
	if q.PageSize > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, q.PageSize, (page-1)*q.PageSize)
	}

	tickets := []model.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, sql, args...); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListByIssueDate returns all tickets issued on the given calendar date.
func (r *TicketRepo) ListByIssueDate(ctx context.Context, day model.Date) ([]model.Ticket, error) {
	const q = `SELECT * FROM tickets WHERE issue_date = $1 ORDER BY id`
	tickets := []model.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, q, day); err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateByNumber rewrites the client-writable columns of every row carrying
// the ticket number on the given model. updated_at is bumped explicitly
// because the schema defines no update trigger. Returns ErrTicketNotFound
// when no row matched.
func (r *TicketRepo) UpdateByNumber(ctx context.Context, t *model.Ticket) error {
	const q = `UPDATE tickets SET
		ticket_code = :ticket_code, type = :type, document_status_code = :document_status_code,
		owner_pcc = :owner_pcc, owner_agent = :owner_agent, agent_issue_pcc = :agent_issue_pcc,
		agent_issue_name = :agent_issue_name, class_ = :class_, pax_name = :pax_name,
		itinerary = :itinerary, ticket_exchange_info = :ticket_exchange_info, indicator = :indicator,
		group_name = :group_name, issue_date = :issue_date, currency = :currency, fare = :fare,
		net_fare = :net_fare, taxes = :taxes, total_fare = :total_fare, comm = :comm,
		cancellation_fee = :cancellation_fee, payable = :payable, amount_used = :amount_used,
		booking_date = :booking_date, booking_signon = :booking_signon, pnr_code = :pnr_code,
		tour_code = :tour_code, claim_amount = :claim_amount, date_of_payment = :date_of_payment,
		form_of_payment = :form_of_payment, place_of_payment = :place_of_payment, remark = :remark,
		phone = :phone, email = :email, sold_price = :sold_price, updated_at = NOW()
		WHERE ticket_number = :ticket_number`
	res, err := r.db.NamedExecContext(ctx, q, t)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// DeleteByNumber removes every row carrying the given ticket number and
// returns how many were deleted. Returns ErrTicketNotFound when none
// matched, mirroring the 404 contract of the delete endpoint.
func (r *TicketRepo) DeleteByNumber(ctx context.Context, number string) (int64, error) {
	const q = `DELETE FROM tickets WHERE ticket_number = $1`
	res, err := r.db.ExecContext(ctx, q, number)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrTicketNotFound
	}
	return n, nil
}
