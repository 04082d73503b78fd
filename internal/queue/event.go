// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketCreatedEvent is published after a ticket row is stored. It carries
// enough of the record for downstream consumers to log, reconcile or feed
// analytics without querying the primary database.
type TicketCreatedEvent struct {
	TicketCode   string   `json:"ticket_code"`
	TicketNumber string   `json:"ticket_number"`
	PaxName      *string  `json:"pax_name"`
	Currency     *string  `json:"currency"`
	TotalFare    *float64 `json:"total_fare"`
	IssueDate    string   `json:"issue_date,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// TicketDeletedEvent is published after one or more rows carrying a ticket
// number are deleted. Deleted counts rows, since a number can map to
// several exchange rows.
type TicketDeletedEvent struct {
	TicketNumber string `json:"ticket_number"`
	Deleted      int64  `json:"deleted"`
	DeletedAt    string `json:"deleted_at"`
}
