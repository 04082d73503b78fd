package model

import "time"

// Ticket is a single airline ticket transaction as stored in the tickets
// table. Only TicketCode and TicketNumber are mandatory; every other column
// is nullable and therefore a pointer. TicketNumber is deliberately not
// unique: exchanges and reissues produce several rows sharing a number.
//
// Money fields mirror NUMERIC(12,2) columns. The schema carries no CHECK
// constraints, so negative amounts (refunds, ADM charges) pass through.
type Ticket struct {
	ID                 int64     `db:"id" json:"id"`
	TicketCode         string    `db:"ticket_code" json:"ticket_code"`
	TicketNumber       string    `db:"ticket_number" json:"ticket_number"`
	Type               *string   `db:"type" json:"type"`
	DocumentStatusCode *string   `db:"document_status_code" json:"document_status_code"`
	OwnerPCC           *string   `db:"owner_pcc" json:"owner_pcc"`
	OwnerAgent         *string   `db:"owner_agent" json:"owner_agent"`
	AgentIssuePCC      *string   `db:"agent_issue_pcc" json:"agent_issue_pcc"`
	AgentIssueName     *string   `db:"agent_issue_name" json:"agent_issue_name"`
	Class              *string   `db:"class_" json:"class_"`
	PaxName            *string   `db:"pax_name" json:"pax_name"`
	Itinerary          *string   `db:"itinerary" json:"itinerary"`
	TicketExchangeInfo *string   `db:"ticket_exchange_info" json:"ticket_exchange_info"`
	Indicator          *string   `db:"indicator" json:"indicator"`
	GroupName          *string   `db:"group_name" json:"group_name"`
	IssueDate          *Date     `db:"issue_date" json:"issue_date"`
	Currency           *string   `db:"currency" json:"currency"`
	Fare               *float64  `db:"fare" json:"fare"`
	NetFare            *float64  `db:"net_fare" json:"net_fare"`
	Taxes              *float64  `db:"taxes" json:"taxes"`
	TotalFare          *float64  `db:"total_fare" json:"total_fare"`
	Comm               *float64  `db:"comm" json:"comm"`
	CancellationFee    *float64  `db:"cancellation_fee" json:"cancellation_fee"`
	Payable            *float64  `db:"payable" json:"payable"`
	AmountUsed         *float64  `db:"amount_used" json:"amount_used"`
	BookingDate        *Date     `db:"booking_date" json:"booking_date"`
	BookingSignon      *string   `db:"booking_signon" json:"booking_signon"`
	PNRCode            *string   `db:"pnr_code" json:"pnr_code"`
	TourCode           *string   `db:"tour_code" json:"tour_code"`
	ClaimAmount        *float64  `db:"claim_amount" json:"claim_amount"`
	DateOfPayment      *Date     `db:"date_of_payment" json:"date_of_payment"`
	FormOfPayment      *string   `db:"form_of_payment" json:"form_of_payment"`
	PlaceOfPayment     *string   `db:"place_of_payment" json:"place_of_payment"`
	Remark             *string   `db:"remark" json:"remark"`
	Phone              *string   `db:"phone" json:"phone"`
	Email              *string   `db:"email" json:"email"`
	SoldPrice          *float64  `db:"sold_price" json:"sold_price"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
