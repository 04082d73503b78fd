// Package repository defines error types that are reused across the data
// access layer. These sentinel values allow handlers to distinguish
// between failure scenarios and pick the right HTTP status without
// inspecting driver errors themselves.
package repository

import "errors"

// ErrTicketNotFound is returned when no row matches the requested ticket
// number or date. Handlers should translate this into an HTTP 404.
var ErrTicketNotFound = errors.New("ticket not found")
