package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAuditLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("logs", "tickets.log"))
	require.NoError(t, err)
	return string(data)
}

func TestHandleMessageCreatedEvent(t *testing.T) {
	t.Chdir(t.TempDir())

	pax := "DOE/JOHN MR"
	cur := "USD"
	fare := 550.0
	body, err := json.Marshal(TicketCreatedEvent{
		TicketCode:   "CODE",
		TicketNumber: "0812345678901",
		PaxName:      &pax,
		Currency:     &cur,
		TotalFare:    &fare,
		CreatedAt:    "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))
	log := readAuditLog(t)
	assert.Contains(t, log, "Ticket created")
	assert.Contains(t, log, "ticket_number=0812345678901")
	assert.Contains(t, log, "USD 550.00")
}

func TestHandleMessageDeletedEvent(t *testing.T) {
	t.Chdir(t.TempDir())

	body, err := json.Marshal(TicketDeletedEvent{
		TicketNumber: "666",
		Deleted:      2,
		DeletedAt:    "2024-01-02T10:00:00Z",
	})
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))
	log := readAuditLog(t)
	assert.Contains(t, log, "Ticket deleted")
	assert.Contains(t, log, "rows=2")
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.Error(t, handleMessage([]byte("not json")))
	assert.Error(t, handleMessage([]byte(`{"foo":"bar"}`)))
}
