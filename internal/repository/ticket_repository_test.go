package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citdeveloper/cit/internal/model"
)

// newMockRepo builds a TicketRepo over a sqlmock connection with postgres
// bindvar rewriting, so named queries are matched in their $N form.
func newMockRepo(t *testing.T) (*TicketRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTicketRepo(sqlx.NewDb(db, "postgres")), mock
}

func ticketRows(numbers ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "ticket_code", "ticket_number", "created_at", "updated_at"})
	for i, n := range numbers {
		rows.AddRow(int64(i+1), "CODE", n, time.Now(), time.Now())
	}
	return rows
}

func TestListAllUnpaged(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tickets ORDER BY id`)).
		WillReturnRows(ticketRows("111", "222"))

	tickets, err := repo.ListAll(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "111", tickets[0].TicketNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllPaged(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tickets ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(20, 20).
		WillReturnRows(ticketRows("333"))

	tickets, err := repo.ListAll(context.Background(), 2, 20)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePopulatesDBFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`INSERT INTO tickets`).
		WillReturnRows(ticketRows("0812345678901"))

	tkt := model.Ticket{TicketCode: "CODE", TicketNumber: "0812345678901"}
	require.NoError(t, repo.Create(context.Background(), &tkt))
	assert.Equal(t, int64(1), tkt.ID)
	assert.False(t, tkt.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchBuildsFilters(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tickets WHERE ticket_number = $1 AND pax_name ILIKE $2 ORDER BY id`)).
		WithArgs("999", "%DOE%").
		WillReturnRows(ticketRows("999"))

	tickets, err := repo.Search(context.Background(), SearchQuery{TicketNumber: "999", PaxName: "DOE"})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchWithoutFiltersMatchesAll(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tickets WHERE 1=1 ORDER BY id`)).
		WillReturnRows(ticketRows())

	tickets, err := repo.Search(context.Background(), SearchQuery{})
	require.NoError(t, err)
	assert.Empty(t, tickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIssueDate(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tickets WHERE issue_date = $1 ORDER BY id`)).
		WillReturnRows(ticketRows("444"))

	day, err := model.ParseDate("2024-05-01")
	require.NoError(t, err)
	tickets, err := repo.ListByIssueDate(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateByNumberNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`UPDATE tickets SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tkt := model.Ticket{TicketCode: "CODE", TicketNumber: "000"}
	err := repo.UpdateByNumber(context.Background(), &tkt)
	assert.ErrorIs(t, err, ErrTicketNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateByNumberBumpsUpdatedAt(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`UPDATE tickets SET(.|\n)+updated_at = NOW\(\)(.|\n)+WHERE ticket_number = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 2)) // two exchange rows share the number

	tkt := model.Ticket{TicketCode: "CODE", TicketNumber: "555"}
	require.NoError(t, repo.UpdateByNumber(context.Background(), &tkt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByNumber(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tickets WHERE ticket_number = $1`)).
		WithArgs("666").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteByNumber(context.Background(), "666")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByNumberNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tickets WHERE ticket_number = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.DeleteByNumber(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTicketNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
