package router

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citdeveloper/cit/internal/config"
	"github.com/citdeveloper/cit/internal/handler"
	"github.com/citdeveloper/cit/internal/repository"
)

func newTestServer(t *testing.T, apiKey string) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sdb := sqlx.NewDb(db, "postgres")
	e := echo.New()
	RegisterRoutes(e,
		config.Config{APIKey: apiKey},
		handler.NewTicketHandler(repository.NewTicketRepo(sdb), nil),
		handler.NewHealthHandler(sdb),
		nil, // no redis: cache and limiter are pass-through
	)
	return e, mock
}

func TestHealthIsOpenWithoutAPIKey(t *testing.T) {
	e, mock := newTestServer(t, "secret")
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTicketRoutesRequireAPIKey(t *testing.T) {
	e, _ := newTestServer(t, "secret")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearchRouteNotSwallowedByDateParam(t *testing.T) {
	e, mock := newTestServer(t, "")
	// A search query must hit the filtered SELECT, not the issue_date one.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tickets WHERE ticket_number = $1 ORDER BY id`)).
		WithArgs("123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "ticket_code", "ticket_number"}).AddRow(1, "C", "123"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets/search?ticket_number=123", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDateRouteParses(t *testing.T) {
	e, mock := newTestServer(t, "")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM tickets WHERE issue_date = $1 ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ticket_code", "ticket_number"}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets/2024-05-01", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
