package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pgPoolStub struct {
	pgxmock.PgxPoolIface
}

func newExecutorStub(t *testing.T) (pgxmock.PgxPoolIface, Executor) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, pgPoolStub{pool}
}

func TestUsageRepository_CountActiveMembers(t *testing.T) {
	pool, exec := newExecutorStub(t)
	orgId := "7c4cbfbb-8f14-4be7-97cc-5f9e48eb64dc"

	pool.ExpectQuery(`SELECT count\(\*\) FROM members WHERE org_id = \$1 AND status = \$2`).
		WithArgs(orgId, "active").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(17))

	repo := UsageRepositoryPostgresql{}
	count, err := repo.CountActiveMembers(context.Background(), exec, orgId)

	assert.NoError(t, err)
	assert.Equal(t, 17, count)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestUsageRepository_CountSessionsInMonth(t *testing.T) {
	pool, exec := newExecutorStub(t)
	orgId := "7c4cbfbb-8f14-4be7-97cc-5f9e48eb64dc"
	ref := time.Date(2025, time.May, 15, 23, 30, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	pool.ExpectQuery(`SELECT count\(\*\) FROM sessions WHERE org_id = \$1 AND created_at >= \$2 AND created_at < \$3`).
		WithArgs(orgId, monthStart, monthEnd).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	repo := UsageRepositoryPostgresql{}
	count, err := repo.CountSessionsInMonth(context.Background(), exec, orgId, ref)

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestCalendarMonthWindow(t *testing.T) {
	// A reference time in a non-UTC zone still maps to the UTC calendar month.
	loc := time.FixedZone("UTC+10", 10*3600)
	ref := time.Date(2025, time.June, 1, 5, 0, 0, 0, loc) // May 31st, 19:00 UTC

	start, end := calendarMonthWindow(ref)

	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestUsageRepository_NilExecutor(t *testing.T) {
	repo := UsageRepositoryPostgresql{}
	_, err := repo.CountActiveMembers(context.Background(), nil, "org")
	assert.Error(t, err)
}
