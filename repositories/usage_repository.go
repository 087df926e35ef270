package repositories

import (
	"context"
	"time"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories/dbmodels"
)

// UsageRepository exposes the live counts that tier quotas are checked
// against. Headcount resources count active records, monthly resources count
// records created within the calendar month of the reference time.
type UsageRepository interface {
	CountActiveMembers(ctx context.Context, exec Executor, organizationId string) (int, error)
	CountActiveCoaches(ctx context.Context, exec Executor, organizationId string) (int, error)
	CountSessionsInMonth(ctx context.Context, exec Executor, organizationId string, ref time.Time) (int, error)
	CountPaymentsInMonth(ctx context.Context, exec Executor, organizationId string, ref time.Time) (int, error)
}

type UsageRepositoryPostgresql struct{}

func (repo *UsageRepositoryPostgresql) CountActiveMembers(
	ctx context.Context, exec Executor, organizationId string,
) (int, error) {
	if err := validateDbExecutor(exec); err != nil {
		return 0, err
	}

	return SqlToCount(
		ctx,
		exec,
		NewQueryBuilder().
			Select("count(*)").
			From(dbmodels.TABLE_MEMBERS).
			Where("org_id = ?", organizationId).
			Where("status = ?", string(models.MemberActive)),
	)
}

func (repo *UsageRepositoryPostgresql) CountActiveCoaches(
	ctx context.Context, exec Executor, organizationId string,
) (int, error) {
	if err := validateDbExecutor(exec); err != nil {
		return 0, err
	}

	return SqlToCount(
		ctx,
		exec,
		NewQueryBuilder().
			Select("count(*)").
			From(dbmodels.TABLE_COACHES).
			Where("org_id = ?", organizationId).
			Where("status = ?", string(models.MemberActive)),
	)
}

func (repo *UsageRepositoryPostgresql) CountSessionsInMonth(
	ctx context.Context, exec Executor, organizationId string, ref time.Time,
) (int, error) {
	if err := validateDbExecutor(exec); err != nil {
		return 0, err
	}

	monthStart, monthEnd := calendarMonthWindow(ref)
	return SqlToCount(
		ctx,
		exec,
		NewQueryBuilder().
			Select("count(*)").
			From(dbmodels.TABLE_SESSIONS).
			Where("org_id = ?", organizationId).
			Where("created_at >= ?", monthStart).
			Where("created_at < ?", monthEnd),
	)
}

func (repo *UsageRepositoryPostgresql) CountPaymentsInMonth(
	ctx context.Context, exec Executor, organizationId string, ref time.Time,
) (int, error) {
	if err := validateDbExecutor(exec); err != nil {
		return 0, err
	}

	monthStart, monthEnd := calendarMonthWindow(ref)
	return SqlToCount(
		ctx,
		exec,
		NewQueryBuilder().
			Select("count(*)").
			From(dbmodels.TABLE_PAYMENTS).
			Where("org_id = ?", organizationId).
			Where("created_at >= ?", monthStart).
			Where("created_at < ?", monthEnd),
	)
}

func calendarMonthWindow(ref time.Time) (time.Time, time.Time) {
	ref = ref.UTC()
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
