package dietplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStoreFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

func samplePlan(t *testing.T) *DietPlan {
	t.Helper()
	plan, err := Generate(UserProfile{ProfileType: Pregnant, PregnancyTrimester: SecondTrimester, Age: 28, Height: 165, Weight: 68})
	require.NoError(t, err)
	return plan
}

func TestPostgresStore_Migrate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS diet_plans")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS plan_summaries")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAndGetPlan(t *testing.T) {
	store, mock := newMockStore(t)
	plan := samplePlan(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO diet_plans")).
		WithArgs("plan-1", "pregnant", "second", "", plan.CalorieTarget, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.SavePlan(context.Background(), "plan-1", plan))

	planJSON, err := json.Marshal(plan)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT plan FROM diet_plans WHERE plan_id = $1")).
		WithArgs("plan-1").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow(planJSON))

	got, err := store.GetPlan(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Equal(t, plan, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetPlanNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT plan FROM diet_plans WHERE plan_id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	plan, err := store.GetPlan(context.Background(), "missing")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPostgresStore_ListPlansFilters(t *testing.T) {
	store, mock := newMockStore(t)
	plan := samplePlan(t)
	planJSON, err := json.Marshal(plan)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT plan_id, plan FROM diet_plans WHERE 1=1 AND profile_type = $1 AND pregnancy_trimester = $2 ORDER BY created_at DESC")).
		WithArgs("pregnant", "second").
		WillReturnRows(sqlmock.NewRows([]string{"plan_id", "plan"}).AddRow("plan-1", planJSON))

	records, err := store.ListPlans(context.Background(), ListFilter{ProfileType: Pregnant, PregnancyTrimester: SecondTrimester})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "plan-1", records[0].ID)
	assert.Equal(t, plan.CalorieTarget, records[0].Plan.CalorieTarget)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_PlanSummary(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT summary FROM plan_summaries WHERE plan_id = $1")).
		WithArgs("plan-1").
		WillReturnError(sql.ErrNoRows)
	summary, err := store.GetPlanSummary(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Empty(t, summary)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plan_summaries")).
		WithArgs("plan-1", "A gentle week of meals.").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.SavePlanSummary(context.Background(), "plan-1", "A gentle week of meals."))
	assert.NoError(t, mock.ExpectationsWereMet())
}
