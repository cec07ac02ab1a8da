package dietplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store defines the interface for diet plan data operations.
type Store interface {
	GetPlan(ctx context.Context, planID string) (*DietPlan, error)
	SavePlan(ctx context.Context, planID string, plan *DietPlan) error
	ListPlans(ctx context.Context, filter ListFilter) ([]*Record, error)
	GetPlanSummary(ctx context.Context, planID string) (string, error)
	SavePlanSummary(ctx context.Context, planID, summary string) error
}

// ListFilter narrows ListPlans. Empty fields match everything.
type ListFilter struct {
	ProfileType        ProfileType
	PregnancyTrimester Trimester
	ChildAge           ChildAge
}

// PostgresStore implements the Store interface for PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

const planSchema = `
CREATE TABLE IF NOT EXISTS diet_plans (
	plan_id TEXT PRIMARY KEY,
	profile_type TEXT NOT NULL,
	pregnancy_trimester TEXT NOT NULL DEFAULT '',
	child_age TEXT NOT NULL DEFAULT '',
	calorie_target DOUBLE PRECISION NOT NULL,
	plan JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const summarySchema = `
CREATE TABLE IF NOT EXISTS plan_summaries (
	plan_id TEXT PRIMARY KEY,
	summary TEXT
);
`

// NewPostgresStore connects to the database and creates the tables if needed.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := NewPostgresStoreFromDB(db)
	if err := store.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewPostgresStoreFromDB wraps an existing connection without migrating.
func NewPostgresStoreFromDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the plan tables if they do not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, planSchema); err != nil {
		return fmt.Errorf("failed to create diet_plans table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, summarySchema); err != nil {
		return fmt.Errorf("failed to create plan_summaries table: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// GetPlan retrieves a plan by id. It returns ErrPlanNotFound when absent.
func (s *PostgresStore) GetPlan(ctx context.Context, planID string) (*DietPlan, error) {
	var planJSON []byte
	err := s.db.QueryRowxContext(ctx, "SELECT plan FROM diet_plans WHERE plan_id = $1", planID).Scan(&planJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan by id: %w", err)
	}

	var plan DietPlan
	if err := json.Unmarshal(planJSON, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &plan, nil
}

// SavePlan upserts a plan.
func (s *PostgresStore) SavePlan(ctx context.Context, planID string, plan *DietPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO diet_plans (plan_id, profile_type, pregnancy_trimester, child_age, calorie_target, plan) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (plan_id) DO UPDATE SET profile_type = $2, pregnancy_trimester = $3, child_age = $4, calorie_target = $5, plan = $6",
		planID,
		string(plan.UserProfile.ProfileType),
		string(plan.UserProfile.PregnancyTrimester),
		string(plan.UserProfile.ChildAge),
		plan.CalorieTarget,
		planJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// ListPlans retrieves stored plans matching the filter, newest first.
func (s *PostgresStore) ListPlans(ctx context.Context, filter ListFilter) ([]*Record, error) {
	var args []interface{}
	query := "SELECT plan_id, plan FROM diet_plans WHERE 1=1"

	paramCount := 1
	if filter.ProfileType != "" {
		query += fmt.Sprintf(" AND profile_type = $%d", paramCount)
		args = append(args, string(filter.ProfileType))
		paramCount++
	}
	if filter.PregnancyTrimester != "" {
		query += fmt.Sprintf(" AND pregnancy_trimester = $%d", paramCount)
		args = append(args, string(filter.PregnancyTrimester))
		paramCount++
	}
	if filter.ChildAge != "" {
		query += fmt.Sprintf(" AND child_age = $%d", paramCount)
		args = append(args, string(filter.ChildAge))
		paramCount++
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var (
			id       string
			planJSON []byte
		)
		if err := rows.Scan(&id, &planJSON); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		var plan DietPlan
		if err := json.Unmarshal(planJSON, &plan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan %s: %w", id, err)
		}
		records = append(records, &Record{ID: id, Plan: &plan})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return records, nil
}

// GetPlanSummary retrieves a cached summary. It returns "" when absent.
func (s *PostgresStore) GetPlanSummary(ctx context.Context, planID string) (string, error) {
	var summary string
	err := s.db.QueryRowxContext(ctx, "SELECT summary FROM plan_summaries WHERE plan_id = $1", planID).Scan(&summary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get plan summary: %w", err)
	}
	return summary, nil
}

// SavePlanSummary upserts a summary.
func (s *PostgresStore) SavePlanSummary(ctx context.Context, planID, summary string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO plan_summaries (plan_id, summary) VALUES ($1, $2) ON CONFLICT (plan_id) DO UPDATE SET summary = $2",
		planID,
		summary,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan summary: %w", err)
	}
	return nil
}
