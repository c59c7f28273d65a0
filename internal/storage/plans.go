package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/planfit/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UpsertPlan writes a normalized plan, replacing any previous copy.
// Returns true when the row was newly inserted.
func (db *DB) UpsertPlan(ctx context.Context, p domain.Plan) (bool, error) {
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return false, fmt.Errorf("marshaling tags: %w", err)
	}
	schedule, err := json.Marshal(p.Schedule)
	if err != nil {
		return false, fmt.Errorf("marshaling schedule: %w", err)
	}

	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO plans (id, name, description, difficulty, category, duration, tags,
		   rating_value, rating_count, schedule, is_day_of_week, start_date)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   description = EXCLUDED.description,
		   difficulty = EXCLUDED.difficulty,
		   category = EXCLUDED.category,
		   duration = EXCLUDED.duration,
		   tags = EXCLUDED.tags,
		   rating_value = EXCLUDED.rating_value,
		   rating_count = EXCLUDED.rating_count,
		   schedule = EXCLUDED.schedule,
		   is_day_of_week = EXCLUDED.is_day_of_week,
		   start_date = EXCLUDED.start_date,
		   synced_at = now()`,
		p.ID, p.Name, p.Description, p.Difficulty, p.Category, p.Duration, tags,
		p.Rating.Value, p.Rating.Count, schedule, p.IsDayOfWeek, p.StartDate)
	if err != nil {
		return false, fmt.Errorf("upserting plan %s: %w", p.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetPlan loads one plan by identifier; (nil, nil) when absent.
func (db *DB) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, description, difficulty, category, duration, tags,
		   rating_value, rating_count, schedule, is_day_of_week, start_date
		 FROM plans WHERE id = $1`, id)

	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting plan %s: %w", id, err)
	}
	return p, nil
}

// ListPlans returns all stored plans ordered by name.
func (db *DB) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, description, difficulty, category, duration, tags,
		   rating_value, rating_count, schedule, is_day_of_week, start_date
		 FROM plans ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var p domain.Plan
	var tags, schedule []byte

	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Difficulty, &p.Category,
		&p.Duration, &tags, &p.Rating.Value, &p.Rating.Count, &schedule,
		&p.IsDayOfWeek, &p.StartDate); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}
	if err := json.Unmarshal(schedule, &p.Schedule); err != nil {
		return nil, fmt.Errorf("unmarshaling schedule: %w", err)
	}
	return &p, nil
}
