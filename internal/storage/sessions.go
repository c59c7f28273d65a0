package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/planfit/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UpsertSession writes a normalized session, replacing any previous copy.
// Returns true when the row was newly inserted.
func (db *DB) UpsertSession(ctx context.Context, s domain.WorkoutSession) (bool, error) {
	movements, err := json.Marshal(s.Movements)
	if err != nil {
		return false, fmt.Errorf("marshaling movements: %w", err)
	}
	equipment, err := json.Marshal(s.EquipmentNeeded)
	if err != nil {
		return false, fmt.Errorf("marshaling equipment: %w", err)
	}

	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO sessions (id, name, description, difficulty, equipment_needed, created_at, movements)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   description = EXCLUDED.description,
		   difficulty = EXCLUDED.difficulty,
		   equipment_needed = EXCLUDED.equipment_needed,
		   created_at = EXCLUDED.created_at,
		   movements = EXCLUDED.movements,
		   synced_at = now()`,
		s.ID, s.Name, s.Description, s.Difficulty, equipment, s.CreatedAt, movements)
	if err != nil {
		return false, fmt.Errorf("upserting session %s: %w", s.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetSession loads one session by identifier. A missing row returns (nil, nil)
// so the caller can treat it like a catalog miss.
func (db *DB) GetSession(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, description, difficulty, equipment_needed, created_at, movements
		 FROM sessions WHERE id = $1`, id)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting session %s: %w", id, err)
	}
	return s, nil
}

// ListSessions returns all stored sessions ordered by name.
func (db *DB) ListSessions(ctx context.Context) ([]domain.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, description, difficulty, equipment_needed, created_at, movements
		 FROM sessions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.WorkoutSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// SessionLookup adapts the store to the resolver's catalog callback. Lookup
// errors are reported through onErr (may be nil) and read as a miss — the
// resolver contract has no error channel and a miss is its safe terminal.
func (db *DB) SessionLookup(ctx context.Context, onErr func(error)) func(id string) *domain.WorkoutSession {
	return func(id string) *domain.WorkoutSession {
		s, err := db.GetSession(ctx, id)
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return nil
		}
		return s
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.WorkoutSession, error) {
	var s domain.WorkoutSession
	var equipment, movements []byte

	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Difficulty, &equipment, &s.CreatedAt, &movements); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(equipment, &s.EquipmentNeeded); err != nil {
		return nil, fmt.Errorf("unmarshaling equipment: %w", err)
	}
	if err := json.Unmarshal(movements, &s.Movements); err != nil {
		return nil, fmt.Errorf("unmarshaling movements: %w", err)
	}
	return &s, nil
}
