// Package sync pulls raw plan and session records from the remote
// workout-data service, normalizes them, and upserts the result into the
// local Postgres read model. The remote client has already merged the
// private and public record tiers; this layer only decides what changed.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claude/planfit/internal/catalog"
	"github.com/claude/planfit/internal/domain"
	"github.com/claude/planfit/internal/normalize"
	"github.com/claude/planfit/internal/storage"
)

// Fetcher is the slice of the remote client the syncer needs.
type Fetcher interface {
	FetchSessions(ctx context.Context, userID string) ([]map[string]any, error)
	FetchPlans(ctx context.Context, userID string) ([]map[string]any, error)
}

// Store is the slice of the storage layer the syncer needs.
type Store interface {
	UpsertSession(ctx context.Context, s domain.WorkoutSession) (bool, error)
	UpsertPlan(ctx context.Context, p domain.Plan) (bool, error)
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Result holds the outcome of one sync run.
type Result struct {
	SessionsFetched  int `json:"sessions_fetched"`
	SessionsUpserted int `json:"sessions_upserted"`
	SessionsSkipped  int `json:"sessions_skipped"`
	SessionsDropped  int `json:"sessions_dropped"`

	PlansFetched  int `json:"plans_fetched"`
	PlansUpserted int `json:"plans_upserted"`
	PlansSkipped  int `json:"plans_skipped"`
}

// Syncer wires the remote client, the normalizer, the read model, and the
// local sync state together.
type Syncer struct {
	remote Fetcher
	store  Store
	state  *StateDB
	log    *slog.Logger
}

// NewSyncer creates a Syncer. state may be nil, in which case every fetched
// record is treated as changed.
func NewSyncer(remote Fetcher, store Store, state *StateDB, log *slog.Logger) *Syncer {
	return &Syncer{remote: remote, store: store, state: state, log: log}
}

// Run fetches and stores all records for one user.
func (s *Syncer) Run(ctx context.Context, userID string) (*Result, error) {
	result := &Result{}

	if err := s.syncSessions(ctx, userID, result); err != nil {
		return result, fmt.Errorf("syncing sessions: %w", err)
	}
	if err := s.syncPlans(ctx, userID, result); err != nil {
		return result, fmt.Errorf("syncing plans: %w", err)
	}
	return result, nil
}

func (s *Syncer) syncSessions(ctx context.Context, userID string, result *Result) error {
	records, err := s.remote.FetchSessions(ctx, userID)
	if err != nil {
		return err
	}
	result.SessionsFetched = len(records)

	for _, raw := range records {
		changed, hash, err := s.recordChanged(raw)
		if err != nil {
			return err
		}
		if !changed {
			result.SessionsSkipped++
			continue
		}

		session := normalize.Session(raw)
		if session == nil {
			// No session identifier anywhere in the record; nothing to key on.
			s.log.Warn("dropping session record without identifier")
			result.SessionsDropped++
			continue
		}

		if _, err := s.store.UpsertSession(ctx, *session); err != nil {
			return err
		}
		result.SessionsUpserted++
		s.markSynced(raw, hash)
	}
	return nil
}

func (s *Syncer) syncPlans(ctx context.Context, userID string, result *Result) error {
	records, err := s.remote.FetchPlans(ctx, userID)
	if err != nil {
		return err
	}
	result.PlansFetched = len(records)

	for _, raw := range records {
		changed, hash, err := s.recordChanged(raw)
		if err != nil {
			return err
		}
		if !changed {
			result.PlansSkipped++
			continue
		}

		plan := normalize.Plan(raw)
		if _, err := s.store.UpsertPlan(ctx, plan); err != nil {
			return err
		}
		result.PlansUpserted++
		s.markSynced(raw, hash)
	}
	return nil
}

// recordChanged reports whether the record differs from the last synced copy.
func (s *Syncer) recordChanged(raw map[string]any) (bool, string, error) {
	if s.state == nil {
		return true, "", nil
	}
	id := catalog.RecordID(raw)
	if id == "" {
		return true, "", nil
	}
	hash := RecordHash(raw)
	current, err := s.state.IsCurrent(id, hash)
	if err != nil {
		return false, "", fmt.Errorf("checking sync state for %s: %w", id, err)
	}
	return !current, hash, nil
}

func (s *Syncer) markSynced(raw map[string]any, hash string) {
	if s.state == nil || hash == "" {
		return
	}
	id := catalog.RecordID(raw)
	if id == "" {
		return
	}
	if err := s.state.MarkSynced(id, hash); err != nil {
		s.log.Warn("failed to mark record synced", "record", id, "error", err)
	}
}
