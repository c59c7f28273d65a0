// Package catalog builds the merged, de-duplicated session view the schedule
// resolver looks sessions up in. The backend serves records from two tiers
// (the user's private records, then public/shared ones); when an identifier
// exists in both, the private copy wins because its tier is queried first.
// That fixed priority is made explicit here instead of depending on fetch
// callback ordering.
package catalog

import (
	"github.com/claude/planfit/internal/domain"
	"github.com/claude/planfit/internal/normalize"
)

// KeyOf extracts the de-duplication identifier from a raw record.
type KeyOf func(record map[string]any) string

// RecordID is the KeyOf used for both session and plan records.
func RecordID(record map[string]any) string {
	for _, key := range []string{"sessionId", "planId", "id"} {
		if s, ok := record[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// MergeUnique combines two record tiers, first-seen wins. All primary records
// come first in their original order, then secondary records whose key has
// not been seen. Records with an empty key cannot be de-duplicated and are
// skipped.
func MergeUnique(primary, secondary []map[string]any, keyOf KeyOf) []map[string]any {
	seen := make(map[string]bool, len(primary))
	merged := make([]map[string]any, 0, len(primary)+len(secondary))

	for _, r := range primary {
		key := keyOf(r)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, r)
	}
	for _, r := range secondary {
		key := keyOf(r)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, r)
	}
	return merged
}

// Catalog is an in-memory session index keyed by identifier.
type Catalog struct {
	sessions map[string]domain.WorkoutSession
}

// New builds a catalog from already-normalized sessions. Later duplicates of
// an identifier are ignored, matching MergeUnique's first-seen policy.
func New(sessions []domain.WorkoutSession) *Catalog {
	c := &Catalog{sessions: make(map[string]domain.WorkoutSession, len(sessions))}
	for _, s := range sessions {
		if _, ok := c.sessions[s.ID]; ok {
			continue
		}
		c.sessions[s.ID] = s
	}
	return c
}

// FromRecords merges raw session records from both tiers, normalizes them,
// and builds the catalog in one step. Records that normalize to nil (no
// session identifier) are dropped.
func FromRecords(private, public []map[string]any) *Catalog {
	merged := MergeUnique(private, public, RecordID)
	sessions := make([]domain.WorkoutSession, 0, len(merged))
	for _, r := range merged {
		if s := normalize.Session(r); s != nil {
			sessions = append(sessions, *s)
		}
	}
	return New(sessions)
}

// Lookup returns the session with the given identifier, or nil. The method
// value satisfies schedule.SessionLookup.
func (c *Catalog) Lookup(id string) *domain.WorkoutSession {
	if s, ok := c.sessions[id]; ok {
		return &s
	}
	return nil
}

// Sessions returns all sessions in the catalog, order unspecified.
func (c *Catalog) Sessions() []domain.WorkoutSession {
	out := make([]domain.WorkoutSession, 0, len(c.sessions))
	for _, s := range c.sessions {
		out = append(out, s)
	}
	return out
}

// Len reports the number of distinct sessions.
func (c *Catalog) Len() int {
	return len(c.sessions)
}
