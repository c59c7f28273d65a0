// Package schedule decides what a plan prescribes for a given calendar date.
// It parses the raw descriptor strings stored in plan schedule slots, resolves
// session references against a caller-supplied catalog, and computes
// completion progress for sequential plans. Everything here is pure and
// best-effort: malformed input yields an unresolved item, never a panic.
package schedule

import (
	"strconv"
	"strings"

	"github.com/claude/planfit/internal/domain"
)

// ParseDescriptor interprets one raw schedule-slot string. Detection order is
// fixed: a "rest" substring wins over an activity encoding, which wins over
// the session-identifier fallback. A session literally named with "rest" in
// it therefore classifies as a rest day; that collision is inherited from the
// stored data and kept as-is.
func ParseDescriptor(raw string) domain.ScheduleItem {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.Unresolved()
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "rest") {
		return domain.RestItem()
	}
	if strings.Contains(lower, "activitytype") {
		return parseActivity(trimmed)
	}
	return domain.SessionRefItem(trimmed)
}

// parseActivity decodes the semi-structured activity encoding:
// ";"-separated "key:value" pairs, keys case-insensitive, both sides trimmed.
// Pairs without exactly one ":" are skipped and unknown keys are ignored, so
// newer writers can add fields without breaking older readers. A missing
// activityType fails the whole parse.
func parseActivity(raw string) domain.ScheduleItem {
	var a domain.Activity

	for _, pair := range strings.Split(raw, ";") {
		if strings.Count(pair, ":") != 1 {
			continue
		}
		key, value, _ := strings.Cut(pair, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch key {
		case "activitytype":
			a.Type = value
		case "distance":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				a.Distance = &f
			}
		case "duration":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				a.DurationSeconds = &f
			}
		case "runtype":
			a.RunType = value
		case "sporttype":
			a.SportType = value
		}
	}

	if a.Type == "" {
		return domain.Unresolved()
	}
	return domain.ActivityItem(a)
}
