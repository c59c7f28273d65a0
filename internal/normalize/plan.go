package normalize

import (
	"fmt"

	"github.com/claude/planfit/internal/domain"
	"github.com/google/uuid"
)

// Plan converts a raw plan record into a domain.Plan. The schedule comes from
// the canonical "sessions" slot map when present; otherwise it is
// reconstructed from the legacy "movementsInPlan" list. When the explicit
// day-of-week flag is absent, the plan type is inferred from the slot keys.
func Plan(raw map[string]any) domain.Plan {
	p := domain.Plan{
		ID:          stringField(raw, "planId", "id"),
		Name:        stringField(raw, "name"),
		Description: stringField(raw, "description"),
		Difficulty:  stringField(raw, "difficulty"),
		Category:    stringField(raw, "category"),
		Duration:    stringField(raw, "duration"),
		Tags:        stringSliceField(raw, "tags"),
		StartDate:   timeField(raw, "startDate"),
		Schedule:    scheduleMap(raw),
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if v := floatField(raw, "ratingValue"); v != nil {
		p.Rating.Value = *v
	}
	if c := intField(raw, "ratingCount"); c != nil {
		p.Rating.Count = *c
	}

	if v, ok := firstValue(raw, "isDayOfTheWeekPlan"); ok {
		if b, isBool := v.(bool); isBool {
			p.IsDayOfWeek = b
			return p
		}
	}
	p.IsDayOfWeek = inferDayOfWeek(p.Schedule)
	return p
}

// scheduleMap extracts the slot-key → descriptor map. Scalar descriptor
// values stored as numbers are stringified; nested values are skipped.
func scheduleMap(raw map[string]any) map[string]string {
	if m := mapField(raw, "sessions"); m != nil {
		out := make(map[string]string, len(m))
		for key, v := range m {
			if s := asString(v); s != "" {
				out[key] = s
			}
		}
		return out
	}
	return legacySchedule(raw)
}

// legacySchedule rebuilds a slot map from the historical list-of-records
// plan shape. Entries carrying an explicit day key keep it; the rest are
// assigned sequential "Day N" keys in list order.
func legacySchedule(raw map[string]any) map[string]string {
	entries := mapSliceField(raw, "movementsInPlan")
	if len(entries) == 0 {
		return map[string]string{}
	}

	out := make(map[string]string, len(entries))
	for i, entry := range entries {
		descriptor := stringField(entry, "sessionId", "session", "id", "name")
		if descriptor == "" {
			continue
		}
		key := stringField(entry, "day")
		if key == "" {
			key = fmt.Sprintf("Day %d", i+1)
		}
		out[key] = descriptor
	}
	return out
}

// inferDayOfWeek reports whether a schedule without an explicit plan-type
// flag should be read as a weekly template: any weekday-name key decides.
func inferDayOfWeek(schedule map[string]string) bool {
	for key := range schedule {
		if isWeekdayName(key) {
			return true
		}
	}
	return false
}
