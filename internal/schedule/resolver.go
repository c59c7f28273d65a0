package schedule

import (
	"fmt"
	"time"

	"github.com/claude/planfit/internal/domain"
)

// SessionLookup finds a session by identifier in an already-merged,
// de-duplicated catalog. A nil return means no match.
type SessionLookup func(id string) *domain.WorkoutSession

// ResolveToday computes what the plan prescribes for ref. Day-of-week plans
// key their schedule by English weekday name; sequential plans by "Day N"
// counted from the plan's start date. A missing slot, an uninterpretable
// descriptor, or a session reference absent from the catalog all come back as
// an unresolved item — never an error, never a placeholder session.
func ResolveToday(plan domain.Plan, ref time.Time, lookup SessionLookup) domain.ScheduleItem {
	raw, ok := plan.Schedule[SlotKey(plan, ref)]
	if !ok {
		return domain.Unresolved()
	}

	item := ParseDescriptor(raw)
	if item.Kind != domain.KindSessionRef {
		return item
	}

	if lookup == nil {
		return domain.Unresolved()
	}
	session := lookup(item.SessionID)
	if session == nil {
		return domain.Unresolved()
	}
	return domain.SessionItem(*session)
}

// SlotKey returns the schedule key applicable to ref under the plan's
// scheduling convention.
func SlotKey(plan domain.Plan, ref time.Time) string {
	if plan.IsDayOfWeek {
		return ref.Weekday().String()
	}
	return fmt.Sprintf("Day %d", daysSinceStart(plan, ref)+1)
}

// daysSinceStart counts whole calendar days from the plan's start date to
// ref, floored at zero. A plan without a start date treats ref as Day 1.
func daysSinceStart(plan domain.Plan, ref time.Time) int {
	if plan.StartDate == nil {
		return 0
	}
	days := int(truncateToDay(ref).Sub(truncateToDay(*plan.StartDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// truncateToDay drops the time-of-day component, comparing calendar dates
// independent of zone offsets within the day.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
