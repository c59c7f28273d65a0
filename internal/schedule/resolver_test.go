package schedule

import (
	"testing"
	"time"

	"github.com/claude/planfit/internal/domain"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func catalogOf(sessions ...domain.WorkoutSession) SessionLookup {
	byID := make(map[string]domain.WorkoutSession, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}
	return func(id string) *domain.WorkoutSession {
		if s, ok := byID[id]; ok {
			return &s
		}
		return nil
	}
}

// TestResolveWeekdayPlan verifies day-of-week resolution: the slot key is the
// reference date's English weekday name, and the result depends only on the
// weekday, not on the month or year.
func TestResolveWeekdayPlan(t *testing.T) {
	plan := domain.Plan{
		IsDayOfWeek: true,
		Schedule: map[string]string{
			"Monday":    "sess_push",
			"Wednesday": "Rest Session",
		},
	}
	lookup := catalogOf(domain.WorkoutSession{ID: "sess_push", Name: "Push"})

	// Three Mondays across different months and years.
	for _, ref := range []time.Time{
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 24, 23, 59, 0, 0, time.UTC),
		time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC),
	} {
		item := ResolveToday(plan, ref, lookup)
		if item.Kind != domain.KindSession {
			t.Fatalf("ResolveToday(%v).Kind = %v, want session", ref, item.Kind)
		}
		if item.Session.Name != "Push" {
			t.Errorf("session = %q, want Push", item.Session.Name)
		}
	}

	wednesday := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	if item := ResolveToday(plan, wednesday, lookup); item.Kind != domain.KindRest {
		t.Errorf("Wednesday kind = %v, want rest", item.Kind)
	}

	// Tuesday has no slot.
	tuesday := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	if item := ResolveToday(plan, tuesday, lookup); item.Kind != domain.KindUnresolved {
		t.Errorf("Tuesday kind = %v, want unresolved", item.Kind)
	}
}

// TestResolveSequentialPlan verifies the "Day N" keying: the start date is
// Day 1, six days later is Day 7, and a date beyond the last slot resolves
// against a key the schedule does not contain.
func TestResolveSequentialPlan(t *testing.T) {
	plan := domain.Plan{
		StartDate: datePtr(2026, 6, 1),
		Schedule: map[string]string{
			"Day 1": "sess_a",
			"Day 7": "activityType:running;distance:5.2;duration:1800",
		},
	}
	lookup := catalogOf(domain.WorkoutSession{ID: "sess_a", Name: "Full Body A"})

	item := ResolveToday(plan, time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC), lookup)
	if item.Kind != domain.KindSession || item.Session.ID != "sess_a" {
		t.Errorf("start date item = %+v, want session sess_a", item)
	}

	item = ResolveToday(plan, time.Date(2026, 6, 7, 6, 0, 0, 0, time.UTC), lookup)
	if item.Kind != domain.KindActivity {
		t.Fatalf("day 7 kind = %v, want activity", item.Kind)
	}
	if item.Activity.Type != "running" {
		t.Errorf("activity type = %q, want running", item.Activity.Type)
	}

	// Day 30 has no slot.
	item = ResolveToday(plan, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), lookup)
	if item.Kind != domain.KindUnresolved {
		t.Errorf("past-end kind = %v, want unresolved", item.Kind)
	}
}

// TestResolveSlotKeyClamping verifies the daysSinceStart floor: a reference
// date before the start date still resolves Day 1, and a plan without a
// start date always treats the reference date as Day 1.
func TestResolveSlotKeyClamping(t *testing.T) {
	plan := domain.Plan{
		StartDate: datePtr(2026, 6, 10),
		Schedule:  map[string]string{"Day 1": "Rest Session"},
	}

	before := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if item := ResolveToday(plan, before, nil); item.Kind != domain.KindRest {
		t.Errorf("pre-start kind = %v, want rest (Day 1)", item.Kind)
	}

	plan.StartDate = nil
	late := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	if item := ResolveToday(plan, late, nil); item.Kind != domain.KindRest {
		t.Errorf("no-start kind = %v, want rest (Day 1)", item.Kind)
	}
}

// TestResolveSessionLookupMiss verifies that a session reference with no
// catalog match degrades to unresolved — never a crash, never a placeholder.
func TestResolveSessionLookupMiss(t *testing.T) {
	plan := domain.Plan{
		IsDayOfWeek: true,
		Schedule:    map[string]string{"Friday": "sess_gone"},
	}
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	if item := ResolveToday(plan, friday, catalogOf()); item.Kind != domain.KindUnresolved {
		t.Errorf("empty catalog kind = %v, want unresolved", item.Kind)
	}
	if item := ResolveToday(plan, friday, nil); item.Kind != domain.KindUnresolved {
		t.Errorf("nil lookup kind = %v, want unresolved", item.Kind)
	}
}

// TestResolveMixedScheduleKeys verifies that a schedule mixing weekday and
// "Day N" keys (a data-quality smell in stored plans) never crashes the
// resolver; the off-convention keys simply never match.
func TestResolveMixedScheduleKeys(t *testing.T) {
	plan := domain.Plan{
		IsDayOfWeek: true,
		StartDate:   datePtr(2026, 6, 1),
		Schedule: map[string]string{
			"Monday": "Rest Session",
			"Day 3":  "sess_a",
		},
	}

	monday := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if item := ResolveToday(plan, monday, nil); item.Kind != domain.KindRest {
		t.Errorf("Monday kind = %v, want rest", item.Kind)
	}

	// Wednesday would be "Day 3" under sequential keying, but this is a
	// day-of-week plan, so the key is "Wednesday" and misses.
	wednesday := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
	if item := ResolveToday(plan, wednesday, nil); item.Kind != domain.KindUnresolved {
		t.Errorf("Wednesday kind = %v, want unresolved", item.Kind)
	}
}

// TestSlotKeyDayBoundary verifies that whole-day counting compares calendar
// dates, so a late-evening start date does not shift the day boundary.
func TestSlotKeyDayBoundary(t *testing.T) {
	start := time.Date(2026, 6, 1, 23, 30, 0, 0, time.UTC)
	plan := domain.Plan{StartDate: &start}

	got := SlotKey(plan, time.Date(2026, 6, 2, 0, 10, 0, 0, time.UTC))
	if got != "Day 2" {
		t.Errorf("slot key = %q, want Day 2", got)
	}
}
