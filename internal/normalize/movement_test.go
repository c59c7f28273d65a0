package normalize

import (
	"testing"

	"github.com/claude/planfit/internal/domain"
	"github.com/google/go-cmp/cmp"
)

// TestMovementFieldNamePriority verifies the candidate-key order for the
// primary name: the historical "movement1Name" wins over the generic "name".
func TestMovementFieldNamePriority(t *testing.T) {
	m := Movement(map[string]any{
		"movement1Name": "Back Squat",
		"name":          "legacy name",
	})
	if m.PrimaryName != "Back Squat" {
		t.Errorf("primaryName = %q, want Back Squat", m.PrimaryName)
	}

	m = Movement(map[string]any{"name": "Squat"})
	if m.PrimaryName != "Squat" {
		t.Errorf("primaryName = %q, want Squat from fallback key", m.PrimaryName)
	}
}

// TestMovementDefaults verifies the defaults for a minimal record: single,
// not timed, empty (not absent) equipment, and a generated identifier.
func TestMovementDefaults(t *testing.T) {
	m := Movement(map[string]any{"name": "Plank"})
	if m.ID == "" {
		t.Error("id not generated for record without identifier")
	}
	if !m.IsSingle {
		t.Error("isSingle = false, want default true")
	}
	if m.IsTimed {
		t.Error("isTimed = true, want default false")
	}
	if m.EquipmentNeeded == nil || len(m.EquipmentNeeded) != 0 {
		t.Errorf("equipmentNeeded = %v, want empty set", m.EquipmentNeeded)
	}
	if m.IsCompound() {
		t.Error("IsCompound = true without secondary name")
	}
}

// TestMovementCompoundBySecondaryName verifies that a non-empty secondary
// name makes the movement compound even when the record says isSingle: true.
// Display logic relies solely on the presence of the secondary name.
func TestMovementCompoundBySecondaryName(t *testing.T) {
	m := Movement(map[string]any{
		"movement1Name": "Pull Up",
		"movement2Name": "Dip",
		"isSingle":      true,
	})
	if !m.IsCompound() {
		t.Error("IsCompound = false, want true with secondary name present")
	}
	if got := m.DisplayName(); got != "Pull Up + Dip" {
		t.Errorf("displayName = %q, want %q", got, "Pull Up + Dip")
	}
}

// TestMovementEquipmentCollapse verifies the legacy boolean flag collapse:
// true becomes the one-element set, false and absent both become the empty
// set. The absent/false distinction is lost, matching the source schema.
func TestMovementEquipmentCollapse(t *testing.T) {
	m := Movement(map[string]any{"name": "Row", "equipmentNeeded": true})
	want := []string{domain.EquipmentNeededLabel}
	if diff := cmp.Diff(want, m.EquipmentNeeded); diff != "" {
		t.Errorf("equipment mismatch (-want +got):\n%s", diff)
	}

	for _, raw := range []map[string]any{
		{"name": "Row", "equipmentNeeded": false},
		{"name": "Row"},
	} {
		m := Movement(raw)
		if len(m.EquipmentNeeded) != 0 {
			t.Errorf("equipment = %v, want empty for %v", m.EquipmentNeeded, raw)
		}
	}
}

// TestMovementSections verifies that the three set sections parse
// independently and preserve order.
func TestMovementSections(t *testing.T) {
	m := Movement(map[string]any{
		"movement1Name": "Bench + Fly",
		"firstSectionSets": []any{
			map[string]any{"id": "s1", "weight": 80.0, "reps": 8},
			map[string]any{"id": "s2", "weight": 85.0, "reps": 6},
		},
		"secondSectionSets": []any{
			map[string]any{"id": "s3", "weight": 12.5, "reps": 12},
		},
	})
	if len(m.FirstSectionSets) != 2 || len(m.SecondSectionSets) != 1 || len(m.WeavedSets) != 0 {
		t.Fatalf("section lengths = %d/%d/%d, want 2/1/0",
			len(m.FirstSectionSets), len(m.SecondSectionSets), len(m.WeavedSets))
	}
	if m.FirstSectionSets[0].ID != "s1" || m.FirstSectionSets[1].ID != "s2" {
		t.Error("first section order not preserved")
	}
	if m.FirstSectionSets[0].Weight == nil || *m.FirstSectionSets[0].Weight != 80 {
		t.Errorf("weight = %v, want 80", m.FirstSectionSets[0].Weight)
	}
}

// TestSetNumericStringTolerance verifies the worked example: a set dict with
// string-typed reps normalizes to the parsed integer, and garbage numeric
// text silently omits the field.
func TestSetNumericStringTolerance(t *testing.T) {
	s := Set(map[string]any{"reps": "10"})
	if s.Reps == nil || *s.Reps != 10 {
		t.Errorf("reps = %v, want 10 from string", s.Reps)
	}

	s = Set(map[string]any{"weight": "62.5", "reps": "lots"})
	if s.Weight == nil || *s.Weight != 62.5 {
		t.Errorf("weight = %v, want 62.5 from string", s.Weight)
	}
	if s.Reps != nil {
		t.Errorf("reps = %v, want nil for unparseable string", *s.Reps)
	}
}

// TestSetDurationAliases verifies that "duration", "sec", and "time" are
// three spellings of the same field with identical output, and that
// "duration" wins when more than one is present.
func TestSetDurationAliases(t *testing.T) {
	for _, key := range []string{"duration", "sec", "time"} {
		s := Set(map[string]any{key: 45})
		if s.DurationSeconds == nil || *s.DurationSeconds != 45 {
			t.Errorf("durationSeconds via %q = %v, want 45", key, s.DurationSeconds)
		}
	}

	s := Set(map[string]any{"time": 99, "duration": 45})
	if s.DurationSeconds == nil || *s.DurationSeconds != 45 {
		t.Errorf("durationSeconds = %v, want 45 (duration has priority)", s.DurationSeconds)
	}
}

// TestMovementWorkedExample verifies spec behavior for the minimal legacy
// record {name: "Squat", reps: "10"}: the name resolves through the fallback
// key and the stray reps field does not invent any sets.
func TestMovementWorkedExample(t *testing.T) {
	m := Movement(map[string]any{"name": "Squat", "reps": "10"})
	if m.PrimaryName != "Squat" {
		t.Errorf("primaryName = %q, want Squat", m.PrimaryName)
	}
	if len(m.FirstSectionSets) != 0 {
		t.Errorf("firstSectionSets = %v, want empty", m.FirstSectionSets)
	}
}
