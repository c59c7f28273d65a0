package schedule

import (
	"testing"

	"github.com/claude/planfit/internal/domain"
)

// TestParseDescriptorRest verifies that any descriptor containing "rest"
// (case-insensitive) resolves to a rest day, including the common
// "Rest Session" form.
func TestParseDescriptorRest(t *testing.T) {
	for _, raw := range []string{"Rest Session", "rest", "REST DAY", "  Rest  "} {
		item := ParseDescriptor(raw)
		if item.Kind != domain.KindRest {
			t.Errorf("ParseDescriptor(%q).Kind = %v, want rest", raw, item.Kind)
		}
	}
}

// TestParseDescriptorRestPriority verifies that rest detection precedes both
// the activity encoding and the session-identifier fallback. A session
// literally named with "rest" in it classifies as a rest day; that collision
// is inherited from the stored data and deliberately not fixed.
func TestParseDescriptorRestPriority(t *testing.T) {
	item := ParseDescriptor("Chest and Rest Day")
	if item.Kind != domain.KindRest {
		t.Errorf("kind = %v, want rest", item.Kind)
	}

	// "rest" wins even inside an otherwise valid activity encoding.
	item = ParseDescriptor("activityType:resting;duration:600")
	if item.Kind != domain.KindRest {
		t.Errorf("kind = %v, want rest", item.Kind)
	}
}

// TestParseDescriptorActivity verifies the full activity encoding with all
// recognized keys.
func TestParseDescriptorActivity(t *testing.T) {
	item := ParseDescriptor("activityType:running;distance:5.2;duration:1800;runType:tempo")
	if item.Kind != domain.KindActivity {
		t.Fatalf("kind = %v, want activity", item.Kind)
	}
	a := item.Activity
	if a.Type != "running" {
		t.Errorf("type = %q, want running", a.Type)
	}
	if a.Distance == nil || *a.Distance != 5.2 {
		t.Errorf("distance = %v, want 5.2", a.Distance)
	}
	if a.DurationSeconds == nil || *a.DurationSeconds != 1800 {
		t.Errorf("duration = %v, want 1800", a.DurationSeconds)
	}
	if a.RunType != "tempo" {
		t.Errorf("runType = %q, want tempo", a.RunType)
	}
}

// TestParseDescriptorActivityTolerance verifies the permissive grammar:
// keys match case-insensitively, whitespace around keys and values is
// trimmed, pairs without exactly one colon are skipped, unknown keys are
// ignored, and unparseable numbers leave the field unset.
func TestParseDescriptorActivityTolerance(t *testing.T) {
	item := ParseDescriptor(" ACTIVITYTYPE : swimming ; distance : abc ; sportType:pool ; futureKey:1 ; broken ; a:b:c ")
	if item.Kind != domain.KindActivity {
		t.Fatalf("kind = %v, want activity", item.Kind)
	}
	a := item.Activity
	if a.Type != "swimming" {
		t.Errorf("type = %q, want swimming", a.Type)
	}
	if a.Distance != nil {
		t.Errorf("distance = %v, want nil for unparseable value", *a.Distance)
	}
	if a.SportType != "pool" {
		t.Errorf("sportType = %q, want pool", a.SportType)
	}
}

// TestParseDescriptorActivityMissingType verifies that the activity marker
// without an activityType value fails the parse into an unresolved item.
func TestParseDescriptorActivityMissingType(t *testing.T) {
	for _, raw := range []string{
		"activitytype;distance:5",
		"has activitytype somewhere",
		"activityType: ;distance:5",
	} {
		item := ParseDescriptor(raw)
		if item.Kind != domain.KindUnresolved {
			t.Errorf("ParseDescriptor(%q).Kind = %v, want unresolved", raw, item.Kind)
		}
	}
}

// TestParseDescriptorSessionRef verifies that anything that is neither rest
// nor an activity encoding is kept as a literal session reference for the
// resolver to look up.
func TestParseDescriptorSessionRef(t *testing.T) {
	item := ParseDescriptor("sess_abc123")
	if item.Kind != domain.KindSessionRef {
		t.Fatalf("kind = %v, want session_ref", item.Kind)
	}
	if item.SessionID != "sess_abc123" {
		t.Errorf("sessionID = %q, want sess_abc123", item.SessionID)
	}

	// Surrounding whitespace is not part of the identifier.
	item = ParseDescriptor("  sess_abc123  ")
	if item.SessionID != "sess_abc123" {
		t.Errorf("sessionID = %q, want trimmed sess_abc123", item.SessionID)
	}
}

// TestParseDescriptorEmpty verifies that empty and whitespace-only input
// yields an unresolved item rather than a panic or a phantom reference.
func TestParseDescriptorEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		item := ParseDescriptor(raw)
		if item.Kind != domain.KindUnresolved {
			t.Errorf("ParseDescriptor(%q).Kind = %v, want unresolved", raw, item.Kind)
		}
	}
}
