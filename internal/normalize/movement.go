package normalize

import (
	"strings"

	"github.com/claude/planfit/internal/domain"
	"github.com/google/uuid"
)

// Movement converts a raw movement record into a domain.Movement. Absent
// fields stay empty; a missing identifier is replaced with a generated one so
// the entity is always addressable.
func Movement(raw map[string]any) domain.Movement {
	m := domain.Movement{
		ID:            stringField(raw, "movementId", "id"),
		PrimaryName:   strings.TrimSpace(stringField(raw, "movement1Name", "name")),
		SecondaryName: strings.TrimSpace(stringField(raw, "movement2Name")),
		IsSingle:      boolField(raw, true, "isSingle"),
		IsTimed:       boolField(raw, false, "isTimed"),
		Category:      stringField(raw, "category"),
		Difficulty:    stringField(raw, "difficulty"),
		Description:   stringField(raw, "description"),

		EquipmentNeeded:   equipmentSet(raw),
		FirstSectionSets:  setList(raw, "firstSectionSets"),
		SecondSectionSets: setList(raw, "secondSectionSets"),
		WeavedSets:        setList(raw, "weavedSets"),
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return m
}

// Set converts a raw set record. Weight, reps, and duration all tolerate
// numeric strings; a set's duration may be stored under "duration", "sec",
// or "time" — first match wins, in that order.
func Set(raw map[string]any) domain.Set {
	s := domain.Set{
		ID:              stringField(raw, "id"),
		Weight:          floatField(raw, "weight"),
		Reps:            intField(raw, "reps"),
		DurationSeconds: intField(raw, "duration", "sec", "time"),
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return s
}

func setList(raw map[string]any, key string) []domain.Set {
	entries := mapSliceField(raw, key)
	if len(entries) == 0 {
		return nil
	}
	sets := make([]domain.Set, 0, len(entries))
	for _, e := range entries {
		sets = append(sets, Set(e))
	}
	return sets
}

// equipmentSet collapses the legacy boolean equipment flag into a set.
// "unspecified" and "not needed" both come out empty; that loss is inherited
// from the source schema and kept.
func equipmentSet(raw map[string]any) []string {
	if boolField(raw, false, "equipmentNeeded") {
		return []string{domain.EquipmentNeededLabel}
	}
	return []string{}
}

// embeddedMovement normalizes one movement entry found inside a session or
// plan record. When the entry has no top-level set arrays, the same fields
// are pulled from the first element of the legacy nested "movements" wrapper,
// filling only what is still empty. Entries without a usable primary name
// yield ok=false and are dropped by the caller.
func embeddedMovement(raw map[string]any) (domain.Movement, bool) {
	m := Movement(raw)

	if len(m.FirstSectionSets) == 0 && len(m.SecondSectionSets) == 0 && len(m.WeavedSets) == 0 {
		if nested := mapSliceField(raw, "movements"); len(nested) > 0 {
			fillFromNested(&m, nested[0])
		}
	}

	if m.PrimaryName == "" {
		return domain.Movement{}, false
	}
	return m, true
}

// fillFromNested copies fields from a legacy nested movement record into m,
// but never overwrites a value already found at the top level.
func fillFromNested(m *domain.Movement, raw map[string]any) {
	inner := Movement(raw)

	if m.PrimaryName == "" {
		m.PrimaryName = inner.PrimaryName
	}
	if m.SecondaryName == "" {
		m.SecondaryName = inner.SecondaryName
	}
	if m.Category == "" {
		m.Category = inner.Category
	}
	if m.Difficulty == "" {
		m.Difficulty = inner.Difficulty
	}
	if m.Description == "" {
		m.Description = inner.Description
	}
	if len(m.FirstSectionSets) == 0 {
		m.FirstSectionSets = inner.FirstSectionSets
	}
	if len(m.SecondSectionSets) == 0 {
		m.SecondSectionSets = inner.SecondSectionSets
	}
	if len(m.WeavedSets) == 0 {
		m.WeavedSets = inner.WeavedSets
	}
}
