package normalize

import (
	"github.com/claude/planfit/internal/domain"
)

// Session converts a raw session record into a domain.WorkoutSession.
// It returns nil only when the record carries no session identifier at all;
// every other defect degrades to an empty field. Embedded movements without a
// resolvable primary name are dropped rather than kept as placeholders.
func Session(raw map[string]any) *domain.WorkoutSession {
	id := stringField(raw, "sessionId", "id")
	if id == "" {
		return nil
	}

	s := &domain.WorkoutSession{
		ID:              id,
		Name:            stringField(raw, "name"),
		Description:     stringField(raw, "description"),
		Difficulty:      stringField(raw, "difficulty"),
		EquipmentNeeded: equipmentSet(raw),
		CreatedAt:       timeField(raw, "createdAt"),
	}

	for _, entry := range mapSliceField(raw, "movements", "movementsInSession") {
		if m, ok := embeddedMovement(entry); ok {
			s.Movements = append(s.Movements, m)
		}
	}

	return s
}
