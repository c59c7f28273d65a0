package domain

// ScheduleItemKind discriminates the resolved outcome for a date under a plan.
type ScheduleItemKind int

const (
	// KindUnresolved means the slot was absent or could not be interpreted.
	KindUnresolved ScheduleItemKind = iota
	// KindRest is an explicit rest day.
	KindRest
	// KindActivity is a non-gym activity (run, swim, sport).
	KindActivity
	// KindSessionRef is a session identifier not yet looked up in a catalog.
	// The resolver turns it into KindSession or KindUnresolved.
	KindSessionRef
	// KindSession is a fully resolved workout session.
	KindSession
)

// String returns the kind name used in JSON responses and logs.
func (k ScheduleItemKind) String() string {
	switch k {
	case KindRest:
		return "rest"
	case KindActivity:
		return "activity"
	case KindSessionRef:
		return "session_ref"
	case KindSession:
		return "session"
	default:
		return "unresolved"
	}
}

// MarshalText renders the kind name, so ScheduleItem JSON carries "rest"
// rather than a bare enum number.
func (k ScheduleItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Activity describes a scheduled non-session activity. Distance and
// DurationSeconds are nil when the descriptor omits them.
type Activity struct {
	Type            string   `json:"type"`
	Distance        *float64 `json:"distance,omitempty"`
	DurationSeconds *float64 `json:"durationSeconds,omitempty"`
	RunType         string   `json:"runType,omitempty"`
	SportType       string   `json:"sportType,omitempty"`
}

// ScheduleItem is the tagged result of resolving one schedule slot. Exactly
// the field matching Kind is set; the rest are zero.
type ScheduleItem struct {
	Kind      ScheduleItemKind `json:"kind"`
	Session   *WorkoutSession  `json:"session,omitempty"`
	Activity  *Activity        `json:"activity,omitempty"`
	SessionID string           `json:"sessionId,omitempty"`
}

// Unresolved returns the terminal "nothing usable for this date" item.
func Unresolved() ScheduleItem {
	return ScheduleItem{Kind: KindUnresolved}
}

// RestItem returns a rest-day item.
func RestItem() ScheduleItem {
	return ScheduleItem{Kind: KindRest}
}

// ActivityItem wraps a parsed activity descriptor.
func ActivityItem(a Activity) ScheduleItem {
	return ScheduleItem{Kind: KindActivity, Activity: &a}
}

// SessionRefItem wraps a session identifier pending catalog lookup.
func SessionRefItem(id string) ScheduleItem {
	return ScheduleItem{Kind: KindSessionRef, SessionID: id}
}

// SessionItem wraps a resolved workout session.
func SessionItem(s WorkoutSession) ScheduleItem {
	return ScheduleItem{Kind: KindSession, Session: &s}
}
