// Package domain holds the canonical workout types: movements, sets,
// sessions, plans, and the resolved schedule item. Every value is built once
// by the normalizer (or the schedule resolver) and treated as immutable;
// callers that want a changed copy construct a new value.
package domain

import (
	"strings"
	"time"
)

// EquipmentNeededLabel is the single entry used when a legacy boolean
// equipment flag collapses into the equipment set.
const EquipmentNeededLabel = "Equipment needed"

// Set is one unit of work inside a movement. Whether Reps or DurationSeconds
// is meaningful follows the owning movement's IsTimed flag; the other field
// is display noise, not an error.
type Set struct {
	ID              string   `json:"id"`
	Weight          *float64 `json:"weight,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DurationSeconds *int     `json:"durationSeconds,omitempty"`
}

// Movement is a single exercise definition, possibly compound (two
// sub-movements) and possibly multi-section (separate, superset, or
// alternating set groups).
type Movement struct {
	ID            string `json:"id"`
	PrimaryName   string `json:"primaryName"`
	SecondaryName string `json:"secondaryName,omitempty"`

	// IsSingle defaults to true; false implies a compound movement.
	IsSingle bool `json:"isSingle"`
	// IsTimed selects duration-based sets over reps-based sets.
	IsTimed bool `json:"isTimed"`

	Category    string `json:"category,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Description string `json:"description,omitempty"`

	EquipmentNeeded []string `json:"equipmentNeeded"`

	FirstSectionSets  []Set `json:"firstSectionSets,omitempty"`
	SecondSectionSets []Set `json:"secondSectionSets,omitempty"`
	WeavedSets        []Set `json:"weavedSets,omitempty"`
}

// IsCompound reports whether the movement pairs two exercises. Presence of a
// secondary name is authoritative, regardless of the IsSingle flag stored in
// the source record.
func (m Movement) IsCompound() bool {
	return strings.TrimSpace(m.SecondaryName) != ""
}

// DisplayName returns the name shown for this movement:
// "primary + secondary" for compound movements, the primary name otherwise.
func (m Movement) DisplayName() string {
	if m.IsCompound() {
		return m.PrimaryName + " + " + m.SecondaryName
	}
	return m.PrimaryName
}

// WorkoutSession is a named, ordered collection of movements. Movement order
// is execution order.
type WorkoutSession struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Difficulty      string     `json:"difficulty,omitempty"`
	EquipmentNeeded []string   `json:"equipmentNeeded"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	Movements       []Movement `json:"movements"`
}

// Rating aggregates user ratings of a plan.
type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Plan is a multi-day training program. Schedule maps a slot key to the raw
// descriptor string stored by the backend; slot keys are either weekday names
// ("Monday".."Sunday") or "Day N" depending on IsDayOfWeek.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Category    string `json:"category,omitempty"`
	// Duration is free text from the source ("8 weeks"), not parsed.
	Duration string   `json:"duration,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Rating   Rating   `json:"rating"`

	Schedule    map[string]string `json:"schedule"`
	IsDayOfWeek bool              `json:"isDayOfWeek"`
	// StartDate anchors sequential plans; nil means the reference date is
	// treated as Day 1.
	StartDate *time.Time `json:"startDate,omitempty"`
}
