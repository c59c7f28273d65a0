package schedule

import (
	"regexp"
	"time"

	"github.com/claude/planfit/internal/domain"
)

// dayKeyRe matches sequential slot keys: "Day 1", "Day 12".
var dayKeyRe = regexp.MustCompile(`^Day [1-9][0-9]*$`)

// Progress returns the completion fraction of a sequential plan at ref,
// clamped to [0, 1]. Day-of-week plans have no meaningful progress (a weekly
// template never completes), and neither does a plan without any "Day N"
// slots; both return nil.
func Progress(plan domain.Plan, ref time.Time) *float64 {
	if plan.IsDayOfWeek {
		return nil
	}

	totalDays := 0
	for key := range plan.Schedule {
		if dayKeyRe.MatchString(key) {
			totalDays++
		}
	}
	if totalDays == 0 {
		return nil
	}

	currentDay := daysSinceStart(plan, ref) + 1
	if currentDay > totalDays {
		currentDay = totalDays
	}

	p := float64(currentDay) / float64(totalDays)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return &p
}
