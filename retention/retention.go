package retention

import (
	"time"

	"github.com/samber/lo"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// Candidate is a single file considered for retention in one run.
type Candidate struct {
	Modified time.Time
	Path     string
}

// Schedule is an ordered list of offsets back from "now", one per retention
// boundary. The leading zero offset targets the most recent file; the rest
// reach back one day, one week, one month, one year and two years.
type Schedule []time.Duration

var DefaultSchedule = Schedule{0, Day, Week, 4 * Week, 52 * Week, 104 * Week}

// Boundaries resolves the schedule against a concrete clock reading. The
// caller supplies "now" so that runs are reproducible under test. The result
// is strictly decreasing as long as the schedule offsets are increasing.
func (s Schedule) Boundaries(now time.Time) []time.Time {
	return lo.Map(s, func(offset time.Duration, _ int) time.Time {
		return now.Add(-offset)
	})
}

// Partition is the keep/remove labeling of one candidate set. Every candidate
// ends up on exactly one side.
type Partition struct {
	Keep   []Candidate
	Remove []Candidate
}
