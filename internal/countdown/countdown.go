package countdown

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// NoEventLabel is shown when nothing is scheduled after now
const NoEventLabel = "এই মুহূর্তে কোনও আসন্ন ইভেন্ট নেই"

// RefreshInterval is how often the countdown is recomputed
const RefreshInterval = time.Minute

// CacheKey is where the current snapshot is cached
const CacheKey = "countdown:next"

// StartLayout is the bn-BD short date and time, before digits are localized
const StartLayout = "2/1/2006, 3:04:05 PM"

var bengaliDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// FormatStart renders t the way the bn-BD locale prints a date and time
func FormatStart(t time.Time) string {
	return bengaliDigits.Replace(t.Format(StartLayout))
}

// Event is a festival event. RRule, when set, is an RFC 5545 rule that
// repeats the event starting at Start.
type Event struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	RRule string    `json:"rrule,omitempty"`
}

// NextStart returns the first start of the event strictly after now, or the
// zero time if there is none
func (e Event) NextStart(now time.Time) time.Time {
	if e.RRule != "" {
		rule, err := rrule.StrToRRule(e.RRule)
		if err == nil {
			rule.DTStart(e.Start)
			return rule.After(now, false)
		}
		// Fallback to the single start if the rule does not parse
	}
	if e.Start.After(now) {
		return e.Start
	}
	return time.Time{}
}

// Upcoming is an event paired with the start the countdown runs to
type Upcoming struct {
	Event Event
	Start time.Time
}

// Next finds the event with the earliest start after now
func Next(events []Event, now time.Time) (Upcoming, bool) {
	var candidates []Upcoming
	for _, e := range events {
		start := e.NextStart(now)
		if start.IsZero() {
			continue
		}
		candidates = append(candidates, Upcoming{Event: e, Start: start})
	}
	if len(candidates) == 0 {
		return Upcoming{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Start.Before(candidates[j].Start)
	})
	return candidates[0], true
}

// Remaining splits the time until to into whole days, hours and minutes.
// Past targets yield zeros.
func Remaining(from, to time.Time) (days, hours, minutes int) {
	diff := to.Sub(from)
	if diff < 0 {
		return 0, 0, 0
	}
	days = int(diff / (24 * time.Hour))
	hours = int((diff % (24 * time.Hour)) / time.Hour)
	minutes = int((diff % time.Hour) / time.Minute)
	return days, hours, minutes
}

// Snapshot is the rendered countdown
type Snapshot struct {
	Found     bool      `json:"found"`
	Name      string    `json:"name,omitempty"`
	Start     time.Time `json:"start,omitempty"`
	Label     string    `json:"label"`
	Countdown string    `json:"countdown"`
	Computed  time.Time `json:"computed"`
}

// Compute renders the countdown to the next event. Start times are shown in
// the location of loc.
func Compute(events []Event, now time.Time, loc *time.Location) Snapshot {
	upcoming, ok := Next(events, now)
	if !ok {
		return Snapshot{Label: NoEventLabel, Computed: now}
	}

	if loc == nil {
		loc = upcoming.Start.Location()
	}

	d, h, m := Remaining(now, upcoming.Start)
	return Snapshot{
		Found:     true,
		Name:      upcoming.Event.Name,
		Start:     upcoming.Start,
		Label:     fmt.Sprintf("%s — %s", upcoming.Event.Name, FormatStart(upcoming.Start.In(loc))),
		Countdown: fmt.Sprintf("আরও %d দিন %d ঘন্টা %d মিনিট", d, h, m),
		Computed:  now,
	}
}
