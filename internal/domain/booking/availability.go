package booking

import (
	"fmt"
	"sort"
	"time"
)

// Period is one togglable block of a weekday (morning, afternoon, evening)
// with its own clock-time bounds.
type Period struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "HH:MM"
	End     string `json:"end"`   // "HH:MM"
}

type DayWindow struct {
	Morning   Period `json:"morning"`
	Afternoon Period `json:"afternoon"`
	Evening   Period `json:"evening"`
}

// Week maps a weekday to its declared window. A missing entry means the
// provider does not work that day.
type Week map[time.Weekday]DayWindow

// DefaultDayWindow carries the stock period bounds. With the default 90
// minute slot interval they yield the anchors 09:00/10:30, 13:00/14:30/16:00
// and 17:30/19:00.
func DefaultDayWindow() DayWindow {
	return DayWindow{
		Morning:   Period{Start: "09:00", End: "12:00"},
		Afternoon: Period{Start: "13:00", End: "17:30"},
		Evening:   Period{Start: "17:30", End: "20:30"},
	}
}

// Busy is an already-taken interval on the target date.
type Busy struct {
	Time        string
	DurationMin int
	Status      Status
}

type Slot struct {
	Time      string `json:"time"`
	Formatted string `json:"formatted"`
}

const (
	DefaultServiceDurationMin = 60
	DefaultSlotIntervalMin    = 90
)

// SlotRequest is the full input of the availability computation.
type SlotRequest struct {
	Week     Week
	Date     time.Time
	Existing []Busy

	// ServiceDurationMin sizes the candidate interval and enables the
	// fit-check against the period end. Zero means 60 with no fit-check.
	ServiceDurationMin int

	// SlotIntervalMin is the stride between anchors. Zero means 90.
	SlotIntervalMin int

	// Now enables the past-anchor filter when it falls on Date's day.
	Now time.Time
}

// Slots computes the offerable anchors for one date. Pure function: missing
// or fully-disabled windows produce an empty list, never an error.
func Slots(req SlotRequest) []Slot {
	day, ok := req.Week[req.Date.Weekday()]
	if !ok {
		return []Slot{}
	}

	interval := req.SlotIntervalMin
	if interval <= 0 {
		interval = DefaultSlotIntervalMin
	}

	duration := req.ServiceDurationMin
	fitCheck := duration > 0
	if duration <= 0 {
		duration = DefaultServiceDurationMin
	}

	busy := make([][2]int, 0, len(req.Existing))
	for _, b := range req.Existing {
		if !b.Status.Blocks() {
			continue
		}
		start, err := MinutesOfDay(b.Time)
		if err != nil {
			continue
		}
		d := b.DurationMin
		if d <= 0 {
			d = DefaultServiceDurationMin
		}
		busy = append(busy, [2]int{start, start + d})
	}

	nowMin := -1
	if !req.Now.IsZero() && sameDay(req.Now, req.Date) {
		nowMin = req.Now.Hour()*60 + req.Now.Minute()
	}

	var anchors []int
	for _, p := range []Period{day.Morning, day.Afternoon, day.Evening} {
		anchors = appendPeriodAnchors(anchors, p, interval, duration, fitCheck)
	}

	sort.Ints(anchors)

	slots := make([]Slot, 0, len(anchors))
	prev := -1
	for _, a := range anchors {
		if a == prev {
			continue
		}
		prev = a

		if nowMin >= 0 && a < nowMin {
			continue
		}
		if overlapsAny(a, a+duration, busy) {
			continue
		}

		slots = append(slots, Slot{
			Time:      FormatMinutes(a),
			Formatted: formatKitchen(a),
		})
	}

	return slots
}

func appendPeriodAnchors(anchors []int, p Period, interval, duration int, fitCheck bool) []int {
	if !p.Enabled {
		return anchors
	}

	start, err := MinutesOfDay(p.Start)
	if err != nil {
		return anchors
	}
	end, err := MinutesOfDay(p.End)
	if err != nil || end <= start {
		return anchors
	}

	for a := start; a < end; a += interval {
		if fitCheck && a+duration > end {
			break
		}
		anchors = append(anchors, a)
	}
	return anchors
}

// overlapsAny uses the half-open interval test: [a,b) and [c,d) overlap
// iff a < d && c < b.
func overlapsAny(start, end int, busy [][2]int) bool {
	for _, b := range busy {
		if start < b[1] && b[0] < end {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MinutesOfDay parses "HH:MM" into minutes since midnight.
func MinutesOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func formatKitchen(min int) string {
	return time.Date(0, 1, 1, min/60, min%60, 0, 0, time.UTC).Format("3:04 PM")
}
