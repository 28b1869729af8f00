package schedule

import "time"

// Window is one recurring availability span for a doctor on a given weekday.
// Start and End are minutes from midnight in the civil zone; End is exclusive.
type Window struct {
	DayOfWeek   time.Weekday
	StartMinute int
	EndMinute   int
	SlotMinutes int
}

// Covers reports whether the candidate instant (already expressed in the
// civil zone) falls inside this window.
func (w Window) Covers(t time.Time) bool {
	if t.Weekday() != w.DayOfWeek {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	return minute >= w.StartMinute && minute < w.EndMinute
}

// WeeklyAgenda is a doctor's full set of recurring windows.
type WeeklyAgenda []Window

func (a WeeklyAgenda) Covers(t time.Time) bool {
	for _, w := range a {
		if w.Covers(t) {
			return true
		}
	}
	return false
}

func (a WeeklyAgenda) IsEmpty() bool {
	return len(a) == 0
}
