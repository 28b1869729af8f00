package appointment

import (
	"errors"
	"time"

	"clinicbook/internal/domain/schedule"
)

var (
	ErrPastDate              = errors.New("requested time is in the past")
	ErrClosedDay             = errors.New("clinic is closed on that day")
	ErrOutsideClinicHours    = errors.New("requested time is outside clinic hours")
	ErrUnalignedSlot         = errors.New("requested time is not aligned to the slot granularity")
	ErrInsufficientNotice    = errors.New("requested time is too soon")
	ErrOutsideDoctorSchedule = errors.New("doctor has no availability at the requested time")
)

// BookingRules holds the clinic-wide constants a candidate instant is
// validated against. Both candidate and now must already be expressed in the
// civil zone; a rule never looks at server-local time.
type BookingRules struct {
	ClosedDay      time.Weekday
	OpenHour       int
	CloseHour      int
	SlotMinutes    int
	MinNoticeHours int
}

// Validate applies the rules in a fixed order so that when several rules
// fail, the first violated one is the error the patient sees.
func (r BookingRules) Validate(candidate, now time.Time, agenda schedule.WeeklyAgenda) error {
	if !candidate.After(now) {
		return ErrPastDate
	}

	if candidate.Weekday() == r.ClosedDay {
		return ErrClosedDay
	}

	// The close bound tolerates one slot granularity past closing, nothing
	// beyond that.
	minute := candidate.Hour()*60 + candidate.Minute()
	if minute < r.OpenHour*60 || minute > r.CloseHour*60+r.SlotMinutes {
		return ErrOutsideClinicHours
	}

	if candidate.Minute()%r.SlotMinutes != 0 {
		return ErrUnalignedSlot
	}

	notice := time.Duration(r.MinNoticeHours) * time.Hour
	if candidate.Sub(now) < notice {
		return ErrInsufficientNotice
	}

	if !agenda.Covers(candidate) {
		return ErrOutsideDoctorSchedule
	}

	return nil
}
