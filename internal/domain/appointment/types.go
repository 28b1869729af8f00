package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the appointment still occupies its slot. At most
// one active appointment may exist per (doctor, instant) and per
// (patient, instant).
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// transitions is the single arbiter of legal status changes. Cancellation
// guards (ownership, notice window) are enforced on the entity, not here.
var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCancelled: true,
		StatusCompleted: true,
	},
}

func (s Status) CanTransitionTo(to Status) bool {
	return transitions[s][to]
}
