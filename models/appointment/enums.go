package appointment

// Status is shared by appointments and their performed services.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusInService Status = "in_service"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInService, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once no further status change is expected
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// GetAllStatuses returns all valid statuses
func GetAllStatuses() []Status {
	return []Status{
		StatusScheduled,
		StatusInService,
		StatusCompleted,
		StatusCanceled,
	}
}
