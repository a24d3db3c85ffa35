package booking

import "github.com/soloflowhq/soloflow-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusDeclined    Status = "declined"
	StatusRescheduled Status = "rescheduled"
	StatusCanceled    Status = "canceled"
	StatusEmergency   Status = "emergency"
)

// Blocks reports whether a booking in this status occupies its slot for
// conflict purposes. Pending requests do not block other requests.
func (s Status) Blocks() bool {
	return s == StatusConfirmed || s == StatusEmergency
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending && current != StatusRescheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanDecline(current Status) error {
	if current != StatusPending && current != StatusRescheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current == StatusCanceled || current == StatusDeclined {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReschedule(current Status) error {
	if current == StatusCanceled || current == StatusDeclined {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
