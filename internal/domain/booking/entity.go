package booking

import (
	"time"

	"github.com/soloflowhq/soloflow-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Decline(b *models.Booking) error {
	if err := CanDecline(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusDeclined)
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCanceled)
	b.CanceledAt = &now
	return nil
}

func Reschedule(b *models.Booking, date, clock string) error {
	if err := CanReschedule(Status(b.Status)); err != nil {
		return err
	}

	b.Date = date
	b.Time = clock
	b.Status = string(StatusRescheduled)
	b.ConfirmedAt = nil
	return nil
}

// Interval returns the booking's half-open [start, end) interval in minutes
// since midnight.
func Interval(b *models.Booking) (start, end int, err error) {
	start, err = MinutesOfDay(b.Time)
	if err != nil {
		return 0, 0, err
	}

	d := b.DurationMin
	if d <= 0 {
		d = DefaultServiceDurationMin
	}
	return start, start + d, nil
}
