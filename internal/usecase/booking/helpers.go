package booking

import (
	"time"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

func weekFromWindows(windows []models.AvailabilityWindow) domain.Week {
	week := make(domain.Week, len(windows))
	for _, w := range windows {
		week[time.Weekday(w.Weekday)] = domain.DayWindow{
			Morning: domain.Period{
				Enabled: w.MorningEnabled,
				Start:   w.MorningStart,
				End:     w.MorningEnd,
			},
			Afternoon: domain.Period{
				Enabled: w.AfternoonEnabled,
				Start:   w.AfternoonStart,
				End:     w.AfternoonEnd,
			},
			Evening: domain.Period{
				Enabled: w.EveningEnabled,
				Start:   w.EveningStart,
				End:     w.EveningEnd,
			},
		}
	}
	return week
}

func busyFromBookings(bookings []models.Booking) []domain.Busy {
	busy := make([]domain.Busy, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, domain.Busy{
			Time:        b.Time,
			DurationMin: b.DurationMin,
			Status:      domain.Status(b.Status),
		})
	}
	return busy
}
