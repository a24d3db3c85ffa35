package booking

import (
	"context"
	"time"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
	"github.com/soloflowhq/soloflow-api/internal/timezone"
)

type RescheduleBookingInput struct {
	ProfessionalID uint
	BookingID      uint

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

type RescheduleBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	if _, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(provider.Timezone),
	); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	b, err := uc.repo.GetBookingForProvider(ctx, in.BookingID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Reschedule(b, in.Date, in.Time); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(in.ProfessionalID))

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ProfessionalID,
		ActorID:  &in.ProfessionalID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
