package booking

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type DeclineBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewDeclineBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *DeclineBooking {
	return &DeclineBooking{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *DeclineBooking) Execute(
	ctx context.Context,
	professionalID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForProvider(ctx, bookingID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Decline(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(professionalID))

	uc.audit.Dispatch(audit.Event{
		UserID:   professionalID,
		ActorID:  &professionalID,
		Action:   "booking_declined",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
