package booking

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
	"github.com/soloflowhq/soloflow-api/internal/timezone"
)

type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	professionalID uint,
	bookingID uint,
) (*models.Booking, error) {

	provider, err := uc.repo.GetProviderByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForProvider(ctx, bookingID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(provider.Timezone)
	if err := domain.Confirm(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(professionalID))

	uc.audit.Dispatch(audit.Event{
		UserID:   professionalID,
		ActorID:  &professionalID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
