package booking

import (
	"context"
	"time"

	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/timezone"
)

type AvailabilityInput struct {
	ProfessionalID uint

	// ServiceID wins over DurationMin when both are set.
	ServiceID   uint
	DurationMin int

	Date time.Time
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewGetAvailability(repo domain.Repository, c *cache.Cache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.Slot, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	duration := in.DurationMin
	if in.ServiceID != 0 {
		svc, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		duration = svc.DurationMin
	}

	dateStr := in.Date.Format("2006-01-02")

	key := cache.AvailabilityKey(in.ProfessionalID, dateStr, duration)
	var cached []domain.Slot
	if uc.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	windows, err := uc.repo.ListWindows(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, in.ProfessionalID, dateStr)
	if err != nil {
		return nil, err
	}

	slots := domain.Slots(domain.SlotRequest{
		Week:               weekFromWindows(windows),
		Date:               in.Date,
		Existing:           busyFromBookings(bookings),
		ServiceDurationMin: duration,
		SlotIntervalMin:    provider.SlotIntervalMin,
		Now:                timezone.NowIn(provider.Timezone),
	})

	uc.cache.SetJSON(ctx, key, slots)

	return slots, nil
}
