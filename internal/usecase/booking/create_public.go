package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
	"github.com/soloflowhq/soloflow-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicBookingInput struct {
	ProfessionalID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCreatePublicBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in CreatePublicBookingInput,
) (*models.Booking, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(provider.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := provider.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(provider.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	svc, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// The requested time must be one of the slots currently on offer. That
	// covers the declared window, blocking bookings and the past filter in
	// one pass; the transactional create below re-checks conflicts anyway.
	windows, err := uc.repo.ListWindows(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.ListBookingsForDate(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}

	slots := domain.Slots(domain.SlotRequest{
		Week:               weekFromWindows(windows),
		Date:               start,
		Existing:           busyFromBookings(existing),
		ServiceDurationMin: svc.DurationMin,
		SlotIntervalMin:    provider.SlotIntervalMin,
		Now:                now,
	})

	offered := false
	for _, s := range slots {
		if s.Time == in.Time {
			offered = true
			break
		}
	}
	if !offered {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ProfessionalID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ProfessionalID: in.ProfessionalID,
		ClientID:       &client.ID,
		ServiceID:      &svc.ID,
		Date:           in.Date,
		Time:           in.Time,
		DurationMin:    svc.DurationMin,
		Status:         string(domain.InitialStatus()),
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		ClientEmail:    in.ClientEmail,
		ExternalID:     uuid.NewString(),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(in.ProfessionalID))

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ProfessionalID,
		Action:   "booking_requested",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
