package booking

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository, enough to drive
// the use cases without a database.
type fakeRepo struct {
	provider *models.User
	services map[uint]*models.Service
	windows  []models.AvailabilityWindow
	bookings []*models.Booking
	clients  []*models.Client
	nextID   uint
}

func newFakeRepo(provider *models.User) *fakeRepo {
	return &fakeRepo{
		provider: provider,
		services: map[uint]*models.Service{},
		nextID:   1,
	}
}

func (f *fakeRepo) addService(svc *models.Service) {
	f.services[svc.ID] = svc
}

func (f *fakeRepo) GetProviderByID(_ context.Context, id uint) (*models.User, error) {
	if f.provider == nil || f.provider.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.provider, nil
}

func (f *fakeRepo) GetProviderBySlug(_ context.Context, slug string) (*models.User, error) {
	if f.provider == nil || f.provider.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return f.provider, nil
}

func (f *fakeRepo) GetService(_ context.Context, userID, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (f *fakeRepo) GetOrCreateClient(
	_ context.Context,
	userID uint,
	name, phone, email string,
) (*models.Client, error) {

	for _, c := range f.clients {
		if c.UserID == userID && c.Phone == phone {
			return c, nil
		}
	}

	c := &models.Client{
		ID:     f.nextID,
		UserID: userID,
		Name:   name,
		Phone:  phone,
		Email:  email,
	}
	f.nextID++
	f.clients = append(f.clients, c)
	return c, nil
}

func (f *fakeRepo) ListWindows(_ context.Context, userID uint) ([]models.AvailabilityWindow, error) {
	out := make([]models.AvailabilityWindow, 0, len(f.windows))
	for _, w := range f.windows {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForDate(
	_ context.Context,
	professionalID uint,
	date string,
) ([]models.Booking, error) {

	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBookingIfFree(_ context.Context, b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetBookingForProvider(
	_ context.Context,
	bookingID, professionalID uint,
) (*models.Booking, error) {

	for _, b := range f.bookings {
		if b.ID == bookingID && b.ProfessionalID == professionalID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateBookingIfFree(_ context.Context, b *models.Booking) error {
	for i, existing := range f.bookings {
		if existing.ID == b.ID {
			f.bookings[i] = b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBookingsForMonth(
	_ context.Context,
	professionalID uint,
	year, month int,
) ([]models.Booking, error) {

	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && strings.HasPrefix(b.Date, prefix) {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
