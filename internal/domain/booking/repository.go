package booking

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/models"
)

type Repository interface {
	// -------- Provider --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetProviderBySlug(
		ctx context.Context,
		slug string,
	) (*models.User, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		userID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		userID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Availability --------
	ListWindows(
		ctx context.Context,
		userID uint,
	) ([]models.AvailabilityWindow, error)

	ListBookingsForDate(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.Booking, error)

	// -------- Booking (create / conflict) --------
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForProvider(
		ctx context.Context,
		bookingID uint,
		professionalID uint,
	) (*models.Booking, error)

	UpdateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForMonth(
		ctx context.Context,
		professionalID uint,
		year int,
		month int,
	) ([]models.Booking, error)
}
