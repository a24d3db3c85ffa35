package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *BookingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetProviderBySlug(
	ctx context.Context,
	slug string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	userID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", serviceID, userID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	userID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND phone = ?", userID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		UserID: userID,
		Name:   name,
		Phone:  phone,
		Email:  email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListWindows(
	ctx context.Context,
	userID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBookingIfFree inserts the booking inside a transaction that first
// locks and re-checks the day's blocking bookings. The partial unique index
// on (professional_id, date, time) catches whatever the lock cannot.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, b, 0); err != nil {
			return err
		}
		return tx.Create(b).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// UpdateBookingIfFree persists a state change. When the new status blocks
// its slot, the same locked conflict check runs first, excluding the booking
// itself.
func (r *BookingGormRepository) UpdateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.Status(b.Status).Blocks() {
			if err := assertSlotFree(tx, b, b.ID); err != nil {
				return err
			}
		}
		return tx.Save(b).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func assertSlotFree(tx *gorm.DB, b *models.Booking, excludeID uint) error {
	start, end, err := domain.Interval(b)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	var taken []models.Booking
	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"professional_id = ? AND date = ? AND status IN ?",
			b.ProfessionalID,
			b.Date,
			[]string{string(domain.StatusConfirmed), string(domain.StatusEmergency)},
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&taken).Error; err != nil {
		return err
	}

	for _, other := range taken {
		os, oe, err := domain.Interval(&other)
		if err != nil {
			continue
		}
		if start < oe && os < end {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForProvider(
	ctx context.Context,
	bookingID uint,
	professionalID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", bookingID, professionalID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForMonth(
	ctx context.Context,
	professionalID uint,
	year int,
	month int,
) ([]models.Booking, error) {

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("professional_id = ? AND date LIKE ?", professionalID, prefix).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
