package booking

import (
	"context"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/dto"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForDate(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		item := dto.BookingListDTO{
			ID:          b.ID,
			Date:        b.Date,
			Time:        b.Time,
			DurationMin: b.DurationMin,
			Status:      b.Status,
			ClientName:  b.ClientName,
		}
		if item.ClientName == "" && b.Client != nil {
			item.ClientName = b.Client.Name
		}
		if b.Service != nil {
			item.ServiceName = b.Service.Name
		}
		out = append(out, item)
	}
	return out
}
