package booking

import (
	"context"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/dto"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(repo domain.Repository) *ListBookingsByMonth {
	return &ListBookingsByMonth{repo: repo}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	professionalID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForMonth(ctx, professionalID, year, month)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}
