package booking

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/db"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))

	return audit.NewDispatcher(audit.New(gdb), zerolog.Nop())
}

func bookableRepo(t *testing.T) *fakeRepo {
	t.Helper()

	repo := newFakeRepo(testProvider())
	repo.windows = append(repo.windows, mondayWindow(1))
	repo.addService(&models.Service{
		ID:          3,
		UserID:      1,
		Name:        "Session",
		DurationMin: 60,
	})
	return repo
}

func TestCreatePublicBookingInvalidDate(t *testing.T) {
	repo := bookableRepo(t)
	uc := NewCreatePublicBooking(repo, newTestDispatcher(t), nil)

	_, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana",
		ServiceID:      3,
		Date:           "07-09-2027",
		Time:           "13:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreatePublicBookingTooSoon(t *testing.T) {
	repo := bookableRepo(t)
	uc := NewCreatePublicBooking(repo, newTestDispatcher(t), nil)

	_, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana",
		ServiceID:      3,
		Date:           "2020-01-06",
		Time:           "13:00",
	})

	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreatePublicBookingUnknownService(t *testing.T) {
	repo := bookableRepo(t)
	uc := NewCreatePublicBooking(repo, newTestDispatcher(t), nil)

	_, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana",
		ServiceID:      42,
		Date:           "2027-09-06",
		Time:           "13:00",
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreatePublicBookingOffAnchorTime(t *testing.T) {
	repo := bookableRepo(t)
	uc := NewCreatePublicBooking(repo, newTestDispatcher(t), nil)

	_, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana",
		ServiceID:      3,
		Date:           "2027-09-06",
		Time:           "13:37",
	})

	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreatePublicBookingTakenSlot(t *testing.T) {
	repo := bookableRepo(t)
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:             50,
		ProfessionalID: 1,
		Date:           "2027-09-06",
		Time:           "13:00",
		DurationMin:    60,
		Status:         "confirmed",
	})

	uc := NewCreatePublicBooking(repo, newTestDispatcher(t), nil)

	_, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana",
		ServiceID:      3,
		Date:           "2027-09-06",
		Time:           "13:00",
	})

	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreatePublicBookingSuccess(t *testing.T) {
	repo := bookableRepo(t)
	uc := NewCreatePublicBooking(repo, newTestDispatcher(t), nil)

	b, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana",
		ClientPhone:    "+15550001111",
		ClientEmail:    "dana@example.com",
		ServiceID:      3,
		Date:           "2027-09-06",
		Time:           "13:00",
		Notes:          "first visit",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "2027-09-06", b.Date)
	assert.Equal(t, "13:00", b.Time)
	assert.Equal(t, 60, b.DurationMin)
	assert.NotEmpty(t, b.ExternalID)
	require.NotNil(t, b.ClientID)

	// The caller was stored as a client of the provider.
	require.Len(t, repo.clients, 1)
	assert.Equal(t, "Dana", repo.clients[0].Name)
}

func TestCreatePublicBookingReusesClientByPhone(t *testing.T) {
	repo := bookableRepo(t)
	uc := NewCreatePublicBooking(repo, newTestDispatcher(t), nil)
	ctx := context.Background()

	first, err := uc.Execute(ctx, CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana",
		ClientPhone:    "+15550001111",
		ServiceID:      3,
		Date:           "2027-09-06",
		Time:           "13:00",
	})
	require.NoError(t, err)

	second, err := uc.Execute(ctx, CreatePublicBookingInput{
		ProfessionalID: 1,
		ClientName:     "Dana D.",
		ClientPhone:    "+15550001111",
		ServiceID:      3,
		Date:           "2027-09-06",
		Time:           "14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, *first.ClientID, *second.ClientID)
	assert.Len(t, repo.clients, 1)
}

func TestBookingLifecycle(t *testing.T) {
	repo := bookableRepo(t)
	dispatcher := newTestDispatcher(t)
	ctx := context.Background()

	created, err := NewCreatePublicBooking(repo, dispatcher, nil).
		Execute(ctx, CreatePublicBookingInput{
			ProfessionalID: 1,
			ClientName:     "Dana",
			ClientPhone:    "+15550001111",
			ServiceID:      3,
			Date:           "2027-09-06",
			Time:           "13:00",
		})
	require.NoError(t, err)

	confirmed, err := NewConfirmBooking(repo, dispatcher, nil).
		Execute(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)

	moved, err := NewRescheduleBooking(repo, dispatcher, nil).
		Execute(ctx, RescheduleBookingInput{
			ProfessionalID: 1,
			BookingID:      created.ID,
			Date:           "2027-09-06",
			Time:           "14:30",
		})
	require.NoError(t, err)
	assert.Equal(t, "rescheduled", moved.Status)
	assert.Equal(t, "14:30", moved.Time)
	assert.Nil(t, moved.ConfirmedAt)

	canceled, err := NewCancelBooking(repo, dispatcher, nil).
		Execute(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "canceled", canceled.Status)

	// A canceled booking accepts no further transitions.
	_, err = NewConfirmBooking(repo, dispatcher, nil).
		Execute(ctx, 1, created.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDeclinePending(t *testing.T) {
	repo := bookableRepo(t)
	dispatcher := newTestDispatcher(t)
	ctx := context.Background()

	created, err := NewCreatePublicBooking(repo, dispatcher, nil).
		Execute(ctx, CreatePublicBookingInput{
			ProfessionalID: 1,
			ClientName:     "Dana",
			ServiceID:      3,
			Date:           "2027-09-06",
			Time:           "13:00",
		})
	require.NoError(t, err)

	declined, err := NewDeclineBooking(repo, dispatcher, nil).
		Execute(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "declined", declined.Status)
}

func TestConfirmUnknownBooking(t *testing.T) {
	repo := bookableRepo(t)

	_, err := NewConfirmBooking(repo, newTestDispatcher(t), nil).
		Execute(context.Background(), 1, 404)

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
