package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/db"
	"github.com/soloflowhq/soloflow-api/internal/infra/repository"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
	autoresp "github.com/soloflowhq/soloflow-api/internal/usecase/autoresponse"
	usecase "github.com/soloflowhq/soloflow-api/internal/usecase/booking"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))

	return gdb
}

func seedProvider(t *testing.T, gdb *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Name:            "Dana",
		Email:           "dana@example.com",
		PasswordHash:    "x",
		Slug:            "dana-studio",
		Timezone:        "UTC",
		SlotIntervalMin: 90,
	}
	require.NoError(t, gdb.Create(&user).Error)
	return &user
}

// testRouter wires the handlers under test with a stub auth layer that pins
// the session to the seeded provider.
func testRouter(t *testing.T, gdb *gorm.DB, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewBookingGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb), zerolog.Nop())

	publicHandler := NewPublicHandler(
		gdb,
		repo,
		usecase.NewGetAvailability(repo, nil),
		usecase.NewCreatePublicBooking(repo, dispatcher, nil),
	)
	availabilityHandler := NewAvailabilityHandler(gdb, nil)
	messageHandler := NewMessageHandler(
		gdb,
		autoresp.NewGetDefaultTemplate(repository.NewAutoResponseGormRepository(gdb)),
	)

	r := gin.New()

	pub := r.Group("/api/public/:slug")
	pub.GET("/profile", publicHandler.Profile)
	pub.GET("/services", publicHandler.Services)
	pub.GET("/availability", publicHandler.Availability)

	me := r.Group("/api/me")
	me.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
	})
	me.GET("/availability", availabilityHandler.Get)
	me.PUT("/availability", availabilityHandler.Update)
	me.POST("/messages", messageHandler.CreateInbound)

	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicProfile(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)
	r := testRouter(t, gdb, user.ID)

	w := doJSON(r, http.MethodGet, "/api/public/dana-studio/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got PublicProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "dana-studio", got.Slug)

	// No business name set, the account name stands in.
	assert.Equal(t, "Dana", got.BusinessName)
}

func TestPublicProfileUnknownSlug(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)
	r := testRouter(t, gdb, user.ID)

	w := doJSON(r, http.MethodGet, "/api/public/nobody/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicServicesListsActiveOnly(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)

	require.NoError(t, gdb.Create(&models.Service{
		UserID: user.ID, Name: "Session", DurationMin: 60, Active: true,
	}).Error)
	require.NoError(t, gdb.Create(&models.Service{
		UserID: user.ID, Name: "Retired", DurationMin: 30, Active: false,
	}).Error)

	r := testRouter(t, gdb, user.ID)

	w := doJSON(r, http.MethodGet, "/api/public/dana-studio/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []PublicServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Session", got[0].Name)
}

func TestPublicAvailability(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)

	require.NoError(t, gdb.Create(&models.AvailabilityWindow{
		UserID:  user.ID,
		Weekday: 1, // Monday

		MorningEnabled: true,
		MorningStart:   "09:00",
		MorningEnd:     "12:00",

		AfternoonEnabled: true,
		AfternoonStart:   "13:00",
		AfternoonEnd:     "17:30",
	}).Error)

	r := testRouter(t, gdb, user.ID)

	// 2027-09-06 is a Monday.
	w := doJSON(r, http.MethodGet,
		"/api/public/dana-studio/availability?date=2027-09-06", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Date  string `json:"date"`
		Slots []struct {
			Time string `json:"time"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, "2027-09-06", got.Date)
	require.Len(t, got.Slots, 5)
	assert.Equal(t, "09:00", got.Slots[0].Time)
}

func TestPublicAvailabilityBadDate(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)
	r := testRouter(t, gdb, user.ID)

	w := doJSON(r, http.MethodGet,
		"/api/public/dana-studio/availability?date=tomorrow", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicAvailabilityDurationParam(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)

	require.NoError(t, gdb.Create(&models.AvailabilityWindow{
		UserID:  user.ID,
		Weekday: 1,

		MorningEnabled: true,
		MorningStart:   "09:00",
		MorningEnd:     "12:00",

		AfternoonEnabled: true,
		AfternoonStart:   "13:00",
		AfternoonEnd:     "17:30",
	}).Error)

	r := testRouter(t, gdb, user.ID)

	w := doJSON(r, http.MethodGet,
		"/api/public/dana-studio/availability?date=2027-09-06&duration=120", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Slots []struct {
			Time string `json:"time"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	// 10:30 and 16:00 cannot host two hours before their period closes.
	require.Len(t, got.Slots, 3)
	assert.Equal(t, "09:00", got.Slots[0].Time)
	assert.Equal(t, "13:00", got.Slots[1].Time)
	assert.Equal(t, "14:30", got.Slots[2].Time)
}

func TestPublicAvailabilityBadDuration(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)
	r := testRouter(t, gdb, user.ID)

	for _, raw := range []string{"soon", "-30", "0"} {
		w := doJSON(r, http.MethodGet,
			"/api/public/dana-studio/availability?date=2027-09-06&duration="+raw, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "duration=%s", raw)
	}
}

func TestUpdateAvailabilityReplacesSchedule(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)

	require.NoError(t, gdb.Create(&models.AvailabilityWindow{
		UserID: user.ID, Weekday: 5, MorningEnabled: true,
		MorningStart: "09:00", MorningEnd: "12:00",
	}).Error)

	r := testRouter(t, gdb, user.ID)

	monday, tuesday := 1, 2
	w := doJSON(r, http.MethodPut, "/api/me/availability", gin.H{
		"days": []gin.H{
			{
				"weekday":         &monday,
				"morning_enabled": true,
				"morning_start":   "08:00",
				"morning_end":     "11:00",
			},
			{
				"weekday":           &tuesday,
				"afternoon_enabled": true,
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var windows []models.AvailabilityWindow
	require.NoError(t, gdb.
		Where("user_id = ?", user.ID).
		Order("weekday ASC").
		Find(&windows).Error)

	// Friday is gone, the submitted days replaced it.
	require.Len(t, windows, 2)
	assert.Equal(t, 1, windows[0].Weekday)
	assert.Equal(t, "08:00", windows[0].MorningStart)
	assert.Equal(t, 2, windows[1].Weekday)

	// Omitted bounds fall back to the stock clock times.
	assert.Equal(t, "13:00", windows[1].AfternoonStart)
	assert.Equal(t, "17:30", windows[1].AfternoonEnd)
}

func TestUpdateAvailabilityRejectsDuplicateWeekday(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)
	r := testRouter(t, gdb, user.ID)

	monday := 1
	w := doJSON(r, http.MethodPut, "/api/me/availability", gin.H{
		"days": []gin.H{
			{"weekday": &monday, "morning_enabled": true},
			{"weekday": &monday, "afternoon_enabled": true},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInboundMessageReplyFillsNextBooking(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)

	client := models.Client{UserID: user.ID, Name: "Dana", Phone: "+15550001111"}
	require.NoError(t, gdb.Create(&client).Error)

	require.NoError(t, gdb.Create(&models.AutoResponse{
		UserID:    user.ID,
		Type:      "confirmation",
		Name:      "Confirmation",
		Content:   "{client}, see you on {date} at {time}.",
		IsDefault: true,
	}).Error)

	require.NoError(t, gdb.Create(&models.Booking{
		ProfessionalID: user.ID,
		ClientID:       &client.ID,
		Date:           "2027-09-06",
		Time:           "13:00",
		DurationMin:    60,
		Status:         "confirmed",
		ExternalID:     uuid.NewString(),
	}).Error)

	r := testRouter(t, gdb, user.ID)

	w := doJSON(r, http.MethodPost, "/api/me/messages", gin.H{
		"client_id": client.ID,
		"category":  "confirmation",
		"body":      "Is my slot still on?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got InboundMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Reply)
	assert.Equal(t, "Dana, see you on 2027-09-06 at 13:00.", got.Reply.Body)
}

func TestInboundMessageReplyKeepsTokensWithoutBooking(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)

	client := models.Client{UserID: user.ID, Name: "Dana"}
	require.NoError(t, gdb.Create(&client).Error)

	require.NoError(t, gdb.Create(&models.AutoResponse{
		UserID:    user.ID,
		Type:      "general",
		Name:      "General",
		Content:   "Hi {client}, next visit {date} at {time}.",
		IsDefault: true,
	}).Error)

	r := testRouter(t, gdb, user.ID)

	w := doJSON(r, http.MethodPost, "/api/me/messages", gin.H{
		"client_id": client.ID,
		"body":      "Hello!",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got InboundMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Reply)
	assert.Equal(t, "Hi Dana, next visit {date} at {time}.", got.Reply.Body)
}

func TestUpdateAvailabilityRejectsInvertedPeriod(t *testing.T) {
	gdb := newTestDB(t)
	user := seedProvider(t, gdb)
	r := testRouter(t, gdb, user.ID)

	monday := 1
	w := doJSON(r, http.MethodPut, "/api/me/availability", gin.H{
		"days": []gin.H{
			{
				"weekday":         &monday,
				"morning_enabled": true,
				"morning_start":   "12:00",
				"morning_end":     "09:00",
			},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
