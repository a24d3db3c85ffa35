package handlers

import (
	"time"

	"github.com/soloflowhq/soloflow-api/internal/models"
)

const defaultTimezone = "UTC"

// resolve the provider's official timezone
func locationFromUser(user *models.User) *time.Location {
	if user != nil && user.Timezone != "" {
		if loc, err := time.LoadLocation(user.Timezone); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

func nowForUser(user *models.User) time.Time {
	return time.Now().In(locationFromUser(user))
}

func parseDateForUser(user *models.User, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromUser(user),
	)
}

func parseDateTimeForUser(
	user *models.User,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromUser(user),
	)
}
