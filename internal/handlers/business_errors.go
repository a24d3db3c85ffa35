package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
)

// writeBusinessError maps a use-case error onto an HTTP status. Anything that
// is not a business error becomes a 500.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Code {
	case "booking_not_found", "provider_not_found", "template_not_found", "user_not_found":
		httperr.NotFound(c, be.Code, "Resource not found.")
	case "time_conflict", "slot_unavailable", "invalid_state":
		httperr.Conflict(c, be.Code, "The requested time is not available.")
	default:
		httperr.BadRequest(c, be.Code, "Request could not be processed.")
	}
}
