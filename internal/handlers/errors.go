package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/middleware"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

var businessMessages = map[string]string{
	domain.CodeNoServicesSelected: "Please select at least one service.",
	domain.CodePastDate:           "Appointments cannot be booked in the past.",
	domain.CodeTimeConflict:       "This time slot is already booked.",
	domain.CodeNotFound:           "Appointment not found.",
	catalog.CodeServiceNotFound:   "Service not found.",
	catalog.CodeUnknownService:    "One of the selected services no longer exists.",
}

// writeError maps business errors to 400/404 and anything else to 500.
func writeError(c *gin.Context, err error) {
	code, ok := httperr.Code(err)
	if !ok {
		log.Printf("request %s failed: %v", c.GetString(middleware.ContextRequestID), err)
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg := businessMessages[code]
	switch code {
	case domain.CodeNotFound, catalog.CodeServiceNotFound:
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

// mustSession reads the request session, answering 401 when absent.
func mustSession(c *gin.Context) (session.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Unauthorized(c, "missing_session", "Start a session first.")
		return session.Session{}, false
	}
	return sess, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.HTTPError{
		Code:    "invalid_request",
		Message: err.Error(),
	})
}
