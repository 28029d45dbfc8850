// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Castanheira1/leopardo-api/internal/modules/account"
	"github.com/Castanheira1/leopardo-api/internal/modules/booking"
	"github.com/Castanheira1/leopardo-api/internal/modules/vehicle"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps module sentinel errors to response codes. Anything
// unrecognized is a store or collaborator failure; callers get a generic
// message, never internal detail.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, vehicle.ErrBadRequest),
		errors.Is(err, account.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, vehicle.ErrNotFound),
		errors.Is(err, account.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrConflict),
		errors.Is(err, vehicle.ErrDuplicatePlate),
		errors.Is(err, account.ErrDuplicateRegistration):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, account.ErrBadCredentials):
		writeError(c, http.StatusUnauthorized, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
