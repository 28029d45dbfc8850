// README: Booking handlers for trip request/start/stop.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Castanheira1/leopardo-api/internal/http/middleware"
	"github.com/Castanheira1/leopardo-api/internal/modules/booking"
	"github.com/Castanheira1/leopardo-api/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type requestTripReq struct {
	VehicleID string `json:"vehicle_id"`
	Reason    string `json:"reason"`
}

func (h *BookingHandler) Request(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}
	var req requestTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.booking.Request(c.Request.Context(), booking.RequestCommand{
		AccountID: id.AccountID,
		VehicleID: types.ID(req.VehicleID),
		Reason:    req.Reason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, tripJSON(t))
}

func (h *BookingHandler) Start(c *gin.Context) {
	t, err := h.booking.Start(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, tripJSON(t))
}

func (h *BookingHandler) Stop(c *gin.Context) {
	t, err := h.booking.Stop(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, tripJSON(t))
}

func tripJSON(t *booking.Trip) gin.H {
	out := gin.H{
		"trip_id":    t.ID,
		"vehicle_id": t.VehicleID,
		"account_id": t.AccountID,
		"reason":     t.Reason,
		"status":     t.Status,
		"created_at": t.CreatedAt,
	}
	if t.StartedAt != nil {
		out["started_at"] = t.StartedAt
	}
	if t.EndedAt != nil {
		out["ended_at"] = t.EndedAt
	}
	if t.DurationDays != nil {
		out["duration_days"] = *t.DurationDays
	}
	if t.DurationHours != nil {
		out["duration_hours"] = *t.DurationHours
	}
	return out
}
