// README: Reporting handlers for listings, stats, and the completed-trips export.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Castanheira1/leopardo-api/internal/export"
	"github.com/Castanheira1/leopardo-api/internal/http/middleware"
	"github.com/Castanheira1/leopardo-api/internal/modules/reporting"
)

type ReportingHandler struct {
	reports *reporting.Service
}

func NewReportingHandler(reports *reporting.Service) *ReportingHandler {
	return &ReportingHandler{reports: reports}
}

func (h *ReportingHandler) ListOwn(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}
	trips, err := h.reports.ListOwn(c.Request.Context(), id.AccountID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(trips))
	for _, t := range trips {
		row := gin.H{
			"trip_id":       t.TripID,
			"status":        t.Status,
			"reason":        t.Reason,
			"vehicle_model": t.VehicleModel,
			"vehicle_plate": t.VehiclePlate,
			"created_at":    t.CreatedAt,
			"elapsed_hours": t.Elapsed.Hours(),
		}
		if t.StartedAt != nil {
			row["started_at"] = t.StartedAt
		}
		if t.EndedAt != nil {
			row["ended_at"] = t.EndedAt
		}
		out = append(out, row)
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": out})
}

func (h *ReportingHandler) ListPending(c *gin.Context) {
	trips, err := h.reports.ListPending(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(trips))
	for _, t := range trips {
		out = append(out, gin.H{
			"trip_id":       t.TripID,
			"reason":        t.Reason,
			"vehicle_model": t.VehicleModel,
			"vehicle_plate": t.VehiclePlate,
			"registration":  t.Registration,
			"created_at":    t.CreatedAt,
			"age_minutes":   t.Age.Minutes(),
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": out})
}

func (h *ReportingHandler) ListActive(c *gin.Context) {
	trips, err := h.reports.ListActive(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(trips))
	for _, t := range trips {
		out = append(out, gin.H{
			"trip_id":       t.TripID,
			"reason":        t.Reason,
			"vehicle_model": t.VehicleModel,
			"vehicle_plate": t.VehiclePlate,
			"registration":  t.Registration,
			"started_at":    t.StartedAt.Format(time.RFC3339),
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": out})
}

func (h *ReportingHandler) Stats(c *gin.Context) {
	st, err := h.reports.Stats(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, st)
}

var exportColumns = []string{
	"Registration", "Vehicle", "Plate", "Reason", "Started", "Ended", "Days", "Hours",
}

// ExportCompleted streams the finalized-trip workbook as a download.
func (h *ReportingHandler) ExportCompleted(c *gin.Context) {
	rows, err := h.reports.ListCompleted(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Registration,
			r.VehicleModel,
			r.VehiclePlate,
			r.Reason,
			r.StartedAt.Format("2006-01-02 15:04"),
			r.EndedAt.Format("2006-01-02 15:04"),
			r.DurationDays,
			r.DurationHours,
		})
	}

	filename := fmt.Sprintf("completed-trips-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteXLSX(c.Writer, "Completed Trips", exportColumns, cells); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
