// README: Vehicle handlers for fleet management and availability listing.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Castanheira1/leopardo-api/internal/modules/vehicle"
	"github.com/Castanheira1/leopardo-api/internal/types"
)

type VehicleHandler struct {
	vehicles *vehicle.Service
	maxPhoto int64
}

func NewVehicleHandler(vehicles *vehicle.Service, maxPhotoBytes int64) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, maxPhoto: maxPhotoBytes}
}

// Create accepts multipart form data: model, plate, and an optional photo.
func (h *VehicleHandler) Create(c *gin.Context) {
	model := c.PostForm("model")
	plate := c.PostForm("plate")
	if model == "" || plate == "" {
		writeError(c, http.StatusBadRequest, "model and plate are required")
		return
	}
	cmd := vehicle.CreateCommand{Model: model, Plate: plate}

	if file, err := c.FormFile("photo"); err == nil {
		if file.Size > h.maxPhoto {
			writeError(c, http.StatusBadRequest, "photo too large")
			return
		}
		f, err := file.Open()
		if err != nil {
			writeError(c, http.StatusBadRequest, "unreadable photo")
			return
		}
		defer f.Close()
		cmd.Photo = f
		cmd.PhotoContentType = file.Header.Get("Content-Type")
	}

	v, err := h.vehicles.Create(c.Request.Context(), cmd)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, vehicleJSON(v))
}

func (h *VehicleHandler) ListAvailable(c *gin.Context) {
	list, err := h.vehicles.ListAvailable(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, vehicleJSON(&list[i]))
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": out})
}

type setActiveReq struct {
	Active *bool `json:"active"`
}

func (h *VehicleHandler) SetActive(c *gin.Context) {
	id := c.Param("id")
	var req setActiveReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		writeError(c, http.StatusBadRequest, "active flag is required")
		return
	}
	if err := h.vehicles.SetActive(c.Request.Context(), types.ID(id), *req.Active); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"active": *req.Active})
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.vehicles.Delete(c.Request.Context(), types.ID(id)); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func vehicleJSON(v *vehicle.Vehicle) gin.H {
	return gin.H{
		"vehicle_id": v.ID,
		"model":      v.Model,
		"plate":      v.Plate,
		"photo_url":  v.PhotoURL,
		"active":     v.Active,
	}
}
