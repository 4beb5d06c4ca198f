package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type vehiclePayload struct {
	VehicleNumber string `json:"vehicle_number"`
	DriverName    string `json:"driver_name"`
}

func vehicleService(c *gin.Context) services.VehicleService {
	return services.VehicleService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	vehicles, err := vehicleService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var payload vehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	v, err := vehicleService(c).Create(payload.VehicleNumber, payload.DriverName)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var payload vehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	v, err := vehicleService(c).Update(id, payload.VehicleNumber, payload.DriverName)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := vehicleService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_id": id})
}
