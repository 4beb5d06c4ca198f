package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type vehicleTypePayload struct {
	Type string `json:"type"`
}

func vehicleTypeService(c *gin.Context) services.VehicleTypeService {
	return services.VehicleTypeService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/vehicle-types
func GetVehicleTypes(c *gin.Context) {
	types, err := vehicleTypeService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// POST /api/vehicle-types
func CreateVehicleType(c *gin.Context) {
	var payload vehicleTypePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	t, err := vehicleTypeService(c).Create(payload.Type)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// PUT /api/vehicle-types/:id
func UpdateVehicleType(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var payload vehicleTypePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	t, err := vehicleTypeService(c).Update(id, payload.Type)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/vehicle-types/:id
func DeleteVehicleType(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := vehicleTypeService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_id": id})
}
