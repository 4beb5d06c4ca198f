package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type timeSlotPayload struct {
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

func timeSlotService(c *gin.Context) services.TimeSlotService {
	return services.TimeSlotService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/time-slots
func GetTimeSlots(c *gin.Context) {
	slots, err := timeSlotService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// POST /api/time-slots
func CreateTimeSlot(c *gin.Context) {
	var payload timeSlotPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	slot, err := timeSlotService(c).Create(payload.DepartureTime, payload.ArrivalTime)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// DELETE /api/time-slots/:id
func DeleteTimeSlot(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := timeSlotService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_id": id})
}
