package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func tripScheduleService(c *gin.Context) services.TripScheduleService {
	return services.TripScheduleService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/trip-schedules
func GetTripSchedules(c *gin.Context) {
	list, err := tripScheduleService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/trip-schedules/:id
func GetTripScheduleByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	det, err := tripScheduleService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, det)
}

// POST /api/trip-schedules
func CreateTripSchedule(c *gin.Context) {
	var payload services.TripInput
	if !BindJSONOrError(c, &payload) {
		return
	}

	ts, err := tripScheduleService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ts)
}

// DELETE /api/trip-schedules/:id
func DeleteTripSchedule(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := tripScheduleService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_id": id})
}

// GET /api/trip-schedules/:id/sheet — printable PDF schedule sheet.
func GetTripScheduleSheet(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	svc := services.SheetService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateSheet(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
