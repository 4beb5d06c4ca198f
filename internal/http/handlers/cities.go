package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type cityPayload struct {
	Name string `json:"name"`
}

func cityService(c *gin.Context) services.CityService {
	return services.CityService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/cities
func GetCities(c *gin.Context) {
	cities, err := cityService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// POST /api/cities
func CreateCity(c *gin.Context) {
	var payload cityPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	city, err := cityService(c).Create(payload.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

// PUT /api/cities/:id
func UpdateCity(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var payload cityPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	city, err := cityService(c).Update(id, payload.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// DELETE /api/cities/:id — blocked with 409 while trip schedules still
// reference the city as pickup or dropoff.
func DeleteCity(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := cityService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_id": id})
}
