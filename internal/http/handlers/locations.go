package handlers

import (
	"net/http"

	intconfig "dealership/internal/config"
	"dealership/internal/domain/models"
	"dealership/internal/http/middleware"
	"dealership/internal/repositories"
	"dealership/internal/services"

	"github.com/gin-gonic/gin"
)

func locationService(c *gin.Context) services.LocationService {
	return services.LocationService{
		LocationRepo: repositories.SalesLocationRepository{DB: intconfig.DB},
		Hub:          hub,
		RequestID:    middleware.GetRequestID(c),
	}
}

type locationPingPayload struct {
	SalesDocumentID string  `json:"salesDocumentId"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	RecordedAt      string  `json:"recordedAt"`
}

// POST /api/sales-locations
func CreateSalesLocation(c *gin.Context) {
	var payload locationPingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	loc, err := locationService(c).RecordPing(models.SalesLocation{
		SalesDocumentID: payload.SalesDocumentID,
		Latitude:        payload.Latitude,
		Longitude:       payload.Longitude,
		RecordedAt:      payload.RecordedAt,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusCreated, loc)
}

// GET /api/sales-locations/latest
//
// Target polling 30 detik layar monitoring sales.
func GetLatestSalesLocations(c *gin.Context) {
	list, err := locationService(c).Latest()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GET /api/ws/locations
func SalesLocationFeed(c *gin.Context) {
	hub.Serve(c.Writer, c.Request)
}
