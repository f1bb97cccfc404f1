package services

import (
	"fmt"

	"dealership/internal/domain/models"
	"dealership/internal/repositories"
	"dealership/internal/utils"
	"dealership/internal/ws"
)

// LocationService records sales GPS pings and feeds the monitoring screen,
// both through the polled latest-per-sales endpoint and the websocket hub.
type LocationService struct {
	LocationRepo repositories.SalesLocationRepository
	Hub          *ws.Hub
	RequestID    string
}

func (s LocationService) RecordPing(loc models.SalesLocation) (models.SalesLocation, error) {
	saved, err := s.LocationRepo.Insert(loc)
	if err != nil {
		return models.SalesLocation{}, err
	}

	utils.LogEvent(s.RequestID, "location", "ping",
		fmt.Sprintf("sales=%s lat=%.6f lng=%.6f", saved.SalesDocumentID, saved.Latitude, saved.Longitude))

	if s.Hub != nil {
		s.Hub.BroadcastLocation(saved)
	}
	return saved, nil
}

func (s LocationService) Latest() ([]models.SalesLocation, error) {
	return s.LocationRepo.LatestPerSales()
}
