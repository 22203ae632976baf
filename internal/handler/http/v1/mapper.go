package v1

import "github.com/mtallentb/nes-outage-viewer/internal/models"

// ModelsToNearbyOutageResponses преобразует доменные модели в DTO. Пустой вход дает пустой массив
func ModelsToNearbyOutageResponses(outages []models.NearbyOutage) []NearbyOutageResponse {
	responses := make([]NearbyOutageResponse, len(outages))
	for i, o := range outages {
		responses[i] = NearbyOutageResponse{
			ID:                   o.ID,
			Lat:                  o.Lat,
			Lng:                  o.Lng,
			NumPeople:            o.NumPeople,
			Status:               o.Status,
			LastUpdated:          o.LastUpdated,
			Cause:                o.Cause,
			EstimatedRestoration: o.EstimatedRestoration,
			Distance:             o.Distance,
		}
	}
	return responses
}

// ReportToOutagesResponse собирает ответ /outages из отчета и параметров запроса
func ReportToOutagesResponse(report *models.NearbyReport, home models.Location, radiusMiles float64) *OutagesResponse {
	lat, lng := home.Lat, home.Lng
	return &OutagesResponse{
		Outages: ModelsToNearbyOutageResponses(report.Outages),
		Totals:  report.Totals,
		Config: ConfigResponse{
			HomeLat:     &lat,
			HomeLng:     &lng,
			RadiusMiles: radiusMiles,
		},
	}
}
