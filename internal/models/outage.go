package models

import "time"

// Статус, которым сервис отключений помечает назначенные бригаде события
const StatusAssigned = "Assigned"

// Location - точка в градусах (WGS84)
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OutageEvent - нормализованное событие отключения из внешнего источника
type OutageEvent struct {
	ID                   string     `json:"id"`
	Lat                  float64    `json:"lat"`
	Lng                  float64    `json:"lng"`
	NumPeople            int        `json:"numPeople"`
	Status               string     `json:"status"`
	LastUpdated          time.Time  `json:"lastUpdated"`
	Cause                string     `json:"cause,omitempty"`
	EstimatedRestoration *time.Time `json:"estimatedRestoration,omitempty"`
}

// Location возвращает координаты события
func (e OutageEvent) Location() Location {
	return Location{Lat: e.Lat, Lng: e.Lng}
}

// NearbyOutage - событие с вычисленным расстоянием до дома (в милях)
type NearbyOutage struct {
	OutageEvent
	Distance float64 `json:"distance"`
}

// AreaTotals - сводка по набору событий
type AreaTotals struct {
	Events         int `json:"events"`
	PeopleAffected int `json:"peopleAffected"`
}

// OutageTotals - сводка по всей зоне обслуживания и по окрестности дома
type OutageTotals struct {
	ServiceArea AreaTotals `json:"nashville"`
	Nearby      AreaTotals `json:"nearby"`
}

// NearbyReport - результат проверки окрестности
type NearbyReport struct {
	Outages []NearbyOutage `json:"outages"`
	Totals  OutageTotals   `json:"totals"`
}

// SummarizeOutages считает количество событий и затронутых людей
func SummarizeOutages(events []OutageEvent) AreaTotals {
	totals := AreaTotals{Events: len(events)}
	for _, e := range events {
		totals.PeopleAffected += e.NumPeople
	}
	return totals
}
