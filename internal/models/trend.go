package models

import "time"

// TimeRange - границы окна тренда: первый и последний снимок
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TrendDataPoint - агрегат одного снимка
type TrendDataPoint struct {
	Time                time.Time `json:"time"`
	TotalOutages        int       `json:"totalOutages"`
	TotalPeopleAffected int       `json:"totalPeopleAffected"`
}

// TrendData - динамика отключений за окно наблюдения
type TrendData struct {
	TimeRange       TimeRange        `json:"timeRange"`
	ResolutionRate  float64          `json:"resolutionRate"`  // устранённых событий в час
	NetPeopleChange int              `json:"netPeopleChange"` // изменение числа затронутых людей
	DataPoints      []TrendDataPoint `json:"dataPoints"`
}
