package geo

import (
	"math"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
)

// EarthRadiusMiles - средний радиус Земли в милях
const EarthRadiusMiles = 3958.8

// DistanceMiles возвращает расстояние по дуге большого круга (формула гаверсинусов).
// Диапазон координат не проверяется.
func DistanceMiles(a, b models.Location) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)

	// Для координат вне диапазона h может выйти за [0, 1]
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
