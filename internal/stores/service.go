package stores

import (
	"errors"
	"math"
)

var ErrNoShops = errors.New("no shops configured")

type Service struct {
	shops []Shop
}

func NewService(shops []Shop) *Service {
	return &Service{shops: shops}
}

func (s *Service) List() []Shop {
	return append([]Shop(nil), s.shops...)
}

// Nearest returns the shop closest to the given coordinates.
func (s *Service) Nearest(lat, lng float64) (Shop, error) {
	if len(s.shops) == 0 {
		return Shop{}, ErrNoShops
	}

	best := s.shops[0]
	bestDist := haversineKm(lat, lng, best.Latitude, best.Longitude)
	for _, shop := range s.shops[1:] {
		if d := haversineKm(lat, lng, shop.Latitude, shop.Longitude); d < bestDist {
			best, bestDist = shop, d
		}
	}
	return best, nil
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
