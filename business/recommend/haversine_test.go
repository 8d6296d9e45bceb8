package recommend

import (
	"math"
	"testing"
)

func TestHaversineKm_SamePointIsZero(t *testing.T) {
	if d := HaversineKm(37.5665, 126.9780, 37.5665, 126.9780); d != 0 {
		t.Errorf("expected 0 for identical points, got %v", d)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := HaversineKm(37.5665, 126.9780, 35.1796, 129.0756)
	b := HaversineKm(35.1796, 129.0756, 37.5665, 126.9780)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestHaversineKm_SeoulBusan(t *testing.T) {
	// Seoul city hall to Busan city hall, roughly 325 km.
	d := HaversineKm(37.5665, 126.9780, 35.1796, 129.0756)
	if d < 320 || d > 330 {
		t.Errorf("Seoul-Busan distance out of range: %v", d)
	}
}

// northOffset returns a latitude displaced by the given distance due north,
// where haversine reduces to arc length and the distance is exact.
func northOffset(lat, km float64) float64 {
	return lat + (km/6371.0)*(180.0/math.Pi)
}

func TestHaversineKm_NorthOffsetIsExact(t *testing.T) {
	lat, lon := 37.5, 127.0

	d := HaversineKm(lat, lon, northOffset(lat, 60.0), lon)
	if math.Abs(d-60.0) > 1e-6 {
		t.Errorf("expected 60 km, got %v", d)
	}
}
