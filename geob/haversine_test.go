package geob

import "testing"

func TestHaversineMetersScenario(t *testing.T) {
	d := HaversineMeters(12.559285, 55.691249, 12.5378308, 55.7036352)
	const want = 2100.0
	if diff := d - want; diff > 1 || diff < -1 {
		t.Fatalf("HaversineMeters() = %v, want within 1m of %v", d, want)
	}
}

func TestHaversineMetersZeroForSamePoint(t *testing.T) {
	if d := HaversineMeters(12.5, 55.7, 12.5, 55.7); d != 0 {
		t.Fatalf("HaversineMeters(same point) = %v, want 0", d)
	}
}
