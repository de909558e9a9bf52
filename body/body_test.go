package body

import (
	"testing"
)

func TestCelestialBody(t *testing.T) {
	sun := New("Sun", 1, 2, 3)
	if sun.Orbit() != nil {
		t.Error("new body has an orbit")
	}
	if sun.HasAtmosphere() || sun.TidallyLocked() {
		t.Error("new body has an atmosphere or is locked")
	}
	moon := sun.AddSatellite(New("Moon", 1, 1, 1).WithTidalLock().WithAtmosphere(4, 0.8),
		&Elements{A: 10, E: 0.1, IncDeg: 1, LANDeg: 2, ArgPeDeg: 3, MeanAnomaly0: 4})
	o := moon.Orbit()
	if o == nil {
		t.Fatal("satellite without orbit")
	}
	got := []float64{o.SemiMajorAxis(), o.Eccentricity(), o.InclinationDeg(),
		o.LongitudeOfAscendingNodeDeg(), o.ArgumentOfPeriapsisDeg(), o.MeanAnomalyAtEpoch()}
	want := []float64{10, 0.1, 1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if !moon.TidallyLocked() || moon.AtmosphereScaleHeight() != 4 || moon.AtmospherePressureMultiplier() != 0.8 {
		t.Errorf("moon properties lost: %+v", moon)
	}
	sats := sun.Satellites()
	if len(sats) != 1 || sats[0].Name() != "Moon" {
		t.Errorf("satellites: %v", sats)
	}
}

func TestSatellitesNil(t *testing.T) {
	b := New("A", 1, 1, 1)
	b.Orbiting = []*CelestialBody{nil}
	sats := b.Satellites()
	if len(sats) != 1 || sats[0] != nil {
		t.Errorf("expected a single nil satellite, got %#v", sats)
	}
	sats[0] = New("B", 1, 1, 1)
	if b.Orbiting[0] != nil {
		t.Error("Satellites shares storage with the body")
	}
}

func TestIsNil(t *testing.T) {
	var typed *CelestialBody
	tests := []struct {
		b    Body
		want bool
	}{
		{nil, true},
		{typed, true},
		{New("Sun", 1, 2, 3), false},
	}
	for i, tc := range tests {
		if got := IsNil(tc.b); got != tc.want {
			t.Errorf("%d: got %t, want %t", i, got, tc.want)
		}
	}
}
