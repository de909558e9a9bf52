package host

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/bodydump/body"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func preOrder(b body.Body) []string {
	res := []string{b.Name()}
	for _, s := range b.Satellites() {
		res = append(res, preOrder(s)...)
	}
	return res
}

func TestKerbol(t *testing.T) {
	root := Kerbol()
	want := []string{
		"Sun", "Moho", "Eve", "Gilly", "Kerbin", "Mun", "Minmus",
		"Duna", "Ike", "Dres", "Jool", "Laythe", "Vall", "Tylo", "Bop", "Pol",
		"Eeloo",
	}
	if diff := cmp.Diff(want, preOrder(root)); diff != "" {
		t.Errorf("bodies (-want +got):\n%s", diff)
	}
	if root.Orbit() != nil {
		t.Error("star has an orbit")
	}
	var (
		atmospheres []string
		locked      []string
	)
	var walk func(b body.Body)
	walk = func(b body.Body) {
		if b.HasAtmosphere() {
			atmospheres = append(atmospheres, b.Name())
		}
		if b.TidallyLocked() {
			locked = append(locked, b.Name())
		}
		if b != body.Body(root) && b.Orbit() == nil {
			t.Errorf("%s has no orbit", b.Name())
		}
		for _, s := range b.Satellites() {
			walk(s)
		}
	}
	walk(root)
	if diff := cmp.Diff([]string{"Eve", "Kerbin", "Duna", "Jool", "Laythe"}, atmospheres); diff != "" {
		t.Errorf("atmospheres (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Mun", "Ike", "Laythe", "Vall", "Tylo", "Bop", "Pol"}, locked); diff != "" {
		t.Errorf("tidally locked (-want +got):\n%s", diff)
	}
}

func TestKerbolFresh(t *testing.T) {
	a := Kerbol()
	a.BodyName = "Changed"
	a.Orbiting = nil
	b := Kerbol()
	if b.Name() != "Sun" || len(b.Satellites()) != 7 {
		t.Errorf("Kerbol shares state between calls: %s with %d satellites", b.Name(), len(b.Satellites()))
	}
}

func TestDescribeLoad(t *testing.T) {
	root := Kerbol()
	d, err := Describe(root)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Load(bytes.NewReader(d))
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if diff := cmp.Diff(root, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	in := `{
  "name": "Sun",
  "gravitational_parameter": 1.1723328e+18,
  "radius": 261600000,
  "rotation_period": 432000,
  "satellites": [
    {
      "name": "Kerbin",
      "gravitational_parameter": 3.5316e+12,
      "radius": 600000,
      "rotation_period": 21600,
      "atmosphere": {"scale_height": 5, "pressure_multiplier": 1},
      "orbit": {"semi_major_axis": 13599840256, "eccentricity": 0, "inclination_deg": 0,
        "longitude_of_ascending_node_deg": 0, "argument_of_periapsis_deg": 0,
        "mean_anomaly_at_epoch": 3.14}
    }
  ]
}`
	root, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := body.New("Sun", 1.1723328e18, 261600e3, 432000)
	want.AddSatellite(body.New("Kerbin", 3.5316e12, 600e3, 21600).WithAtmosphere(5, 1),
		&body.Elements{A: 13599840256, MeanAnomaly0: 3.14})
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("load (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":   "name: Sun\nmass: 5\n",
		"missing name":    "radius: 5\n",
		"unnamed moon":    "name: Sun\nsatellites:\n  - radius: 1\n",
		"empty satellite": "name: Sun\nsatellites:\n  - null\n",
		"not a mapping":   "- Sun\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(in))
			if !errors.Is(err, ErrDescription) {
				t.Errorf("expected description error, got %v", err)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	root := Kerbol()
	got, err := Static(root).Root()
	if err != nil {
		t.Fatal(err)
	}
	if got != body.Body(root) {
		t.Error("Static returned another root")
	}
	for _, b := range []body.Body{nil, (*body.CelestialBody)(nil)} {
		if _, err := Static(b).Root(); !errors.Is(err, ErrSourceDataUnavailable) {
			t.Errorf("expected source data unavailable, got %v", err)
		}
	}
}

func TestFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	src := File(fsys, "system.yaml")
	if _, err := src.Root(); !errors.Is(err, ErrSourceDataUnavailable) {
		t.Fatalf("expected source data unavailable, got %v", err)
	}
	if err := afero.WriteFile(fsys, "system.yaml", []byte("name: Sun\nradius: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	root, err := src.Root()
	if err != nil {
		t.Fatal(err)
	}
	if root.Name() != "Sun" || root.Radius() != 1 {
		t.Errorf("got %s radius %v", root.Name(), root.Radius())
	}
	if err := afero.WriteFile(fsys, "system.yaml", []byte("name: Sun\nbogus: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Root(); !errors.Is(err, ErrDescription) {
		t.Errorf("expected description error, got %v", err)
	}
}
