package export

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/signadot/bodydump/body"
	"github.com/signadot/bodydump/encode"
	"github.com/signadot/bodydump/format"
	"github.com/signadot/bodydump/ir"

	"github.com/google/go-cmp/cmp"
)

// sun, kerbin (with mun), duna
func testSystem() *body.CelestialBody {
	sun := body.New("Sun", 1.1723328e18, 261600e3, 432000)
	kerbin := sun.AddSatellite(
		body.New("Kerbin", 3.5316e12, 600e3, 21600).WithAtmosphere(5, 1),
		&body.Elements{A: 13599840256, MeanAnomaly0: math.Pi})
	kerbin.AddSatellite(
		body.New("Mun", 6.5138398e10, 200e3, 138984.38).WithTidalLock(),
		&body.Elements{A: 12e6, MeanAnomaly0: 1.7})
	sun.AddSatellite(
		body.New("Duna", 3.0136321e11, 320e3, 65517.859).WithAtmosphere(3, 0.2),
		&body.Elements{A: 20726155264, E: 0.05, IncDeg: 0.06, LANDeg: 135.5, MeanAnomaly0: math.Pi})
	return sun
}

func mustExport(t *testing.T, root body.Body, opts ...Option) *ir.Node {
	t.Helper()
	doc, err := Export(root, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func text(t *testing.T, doc *ir.Node, path string) string {
	t.Helper()
	y, err := doc.GetPath(path)
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	if y == nil {
		t.Fatalf("%s: missing", path)
	}
	if y.Type == ir.StringType {
		return y.String
	}
	return y.NumberText()
}

func testLogger() (*slog.Logger, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestExportPreOrder(t *testing.T) {
	doc := mustExport(t, testSystem())
	want := []string{"Kerbol", "Kerbin", "Mun", "Duna"}
	if diff := cmp.Diff(want, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestExportFields(t *testing.T) {
	doc := mustExport(t, testSystem())
	want := map[string][]string{
		"Kerbol": {"gravitational_parameter", "radius", "rotational_period"},
		"Kerbin": {"gravitational_parameter", "radius", "rotational_period",
			"pressure_scale_height", "pressure_at_sea_level", "orbit"},
		"Mun": {"gravitational_parameter", "radius", "orbit"},
		"Duna": {"gravitational_parameter", "radius", "rotational_period",
			"pressure_scale_height", "pressure_at_sea_level", "orbit"},
	}
	for name, keys := range want {
		if diff := cmp.Diff(keys, doc.Get(name).Keys()); diff != "" {
			t.Errorf("%s fields (-want +got):\n%s", name, diff)
		}
	}
	orbitKeys := []string{"primary", "semi_major_axis", "eccentricity", "inclination",
		"longitude_of_ascending_node", "argument_of_periapsis", "mean_anomaly_at_epoch"}
	if diff := cmp.Diff(orbitKeys, doc.Get("Duna").Get("orbit").Keys()); diff != "" {
		t.Errorf("orbit fields (-want +got):\n%s", diff)
	}
}

func TestExportValues(t *testing.T) {
	doc := mustExport(t, testSystem())
	tests := []struct {
		path string
		want string
	}{
		{"$.Kerbol.gravitational_parameter", "1.1723328e+18"},
		{"$.Kerbol.radius", "261600000"},
		{"$.Kerbol.rotational_period", "432000"},
		{"$.Kerbin.gravitational_parameter", "3531600000000"},
		{"$.Kerbin.pressure_scale_height", "5000"},
		{"$.Kerbin.pressure_at_sea_level", "101325"},
		{"$.Kerbin.orbit.primary", "Kerbol"},
		{"$.Kerbin.orbit.semi_major_axis", "13599840256"},
		{"$.Kerbin.orbit.eccentricity", "0"},
		{"$.Kerbin.orbit.inclination", "0"},
		{"$.Kerbin.orbit.mean_anomaly_at_epoch", "3.141593"},
		{"$.Mun.gravitational_parameter", "65138398000"},
		{"$.Mun.orbit.primary", "Kerbin"},
		{"$.Mun.orbit.semi_major_axis", "12000000"},
		{"$.Mun.orbit.mean_anomaly_at_epoch", "1.7"},
		{"$.Duna.pressure_scale_height", "3000"},
		{"$.Duna.pressure_at_sea_level", "20265"},
		{"$.Duna.rotational_period", "65517.859"},
		{"$.Duna.orbit.primary", "Kerbol"},
		{"$.Duna.orbit.eccentricity", "0.05"},
		{"$.Duna.orbit.inclination", "0.001047197551196598"},
		{"$.Duna.orbit.longitude_of_ascending_node", "2.364921136452316"},
		{"$.Duna.orbit.argument_of_periapsis", "0"},
	}
	for _, tc := range tests {
		if got := text(t, doc, tc.path); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.path, got, tc.want)
		}
	}
}

func TestExportSingleBody(t *testing.T) {
	doc := mustExport(t, body.New("Sun", 1, 2, 3))
	if diff := cmp.Diff([]string{"Kerbol"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if doc.Get("Kerbol").Get("orbit") != nil {
		t.Error("root exported with an orbit")
	}
}

func TestExportRenamesOnlyRoot(t *testing.T) {
	star := body.New("Star", 1, 1, 1)
	planet := star.AddSatellite(body.New("Sun", 1, 1, 1), &body.Elements{A: 1})
	planet.AddSatellite(body.New("Moon", 1, 1, 1), &body.Elements{A: 1})

	doc := mustExport(t, star)
	if diff := cmp.Diff([]string{"Star", "Sun", "Moon"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := text(t, doc, "$.Moon.orbit.primary"); got != "Sun" {
		t.Errorf("primary of Moon: %s", got)
	}

	doc = mustExport(t, star, WithStarName("Star"))
	if diff := cmp.Diff([]string{"Kerbol", "Sun", "Moon"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := text(t, doc, "$.Sun.orbit.primary"); got != "Kerbol" {
		t.Errorf("primary of Sun: %s", got)
	}
}

func TestExportSiblingOrder(t *testing.T) {
	root := body.New("R", 1, 1, 1)
	a := root.AddSatellite(body.New("A", 1, 1, 1), &body.Elements{A: 1})
	a.AddSatellite(body.New("A1", 1, 1, 1), &body.Elements{A: 1})
	a.AddSatellite(body.New("A2", 1, 1, 1), &body.Elements{A: 1})
	root.AddSatellite(body.New("B", 1, 1, 1), &body.Elements{A: 1})
	doc := mustExport(t, root)
	if diff := cmp.Diff([]string{"R", "A", "A1", "A2", "B"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestExportIdempotent(t *testing.T) {
	root := testSystem()
	a := mustExport(t, root)
	b := mustExport(t, root)
	for _, f := range format.AllFormats() {
		ab, bb := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
		if err := encode.Encode(a, ab, encode.EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		if err := encode.Encode(b, bb, encode.EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(ab.Bytes(), bb.Bytes()) {
			t.Errorf("%s exports differ:\n%s\n%s", f, ab, bb)
		}
	}
	if got := root.Name(); got != "Sun" {
		t.Errorf("export renamed the host body: %s", got)
	}
}

// customBody overrides the satellites of a CelestialBody.
type customBody struct {
	*body.CelestialBody
	sats []body.Body
}

func (c *customBody) Satellites() []body.Body { return c.sats }

func TestExportMalformed(t *testing.T) {
	cycle := body.New("A", 1, 1, 1)
	b := cycle.AddSatellite(body.New("B", 1, 1, 1), &body.Elements{A: 1})
	b.Orbiting = append(b.Orbiting, cycle)

	shared := body.New("R", 1, 1, 1)
	moon := body.New("Moon", 1, 1, 1)
	moon.Elements = &body.Elements{A: 1}
	for _, name := range []string{"P", "Q"} {
		p := shared.AddSatellite(body.New(name, 1, 1, 1), &body.Elements{A: 1})
		p.Orbiting = append(p.Orbiting, moon)
	}

	withNil := body.New("R", 1, 1, 1)
	withNil.Orbiting = append(withNil.Orbiting, nil)

	withTypedNil := &customBody{
		CelestialBody: body.New("R", 1, 1, 1),
		sats:          []body.Body{(*body.CelestialBody)(nil)},
	}

	tests := []struct {
		name string
		root body.Body
	}{
		{"nil root", nil},
		{"typed nil root", (*body.CelestialBody)(nil)},
		{"typed nil satellite", withTypedNil},
		{"cycle", cycle},
		{"shared satellite", shared},
		{"nil satellite", withNil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Export(tc.root)
			if !errors.Is(err, ErrMalformedHierarchy) {
				t.Errorf("expected malformed hierarchy, got %v", err)
			}
		})
	}
}

func TestExportWarnings(t *testing.T) {
	root := body.New("Sun", 1, 1, 1)
	root.Elements = &body.Elements{A: 5}
	root.AddSatellite(body.New("Twin", 1, 1, 1), &body.Elements{A: 1})
	root.AddSatellite(body.New("Twin", 2, 2, 2), &body.Elements{A: 2})
	root.Orbiting = append(root.Orbiting, body.New("Rogue", 1, 1, 1))

	log, buf := testLogger()
	doc := mustExport(t, root, WithLogger(log))
	if diff := cmp.Diff([]string{"Kerbol", "Twin", "Twin", "Rogue"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if doc.Get("Kerbol").Get("orbit") != nil {
		t.Error("root exported with an orbit")
	}
	if doc.Get("Rogue").Get("orbit") != nil {
		t.Error("orbitless satellite exported with an orbit")
	}
	if got := text(t, doc, "$.Twin.orbit.semi_major_axis"); got != "1" {
		t.Errorf("first Twin should come first, got semi_major_axis %s", got)
	}
	for _, msg := range []string{
		"root body has an orbit",
		"duplicate body name in dump",
		"satellite without orbit",
	} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log is missing %q:\n%s", msg, buf.String())
		}
	}
}

func TestFlattenDocument(t *testing.T) {
	x := New()
	rec, err := x.Walk(testSystem())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, r := range rec.Flatten() {
		names = append(names, r.Name)
	}
	if diff := cmp.Diff([]string{"Kerbol", "Kerbin", "Mun", "Duna"}, names); diff != "" {
		t.Errorf("flatten (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(names, Document(rec).Keys()); diff != "" {
		t.Errorf("document keys (-want +got):\n%s", diff)
	}
	if got := len(rec.Satellites); got != 2 {
		t.Errorf("root has %d satellite records", got)
	}
}
