package domain

import "testing"

func TestComposeLabel(t *testing.T) {
	cases := []struct {
		name, state, country, fallback string
		want                           string
	}{
		{"Berlin", "", "Germany", "berlin", "Berlin, Germany"},
		{"Phoenix", "Arizona", "United States", "phoenix", "Phoenix, Arizona, United States"},
		{"", "", "", "some query", "some query"},
		{"", "Bavaria", "Germany", "munich", "munich, Bavaria, Germany"},
	}

	for _, tc := range cases {
		got := ComposeLabel(tc.name, tc.state, tc.country, tc.fallback)
		if got != tc.want {
			t.Fatalf("ComposeLabel(%q, %q, %q, %q) = %q, want %q",
				tc.name, tc.state, tc.country, tc.fallback, got, tc.want)
		}
	}
}

func TestParseTravelMode(t *testing.T) {
	for _, valid := range []string{"car", "bike", "foot"} {
		if _, err := ParseTravelMode(valid); err != nil {
			t.Fatalf("ParseTravelMode(%q): %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "plane", "Car"} {
		if _, err := ParseTravelMode(invalid); err == nil {
			t.Fatalf("ParseTravelMode(%q) accepted", invalid)
		}
	}
}

func TestMapsTravelMode(t *testing.T) {
	cases := map[TravelMode]string{
		ModeCar:  "driving",
		ModeBike: "bicycling",
		ModeFoot: "walking",
	}
	for mode, want := range cases {
		if got := mode.MapsTravelMode(); got != want {
			t.Fatalf("%q.MapsTravelMode() = %q, want %q", mode, got, want)
		}
	}
}

func TestUnitToggle(t *testing.T) {
	if UnitKilometers.Toggle() != UnitMiles {
		t.Fatal("km should toggle to mi")
	}
	if UnitMiles.Toggle() != UnitKilometers {
		t.Fatal("mi should toggle to km")
	}
}

func TestUnitConvert(t *testing.T) {
	if got := UnitKilometers.Convert(1500); got != 1.5 {
		t.Fatalf("km convert = %f, want 1.5", got)
	}
	if got := UnitMiles.Convert(1610); got != 1 {
		t.Fatalf("mi convert = %f, want 1", got)
	}
}

func TestFuelInputsValidate(t *testing.T) {
	pos := 15.0
	zero := 0.0
	neg := -1.0

	if err := (FuelInputs{}).Validate(); err != nil {
		t.Fatalf("empty inputs rejected: %v", err)
	}
	if err := (FuelInputs{EfficiencyKmPerLiter: &pos, PricePerLiter: &zero}).Validate(); err != nil {
		t.Fatalf("valid inputs rejected: %v", err)
	}
	if err := (FuelInputs{EfficiencyKmPerLiter: &zero}).Validate(); err == nil {
		t.Fatal("zero efficiency accepted")
	}
	if err := (FuelInputs{PricePerLiter: &neg}).Validate(); err == nil {
		t.Fatal("negative price accepted")
	}
}
