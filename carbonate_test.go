/*
Copyright © 2018 the Carbonate authors.
This file is part of Carbonate.

Carbonate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Carbonate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Carbonate.  If not, see <http://www.gnu.org/licenses/>.
*/

package carbonate

import (
	"errors"
	"math"
	"testing"
)

// Equilibrium with the present-day atmosphere at seawater pH.
func TestNewSystemPCO2PH(t *testing.T) {
	const testTolerance = 1.e-4

	pco2, err := NewConcentration(4.0e-4, PCO2)
	if err != nil {
		t.Fatal(err)
	}
	ph, err := NewPH(8.10)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSystemPCO2PH(pco2, ph)
	if err != nil {
		t.Fatal(err)
	}

	if different(s.CO2aq().Value, 1.32e-5, 1.e-12) {
		t.Errorf("CO2aq: have %g, want %g", s.CO2aq().Value, 1.32e-5)
	}
	if s.H2CO3().Value != s.CO2aq().Value {
		t.Errorf("H2CO3 %g should equal CO2aq %g", s.H2CO3().Value, s.CO2aq().Value)
	}
	if different(s.HCO3().Value, 7.14566e-4, testTolerance) {
		t.Errorf("HCO3: have %g, want %g", s.HCO3().Value, 7.14566e-4)
	}
	if different(s.CO3().Value, 4.22805e-6, testTolerance) {
		t.Errorf("CO3: have %g, want %g", s.CO3().Value, 4.22805e-6)
	}
	if different(s.DIC().Value, 7.31994e-4, testTolerance) {
		t.Errorf("DIC: have %g, want %g", s.DIC().Value, 7.31994e-4)
	}
	if s.PCO2().Value != 4.0e-4 {
		t.Errorf("PCO2: have %g, want %g", s.PCO2().Value, 4.0e-4)
	}
	if s.PH().Value != 8.10 {
		t.Errorf("pH: have %g, want %g", s.PH().Value, 8.10)
	}

	mb := s.MassBalance()
	if math.Abs(mb.Value()) > 1.e-15 {
		t.Errorf("mass balance residual %g is too large", mb.Value())
	}
	if !mb.Dimensions().Matches(Molar) {
		t.Errorf("mass balance has dimensions %v, want molar", mb.Dimensions())
	}
}

// A solution of mostly dissolved CO2 with a trace of bicarbonate.
func TestNewSystemHCO3DIC(t *testing.T) {
	const testTolerance = 1.e-12

	hco3, err := NewConcentration(1.0e-8, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	dic, err := NewConcentration(1.0e-4, DIC)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSystemHCO3DIC(hco3, dic)
	if err != nil {
		t.Fatal(err)
	}

	wantCo3 := (K2 * 1.0e-8) / ((1.0e-4 - 1.0e-8) * (K1 / 1.0e-8))
	wantH2co3 := 1.0e-4 - 1.0e-8 - wantCo3
	if different(s.CO3().Value, wantCo3, testTolerance) {
		t.Errorf("CO3: have %g, want %g", s.CO3().Value, wantCo3)
	}
	if s.H2CO3().Value < 0 {
		t.Errorf("H2CO3 %g should not be negative", s.H2CO3().Value)
	}
	if different(s.H2CO3().Value, wantH2co3, testTolerance) {
		t.Errorf("H2CO3: have %g, want %g", s.H2CO3().Value, wantH2co3)
	}
	if s.CO2aq().Value != s.H2CO3().Value {
		t.Errorf("CO2aq %g should equal H2CO3 %g", s.CO2aq().Value, s.H2CO3().Value)
	}
	if different(s.PCO2().Value, wantH2co3/KH, testTolerance) {
		t.Errorf("PCO2: have %g, want %g", s.PCO2().Value, wantH2co3/KH)
	}
	wantPH := -math.Log(K1 * wantH2co3 / 1.0e-8)
	if different(s.PH().Value, wantPH, 1.e-9) {
		t.Errorf("pH: have %g, want %g", s.PH().Value, wantPH)
	}
	if s.DIC().Value != 1.0e-4 {
		t.Errorf("DIC: have %g, want %g", s.DIC().Value, 1.0e-4)
	}
	if mb := s.MassBalance(); math.Abs(mb.Value()) > 1.e-15 {
		t.Errorf("mass balance residual %g is too large", mb.Value())
	}
}

// When bicarbonate dominates the carbon pool, the natural-logarithm
// pH inversion gives a value above 14 and construction fails.
func TestNewSystemHCO3DICBicarbonateDominated(t *testing.T) {
	hco3, err := NewConcentration(9.0e-5, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	dic, err := NewConcentration(1.0e-4, DIC)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSystemHCO3DIC(hco3, dic); err == nil {
		t.Error("should be an error")
	} else if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("error should be ErrInvalidRange but is %v", err)
	}
}

func TestNewSystemMissingInputs(t *testing.T) {
	pco2, err := NewConcentration(4.0e-4, PCO2)
	if err != nil {
		t.Fatal(err)
	}
	ph, err := NewPH(8.10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSystemPCO2PH(nil, ph); err == nil {
		t.Error("should be an error")
	} else if !errors.Is(err, ErrMissingInput) {
		t.Errorf("error should be ErrMissingInput but is %v", err)
	}
	if _, err := NewSystemPCO2PH(pco2, nil); err == nil {
		t.Error("should be an error")
	} else if !errors.Is(err, ErrMissingInput) {
		t.Errorf("error should be ErrMissingInput but is %v", err)
	}
	if _, err := NewSystemHCO3DIC(nil, nil); err == nil {
		t.Error("should be an error")
	} else if !errors.Is(err, ErrMissingInput) {
		t.Errorf("error should be ErrMissingInput but is %v", err)
	}
}

func TestSystemValue(t *testing.T) {
	pco2, err := NewConcentration(4.0e-4, PCO2)
	if err != nil {
		t.Fatal(err)
	}
	ph, err := NewPH(8.10)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSystemPCO2PH(pco2, ph)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]float64{
		"CO2aq": s.CO2aq().Value,
		"H2CO3": s.H2CO3().Value,
		"HCO3":  s.HCO3().Value,
		"CO3":   s.CO3().Value,
		"DIC":   s.DIC().Value,
		"PCO2":  s.PCO2().Value,
		"pH":    s.PH().Value,
	}
	for _, name := range s.Outputs() {
		v, err := s.Value(name)
		if err != nil {
			t.Error(err)
		}
		if v != want[name] {
			t.Errorf("%s: have %g, want %g", name, v, want[name])
		}
	}

	if u, err := s.Units("pH"); err != nil {
		t.Error(err)
	} else if u != "s.u." {
		t.Errorf("want: 's.u.'; have '%s'", u)
	}
	if u, err := s.Units("PCO2"); err != nil {
		t.Error(err)
	} else if u != "atm" {
		t.Errorf("want: 'atm'; have '%s'", u)
	}

	q, err := s.Quantity("HCO3")
	if err != nil {
		t.Error(err)
	}
	if !q.Dimensions().Matches(Molar) {
		t.Errorf("HCO3 quantity has dimensions %v, want molar", q.Dimensions())
	}
	q, err = s.Quantity("PCO2")
	if err != nil {
		t.Error(err)
	}
	if !q.Dimensions().Matches(Atmosphere) {
		t.Errorf("PCO2 quantity has dimensions %v, want atmospheres", q.Dimensions())
	}

	if _, err := s.Value("XYZ"); err == nil {
		t.Error("should be an error")
	}
	if _, err := s.Units("XYZ"); err == nil {
		t.Error("should be an error")
	}
	if _, err := s.Quantity("XYZ"); err == nil {
		t.Error("should be an error")
	}
}

func TestOutputOptions(t *testing.T) {
	names, units := OutputOptions()
	if len(names) != len(units) {
		t.Fatalf("have %d names but %d units", len(names), len(units))
	}
	if names[0] != "CO2aq" {
		t.Errorf("want: 'CO2aq'; have '%s'", names[0])
	}
	if names[len(names)-1] != "pH" {
		t.Errorf("want: 'pH'; have '%s'", names[len(names)-1])
	}
}

// Identical inputs must give bitwise-identical equilibria.
func TestSystemDeterminism(t *testing.T) {
	hco3, err := NewConcentration(1.0e-8, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	dic, err := NewConcentration(1.0e-4, DIC)
	if err != nil {
		t.Fatal(err)
	}
	s1, err := NewSystemHCO3DIC(hco3, dic)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewSystemHCO3DIC(hco3, dic)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range s1.Outputs() {
		v1, err := s1.Value(name)
		if err != nil {
			t.Fatal(err)
		}
		v2, err := s2.Value(name)
		if err != nil {
			t.Fatal(err)
		}
		if v1 != v2 {
			t.Errorf("%s: have %g, want %g", name, v2, v1)
		}
	}
}
