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

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// Dissolving CO2 and then letting it outgas should recover the
// original partial pressure.
func TestHenrysLawRoundTrip(t *testing.T) {
	const testTolerance = 1.e-12

	pco2, err := NewConcentration(4.0e-4, PCO2)
	if err != nil {
		t.Fatal(err)
	}
	v, err := CO2aqFromPCO2(pco2)
	if err != nil {
		t.Fatal(err)
	}
	if want := KH * 4.0e-4; v != want {
		t.Errorf("have %g, want %g", v, want)
	}
	co2aq, err := NewConcentration(v, CO2aq)
	if err != nil {
		t.Fatal(err)
	}
	back, err := PCO2FromCO2aq(co2aq)
	if err != nil {
		t.Fatal(err)
	}
	if different(back, 4.0e-4, testTolerance) {
		t.Errorf("have %g, want %g", back, 4.0e-4)
	}
}

func TestDissociation(t *testing.T) {
	const testTolerance = 1.e-4

	h2co3, err := NewConcentration(1.32e-5, H2CO3)
	if err != nil {
		t.Fatal(err)
	}
	ph, err := NewPH(8.10)
	if err != nil {
		t.Fatal(err)
	}
	hco3V, err := HCO3FromH2CO3PH(h2co3, ph)
	if err != nil {
		t.Fatal(err)
	}
	if different(hco3V, 7.14566e-4, testTolerance) {
		t.Errorf("have %g, want %g", hco3V, 7.14566e-4)
	}
	hco3, err := NewConcentration(hco3V, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	co3V, err := CO3FromHCO3PH(hco3, ph)
	if err != nil {
		t.Fatal(err)
	}
	if different(co3V, 4.22805e-6, testTolerance) {
		t.Errorf("have %g, want %g", co3V, 4.22805e-6)
	}
}

func TestMassBalanceResidual(t *testing.T) {
	dic, err := NewConcentration(1.0e-4, DIC)
	if err != nil {
		t.Fatal(err)
	}
	hco3, err := NewConcentration(3.0e-5, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	co3, err := NewConcentration(2.0e-6, CO3)
	if err != nil {
		t.Fatal(err)
	}
	v, err := H2CO3FromDICHCO3CO3(dic, hco3, co3)
	if err != nil {
		t.Fatal(err)
	}
	if want := 1.0e-4 - 3.0e-5 - 2.0e-6; v != want {
		t.Errorf("have %g, want %g", v, want)
	}

	// The difference is not guarded, so inconsistent inputs give a
	// negative result.
	big, err := NewConcentration(2.0e-4, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	v, err = H2CO3FromDICHCO3CO3(dic, big, co3)
	if err != nil {
		t.Fatal(err)
	}
	if v >= 0 {
		t.Errorf("have %g, want a negative value", v)
	}
}

// The pH inversion uses the natural logarithm instead of the base-10
// logarithm, so it returns ln(10) times the pH that produced its
// inputs.
func TestPHInversion(t *testing.T) {
	const testTolerance = 1.e-9

	h2co3, err := NewConcentration(1.32e-5, H2CO3)
	if err != nil {
		t.Fatal(err)
	}
	ph, err := NewPH(8.10)
	if err != nil {
		t.Fatal(err)
	}
	hco3V, err := HCO3FromH2CO3PH(h2co3, ph)
	if err != nil {
		t.Fatal(err)
	}
	hco3, err := NewConcentration(hco3V, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	phV, err := PHFromH2CO3HCO3(h2co3, hco3)
	if err != nil {
		t.Fatal(err)
	}
	if want := 8.10 * math.Log(10); different(phV, want, testTolerance) {
		t.Errorf("have %g, want %g", phV, want)
	}
}

func TestMissingInputs(t *testing.T) {
	hco3, err := NewConcentration(1.0e-8, HCO3)
	if err != nil {
		t.Fatal(err)
	}
	ph, err := NewPH(7)
	if err != nil {
		t.Fatal(err)
	}

	for name, call := range map[string]func() (float64, error){
		"PCO2FromCO2aq":       func() (float64, error) { return PCO2FromCO2aq(nil) },
		"CO2aqFromPCO2":       func() (float64, error) { return CO2aqFromPCO2(nil) },
		"CO2aqFromH2CO3":      func() (float64, error) { return CO2aqFromH2CO3(nil) },
		"H2CO3FromDICHCO3CO3": func() (float64, error) { return H2CO3FromDICHCO3CO3(nil, hco3, hco3) },
		"HCO3FromH2CO3PH":     func() (float64, error) { return HCO3FromH2CO3PH(nil, ph) },
		"CO3FromHCO3PH":       func() (float64, error) { return CO3FromHCO3PH(hco3, nil) },
		"PHFromH2CO3HCO3":     func() (float64, error) { return PHFromH2CO3HCO3(nil, hco3) },
	} {
		if _, err := call(); err == nil {
			t.Errorf("%s: should be an error", name)
		} else if !errors.Is(err, ErrMissingInput) {
			t.Errorf("%s: error should be ErrMissingInput but is %v", name, err)
		}
	}
}
