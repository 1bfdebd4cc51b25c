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

// Package carbonate models the equilibrium chemistry of the aqueous
// carbonate system.
package carbonate

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Version gives the version number of this version of Carbonate.
const Version = "0.1.0"

// A System is an immutable snapshot of the carbonate system in
// equilibrium: the partial pressure of gas-phase CO2, the pH, and the
// concentrations of the dissolved carbonate species consistent with
// them. Create one with NewSystemPCO2PH or NewSystemHCO3DIC.
type System struct {
	pco2  *Concentration
	ph    *PH
	co2aq *Concentration
	h2co3 *Concentration
	hco3  *Concentration
	co3   *Concentration
	dic   *Concentration
}

// NewSystemPCO2PH creates a System from the partial pressure of
// gas-phase CO2 and the pH of the solution, deriving the dissolved
// species from the Henry's law and dissociation equilibria. If any
// step fails, no System is created.
func NewSystemPCO2PH(pco2 *Concentration, ph *PH) (*System, error) {
	if pco2 == nil || ph == nil {
		return nil, fmt.Errorf("carbonate: creating a system from PCO2 and pH: %w", ErrMissingInput)
	}
	v, err := CO2aqFromPCO2(pco2)
	if err != nil {
		return nil, err
	}
	co2aq, err := NewConcentration(v, CO2aq)
	if err != nil {
		return nil, err
	}
	// Dissolved CO2 and carbonic acid are interchangeable.
	h2co3, err := NewConcentration(co2aq.Value, H2CO3)
	if err != nil {
		return nil, err
	}
	v, err = HCO3FromH2CO3PH(h2co3, ph)
	if err != nil {
		return nil, err
	}
	hco3, err := NewConcentration(v, HCO3)
	if err != nil {
		return nil, err
	}
	v, err = CO3FromHCO3PH(hco3, ph)
	if err != nil {
		return nil, err
	}
	co3, err := NewConcentration(v, CO3)
	if err != nil {
		return nil, err
	}
	dic, err := NewConcentration(co2aq.Value+hco3.Value+co3.Value, DIC)
	if err != nil {
		return nil, err
	}
	return &System{pco2: pco2, ph: ph, co2aq: co2aq, h2co3: h2co3,
		hco3: hco3, co3: co3, dic: dic}, nil
}

// NewSystemHCO3DIC creates a System from the bicarbonate and
// dissolved inorganic carbon concentrations, iteratively solving for
// the remaining dissolved species and then deriving the CO2 partial
// pressure and pH from them. If any step fails, no System is created;
// in particular, solutions dominated by bicarbonate can derive a pH
// above 14 because of the logarithm issue described at
// PHFromH2CO3HCO3, in which case the returned error wraps
// ErrInvalidRange.
func NewSystemHCO3DIC(hco3, dic *Concentration) (*System, error) {
	if hco3 == nil || dic == nil {
		return nil, fmt.Errorf("carbonate: creating a system from HCO3 and DIC: %w", ErrMissingInput)
	}
	v, err := CO3FromDICHCO3(dic, hco3)
	if err != nil {
		return nil, err
	}
	co3, err := NewConcentration(v, CO3)
	if err != nil {
		return nil, err
	}
	v, err = H2CO3FromDICHCO3CO3(dic, hco3, co3)
	if err != nil {
		return nil, err
	}
	h2co3, err := NewConcentration(v, H2CO3)
	if err != nil {
		return nil, err
	}
	co2aq, err := NewConcentration(h2co3.Value, CO2aq)
	if err != nil {
		return nil, err
	}
	v, err = PCO2FromCO2aq(co2aq)
	if err != nil {
		return nil, err
	}
	pco2, err := NewConcentration(v, PCO2)
	if err != nil {
		return nil, err
	}
	v, err = PHFromH2CO3HCO3(h2co3, hco3)
	if err != nil {
		return nil, err
	}
	ph, err := NewPH(v)
	if err != nil {
		return nil, err
	}
	return &System{pco2: pco2, ph: ph, co2aq: co2aq, h2co3: h2co3,
		hco3: hco3, co3: co3, dic: dic}, nil
}

// PCO2 returns the partial pressure of gas-phase CO2 [atm].
func (s *System) PCO2() *Concentration { return s.pco2 }

// PH returns the pH of the solution.
func (s *System) PH() *PH { return s.ph }

// CO2aq returns the dissolved CO2 concentration [mol/L].
func (s *System) CO2aq() *Concentration { return s.co2aq }

// H2CO3 returns the carbonic acid concentration [mol/L].
func (s *System) H2CO3() *Concentration { return s.h2co3 }

// HCO3 returns the bicarbonate concentration [mol/L].
func (s *System) HCO3() *Concentration { return s.hco3 }

// CO3 returns the carbonate concentration [mol/L].
func (s *System) CO3() *Concentration { return s.co3 }

// DIC returns the dissolved inorganic carbon concentration [mol/L].
func (s *System) DIC() *Concentration { return s.dic }

// OutputOptions returns the names of the variables tracked by the
// model and their units.
func OutputOptions() (names, units []string) {
	names = []string{"CO2aq", "H2CO3", "HCO3", "CO3", "DIC", "PCO2", "pH"}
	units = []string{"mol/L", "mol/L", "mol/L", "mol/L", "mol/L", "atm", "s.u."}
	return names, units
}

// Outputs returns the names of the variables that can be retrieved
// from a System.
func (s *System) Outputs() []string {
	names, _ := OutputOptions()
	return names
}

// Value returns the value of the named variable.
func (s *System) Value(variable string) (float64, error) {
	switch variable {
	case "CO2aq":
		return s.co2aq.Value, nil
	case "H2CO3":
		return s.h2co3.Value, nil
	case "HCO3":
		return s.hco3.Value, nil
	case "CO3":
		return s.co3.Value, nil
	case "DIC":
		return s.dic.Value, nil
	case "PCO2":
		return s.pco2.Value, nil
	case "pH":
		return s.ph.Value, nil
	}
	return math.NaN(), fmt.Errorf("carbonate: invalid variable name %s; valid names are %v", variable, s.Outputs())
}

// Units returns the units of the named variable.
func (s *System) Units(variable string) (string, error) {
	switch variable {
	case "CO2aq", "H2CO3", "HCO3", "CO3", "DIC":
		return "mol/L", nil
	case "PCO2":
		return "atm", nil
	case "pH":
		return "s.u.", nil
	}
	return "", fmt.Errorf("carbonate: invalid variable name %s; valid names are %v", variable, s.Outputs())
}

// Quantity returns the named variable as a dimensioned quantity.
func (s *System) Quantity(variable string) (*unit.Unit, error) {
	switch variable {
	case "CO2aq":
		return s.co2aq.Quantity(), nil
	case "H2CO3":
		return s.h2co3.Quantity(), nil
	case "HCO3":
		return s.hco3.Quantity(), nil
	case "CO3":
		return s.co3.Quantity(), nil
	case "DIC":
		return s.dic.Quantity(), nil
	case "PCO2":
		return s.pco2.Quantity(), nil
	case "pH":
		return s.ph.Quantity(), nil
	}
	return nil, fmt.Errorf("carbonate: invalid variable name %s; valid names are %v", variable, s.Outputs())
}

// MassBalance returns the difference between the dissolved inorganic
// carbon of the system and the sum of its component species [mol/L].
// A well-formed System balances to within floating-point rounding.
func (s *System) MassBalance() *unit.Unit {
	return unit.Sub(s.dic.Quantity(), s.co2aq.Quantity(), s.hco3.Quantity(), s.co3.Quantity())
}
