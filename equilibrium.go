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
	"fmt"
	"math"
)

// PCO2FromCO2aq returns the equilibrium partial pressure [atm] of
// gas-phase CO2 over a solution with the given dissolved CO2
// concentration, applying Henry's law.
func PCO2FromCO2aq(co2aq *Concentration) (float64, error) {
	if co2aq == nil {
		return 0, fmt.Errorf("carbonate: calculating PCO2 from CO2aq: %w", ErrMissingInput)
	}
	return co2aq.Value / KH, nil
}

// CO2aqFromPCO2 returns the equilibrium concentration [mol/L] of
// dissolved CO2 in a solution under the given CO2 partial pressure,
// applying Henry's law.
func CO2aqFromPCO2(pco2 *Concentration) (float64, error) {
	if pco2 == nil {
		return 0, fmt.Errorf("carbonate: calculating CO2aq from PCO2: %w", ErrMissingInput)
	}
	return KH * pco2.Value, nil
}

// CO2aqFromH2CO3 returns the dissolved CO2 concentration [mol/L]
// corresponding to the given carbonic acid concentration. The two
// species are treated as interchangeable, so this is the identity.
func CO2aqFromH2CO3(h2co3 *Concentration) (float64, error) {
	if h2co3 == nil {
		return 0, fmt.Errorf("carbonate: calculating CO2aq from H2CO3: %w", ErrMissingInput)
	}
	return h2co3.Value, nil
}

// H2CO3FromDICHCO3CO3 returns the carbonic acid concentration [mol/L]
// left over after subtracting bicarbonate and carbonate from the
// dissolved inorganic carbon. The result is negative if the inputs
// are not mass balanced; that is not guarded against here.
func H2CO3FromDICHCO3CO3(dic, hco3, co3 *Concentration) (float64, error) {
	if dic == nil || hco3 == nil || co3 == nil {
		return 0, fmt.Errorf("carbonate: calculating H2CO3 from DIC, HCO3, and CO3: %w", ErrMissingInput)
	}
	return dic.Value - hco3.Value - co3.Value, nil
}

// HCO3FromH2CO3PH returns the equilibrium bicarbonate concentration
// [mol/L] of a solution with the given carbonic acid concentration
// and pH, applying the first dissociation equilibrium.
func HCO3FromH2CO3PH(h2co3 *Concentration, ph *PH) (float64, error) {
	if h2co3 == nil || ph == nil {
		return 0, fmt.Errorf("carbonate: calculating HCO3 from H2CO3 and pH: %w", ErrMissingInput)
	}
	hPlus := math.Pow(10, -ph.Value)
	return (K1 * h2co3.Value) / hPlus, nil
}

// CO3FromHCO3PH returns the equilibrium carbonate concentration
// [mol/L] of a solution with the given bicarbonate concentration and
// pH, applying the second dissociation equilibrium.
func CO3FromHCO3PH(hco3 *Concentration, ph *PH) (float64, error) {
	if hco3 == nil || ph == nil {
		return 0, fmt.Errorf("carbonate: calculating CO3 from HCO3 and pH: %w", ErrMissingInput)
	}
	hPlus := math.Pow(10, -ph.Value)
	return (K2 * hco3.Value) / hPlus, nil
}

// PHFromH2CO3HCO3 returns the pH of a solution with the given
// carbonic acid and bicarbonate concentrations, by inverting the
// first dissociation equilibrium.
//
// The inversion takes the natural logarithm of the hydrogen ion
// activity where the definition of pH calls for the base-10
// logarithm, so a pH computed here does not exactly invert
// HCO3FromH2CO3PH.
// TODO: change to log10; every computed pH shifts by a factor of
// ln(10), so downstream results need to be regenerated at the same
// time.
func PHFromH2CO3HCO3(h2co3, hco3 *Concentration) (float64, error) {
	if h2co3 == nil || hco3 == nil {
		return 0, fmt.Errorf("carbonate: calculating pH from H2CO3 and HCO3: %w", ErrMissingInput)
	}
	hPlus := (K1 * h2co3.Value) / hco3.Value
	return -math.Log(hPlus), nil
}
