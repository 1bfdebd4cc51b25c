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

// Parameters of the iterative equilibrium solver.
const (
	// solverTolerance is the largest absolute change in dissolved CO2
	// [mol/L] between successive iterations at which the iteration is
	// considered converged.
	solverTolerance = 1.0e-6

	// solverMaxIter bounds the number of iterations attempted before
	// giving up.
	solverMaxIter = 10000
)

// equilibrate partitions dissolved inorganic carbon between dissolved
// CO2 and carbonate at a fixed bicarbonate concentration. Starting
// from the assumption that all non-bicarbonate carbon is dissolved
// CO2, it repeatedly recomputes the carbonate pool required by the
// dissociation equilibria and the dissolved CO2 left over, until the
// dissolved CO2 concentration stops changing.
func equilibrate(dic, hco3 float64) (co2, co3 float64, err error) {
	if hco3 == 0 {
		return 0, 0, fmt.Errorf("carbonate: equilibrating CO2 and CO3 with zero HCO3: %w", ErrConvergenceFailure)
	}
	co2 = dic - hco3
	delta := math.Inf(1)
	for i := 0; i < solverMaxIter; i++ {
		denom := co2 * (K1 / hco3)
		if denom <= 0 {
			return 0, 0, fmt.Errorf("carbonate: equilibrating CO2 and CO3: divisor %g is not positive at iteration %d: %w",
				denom, i, ErrConvergenceFailure)
		}
		co3 = (K2 * hco3) / denom
		newCo2 := dic - hco3 - co3
		delta = math.Abs(newCo2 - co2)
		co2 = newCo2
		if delta <= solverTolerance {
			return co2, co3, nil
		}
	}
	return 0, 0, fmt.Errorf("carbonate: equilibrium iteration still changing by %g mol/L (tolerance %g) after %d iterations: %w",
		delta, solverTolerance, solverMaxIter, ErrConvergenceFailure)
}

// CO3FromDICHCO3 returns the equilibrium carbonate concentration
// [mol/L] of a solution with the given dissolved inorganic carbon and
// bicarbonate concentrations. There is no closed-form expression for
// this quantity, so it is solved for iteratively; an error wrapping
// ErrConvergenceFailure is returned if the iteration does not
// converge.
func CO3FromDICHCO3(dic, hco3 *Concentration) (float64, error) {
	if dic == nil || hco3 == nil {
		return 0, fmt.Errorf("carbonate: calculating CO3 from DIC and HCO3: %w", ErrMissingInput)
	}
	_, co3, err := equilibrate(dic.Value, hco3.Value)
	return co3, err
}

// PCO2FromDICHCO3 returns the equilibrium partial pressure [atm] of
// gas-phase CO2 over a solution with the given dissolved inorganic
// carbon and bicarbonate concentrations, iteratively solving for the
// dissolved CO2 concentration and then applying Henry's law.
func PCO2FromDICHCO3(dic, hco3 *Concentration) (float64, error) {
	if dic == nil || hco3 == nil {
		return 0, fmt.Errorf("carbonate: calculating PCO2 from DIC and HCO3: %w", ErrMissingInput)
	}
	co2, _, err := equilibrate(dic.Value, hco3.Value)
	if err != nil {
		return 0, err
	}
	return co2 / KH, nil
}
