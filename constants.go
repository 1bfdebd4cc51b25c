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

// Equilibrium constants for the carbonate system in fresh water at
// 25°C and 1 atm total pressure.
const (
	// KH is the Henry's law constant for the dissolution of gas-phase
	// CO2 in water [mol L-1 atm-1].
	KH = 3.3e-2

	// K1 is the first dissociation constant of carbonic acid [mol L-1]:
	// H2CO3 <=> H+ + HCO3-.
	K1 = 4.3e-7

	// K2 is the second dissociation constant of carbonic acid [mol L-1]:
	// HCO3- <=> H+ + CO3--.
	K2 = 4.7e-11
)
