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

	"github.com/ctessum/unit"
)

var (
	// The unit package reserves the symbols "mol", "L", and "M",
	// so aqueous molarity and gas-phase partial pressure get their
	// own dimensions.
	molarDim = unit.NewDimension("molar")
	atmDim   = unit.NewDimension("atm")
)

// Dimensions of the quantities tracked by this package, for use with
// the unit package.
var (
	// Molar is aqueous concentration [mol L-1].
	Molar = unit.Dimensions{molarDim: 1}

	// Atmosphere is gas-phase partial pressure [atm].
	Atmosphere = unit.Dimensions{atmDim: 1}
)

// Species identifies one of the chemical quantities tracked by the
// carbonate system.
type Species int

// The species of the carbonate system.
const (
	// CO2aq is dissolved carbon dioxide [mol/L].
	CO2aq Species = iota
	// H2CO3 is carbonic acid [mol/L]. Dissolved CO2 and carbonic
	// acid are treated as interchangeable.
	H2CO3
	// HCO3 is bicarbonate ion [mol/L].
	HCO3
	// CO3 is carbonate ion [mol/L].
	CO3
	// DIC is dissolved inorganic carbon [mol/L], the sum of CO2aq,
	// HCO3, and CO3.
	DIC
	// PCO2 is the partial pressure of gas-phase carbon dioxide [atm].
	PCO2
)

var speciesNames = []string{"CO2aq", "H2CO3", "HCO3", "CO3", "DIC", "PCO2"}

func (s Species) String() string {
	if s < CO2aq || s > PCO2 {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// Units returns the units of measurement of species s.
func (s Species) Units() string {
	if s == PCO2 {
		return "atm"
	}
	return "mol/L"
}

// Dimensions returns the dimensions of species s for use with the
// unit package.
func (s Species) Dimensions() unit.Dimensions {
	if s == PCO2 {
		return Atmosphere
	}
	return Molar
}

// A Concentration is a non-negative amount of one species: an aqueous
// concentration [mol/L], or, for PCO2, a partial pressure [atm].
type Concentration struct {
	Value   float64
	Species Species
}

// NewConcentration creates a Concentration of the given species,
// returning an error wrapping ErrInvalidValue if value is negative.
// A NaN value is accepted and propagates through any calculation
// that uses it.
func NewConcentration(value float64, species Species) (*Concentration, error) {
	if value < 0 {
		return nil, fmt.Errorf("carbonate: %s value %g is negative: %w", species, value, ErrInvalidValue)
	}
	return &Concentration{Value: value, Species: species}, nil
}

// Quantity returns c as a dimensioned quantity.
func (c *Concentration) Quantity() *unit.Unit {
	return unit.New(c.Value, c.Species.Dimensions())
}

func (c *Concentration) String() string {
	return fmt.Sprintf("%s = %g %s", c.Species, c.Value, c.Species.Units())
}

// A PH is the acidity of a solution on the conventional scale of
// 0 (most acidic) to 14 (most alkaline).
type PH struct {
	Value float64
}

// NewPH creates a PH, returning an error wrapping ErrInvalidRange if
// value is outside of the 0 to 14 scale.
func NewPH(value float64) (*PH, error) {
	if value < 0 || value > 14 {
		return nil, fmt.Errorf("carbonate: pH %g is outside of the 0 to 14 scale: %w", value, ErrInvalidRange)
	}
	return &PH{Value: value}, nil
}

// Quantity returns p as a dimensionless quantity.
func (p *PH) Quantity() *unit.Unit {
	return unit.New(p.Value, unit.Dimless)
}

func (p *PH) String() string {
	return fmt.Sprintf("pH = %g", p.Value)
}
