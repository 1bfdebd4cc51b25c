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

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"
)

// Default sweep parameters.
const (
	// DefaultPCO2 is the approximate present-day atmospheric CO2
	// partial pressure [atm].
	DefaultPCO2 = 4.0e-4

	// DefaultPHMin, DefaultPHMax, and DefaultPHStep span the full
	// pH scale in steps of 0.1.
	DefaultPHMin  = 0.0
	DefaultPHMax  = 14.0
	DefaultPHStep = 0.1

	// DefaultHCO3Start and DefaultHCO3Factor begin an outgassing
	// sweep at a trace bicarbonate concentration [mol/L] and
	// increase it geometrically.
	DefaultHCO3Start  = 1.0e-8
	DefaultHCO3Factor = 1.2

	// DefaultDIC is the dissolved inorganic carbon concentration
	// [mol/L] held fixed during an outgassing sweep.
	DefaultDIC = 1.0e-4
)

// A PHSweep calculates the speciation of the carbonate system across
// a range of pH values while the solution remains in equilibrium with
// a fixed partial pressure of gas-phase CO2.
type PHSweep struct {
	// PCO2 is the fixed CO2 partial pressure [atm].
	PCO2 float64

	// Min, Max, and Step describe the pH values visited: Step-sized
	// increments covering Min to Max inclusive.
	Min, Max, Step float64
}

// Run calculates the sweep. The results hold one equilibrium system
// per pH value, with columns CO2aq, H2CO3, HCO3, CO3, DIC, and PCO2.
func (s *PHSweep) Run() (*SweepResults, error) {
	if s.Step <= 0 {
		return nil, fmt.Errorf("carbonate: pH sweep step %g is not positive: %w", s.Step, ErrInvalidValue)
	}
	n := int(math.Round((s.Max-s.Min)/s.Step)) + 1
	if n < 2 {
		return nil, fmt.Errorf("carbonate: pH sweep from %g to %g by %g contains fewer than two points: %w",
			s.Min, s.Max, s.Step, ErrInvalidValue)
	}
	pco2, err := NewConcentration(s.PCO2, PCO2)
	if err != nil {
		return nil, err
	}
	x := floats.Span(make([]float64, n), s.Min, s.Max)
	x[0], x[n-1] = s.Min, s.Max // Span can miss the endpoints by rounding.
	r := &SweepResults{
		Variable: "pH",
		X:        x,
		order:    []string{"CO2aq", "H2CO3", "HCO3", "CO3", "DIC", "PCO2"},
		columns:  make(map[string][]float64),
	}
	for _, name := range r.order {
		r.columns[name] = make([]float64, 0, n)
	}
	for _, v := range r.X {
		ph, err := NewPH(v)
		if err != nil {
			return nil, err
		}
		sys, err := NewSystemPCO2PH(pco2, ph)
		if err != nil {
			return nil, err
		}
		for _, name := range r.order {
			val, err := sys.Value(name)
			if err != nil {
				return nil, err
			}
			r.columns[name] = append(r.columns[name], val)
		}
	}
	return r, nil
}

// An HCO3Sweep calculates the partial pressure of CO2 outgassing from
// a solution as its bicarbonate concentration rises toward the total
// dissolved inorganic carbon.
type HCO3Sweep struct {
	// DIC is the fixed dissolved inorganic carbon concentration
	// [mol/L].
	DIC float64

	// Start is the first bicarbonate concentration [mol/L] visited.
	Start float64

	// Factor is the ratio between successive bicarbonate
	// concentrations. The sweep ends when the concentration would
	// exceed DIC, so the result is empty if Start > DIC.
	Factor float64
}

// Run calculates the sweep. The results hold one PCO2 value per
// bicarbonate concentration.
func (s *HCO3Sweep) Run() (*SweepResults, error) {
	if s.Start <= 0 {
		return nil, fmt.Errorf("carbonate: HCO3 sweep start %g is not positive: %w", s.Start, ErrInvalidValue)
	}
	if s.Factor <= 1 {
		return nil, fmt.Errorf("carbonate: HCO3 sweep factor %g does not exceed 1: %w", s.Factor, ErrInvalidValue)
	}
	dic, err := NewConcentration(s.DIC, DIC)
	if err != nil {
		return nil, err
	}
	r := &SweepResults{
		Variable: "HCO3",
		order:    []string{"PCO2"},
		columns:  make(map[string][]float64),
	}
	for v := s.Start; v <= s.DIC; v *= s.Factor {
		hco3, err := NewConcentration(v, HCO3)
		if err != nil {
			return nil, err
		}
		pco2, err := PCO2FromDICHCO3(dic, hco3)
		if err != nil {
			return nil, err
		}
		r.X = append(r.X, v)
		r.columns["PCO2"] = append(r.columns["PCO2"], pco2)
	}
	return r, nil
}

// SweepResults holds the outcome of a sweep as aligned columns of
// values: the independent variable in X and one column per dependent
// variable.
type SweepResults struct {
	// Variable is the name of the independent variable.
	Variable string

	// X holds the values of the independent variable.
	X []float64

	columns map[string][]float64
	order   []string
}

// Len returns the number of sweep points.
func (r *SweepResults) Len() int { return len(r.X) }

// Columns returns the names of the dependent variables.
func (r *SweepResults) Columns() []string {
	return append([]string(nil), r.order...)
}

// Column returns the values of the named variable at each sweep
// point. The name of the independent variable returns the sweep
// points themselves.
func (r *SweepResults) Column(variable string) ([]float64, error) {
	if variable == r.Variable {
		return r.X, nil
	}
	if col, ok := r.columns[variable]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("carbonate: invalid variable name %s; valid names are %v",
		variable, append([]string{r.Variable}, r.order...))
}

// Units returns the units of the named sweep variable.
func (r *SweepResults) Units(variable string) (string, error) {
	switch variable {
	case "pH":
		return "s.u.", nil
	case "PCO2":
		return "atm", nil
	case "CO2aq", "H2CO3", "HCO3", "CO3", "DIC":
		return "mol/L", nil
	}
	return "", fmt.Errorf("carbonate: invalid variable name %s; valid names are %v",
		variable, append([]string{r.Variable}, r.order...))
}

// SweepStats holds summary statistics for one sweep variable.
type SweepStats struct {
	N        int
	Min, Max float64
	Mean     float64
	StdDev   float64 // sample standard deviation
}

// Summary returns summary statistics for the named sweep variable.
func (r *SweepResults) Summary(variable string) (*SweepStats, error) {
	col, err := r.Column(variable)
	if err != nil {
		return nil, err
	}
	if len(col) == 0 {
		return nil, fmt.Errorf("carbonate: cannot summarize %s: the sweep is empty", variable)
	}
	return &SweepStats{
		N:      len(col),
		Min:    stats.StatsMin(col),
		Max:    stats.StatsMax(col),
		Mean:   stats.StatsMean(col),
		StdDev: stats.StatsSampleStandardDeviation(col),
	}, nil
}
