/*
Copyright © 2019 the Carbonate authors.
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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// SpeciationPlot draws the concentrations of the dissolved carbonate
// species in results against pH, on a logarithmic concentration
// axis. Points with non-positive concentrations are left out because
// they cannot be shown on a logarithmic axis.
func SpeciationPlot(results *SweepResults) (*plot.Plot, error) {
	if results == nil {
		return nil, fmt.Errorf("carbonate: plotting speciation: %w", ErrMissingInput)
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Concentrations of Carbonate Species vs pH"
	p.X.Label.Text = "pH"
	p.Y.Label.Text = "Concentration (mol/L)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}

	var args []interface{}
	for _, series := range []struct{ label, variable string }{
		{"H2CO3", "H2CO3"},
		{"HCO3-", "HCO3"},
		{"CO3--", "CO3"},
	} {
		col, err := results.Column(series.variable)
		if err != nil {
			return nil, err
		}
		var xy plotter.XYs
		for i, v := range col {
			if v <= 0 {
				continue
			}
			xy = append(xy, plotter.XY{X: results.X[i], Y: v})
		}
		args = append(args, series.label, xy)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, err
	}
	return p, nil
}

// OutgassingPlot draws the partial pressure of CO2 over a solution in
// results against its bicarbonate concentration.
func OutgassingPlot(results *SweepResults) (*plot.Plot, error) {
	if results == nil {
		return nil, fmt.Errorf("carbonate: plotting outgassing: %w", ErrMissingInput)
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "HCO3- Concentration vs PCO2"
	p.X.Label.Text = "HCO3- Concentration (mol/L)"
	p.Y.Label.Text = "PCO2 (atm)"

	col, err := results.Column("PCO2")
	if err != nil {
		return nil, err
	}
	xy := make(plotter.XYs, len(col))
	for i, v := range col {
		xy[i].X = results.X[i]
		xy[i].Y = v
	}
	if err := plotutil.AddLinePoints(p, "PCO2", xy); err != nil {
		return nil, err
	}
	return p, nil
}
