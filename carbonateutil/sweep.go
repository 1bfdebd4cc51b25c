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

package carbonateutil

import (
	"fmt"
	"log"

	"github.com/aquachem/carbonate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions for saved plot files.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// RunSpeciation calculates the equilibrium concentrations of the carbonate
// species at each pH value in sweep and writes the results to outputFile.
//
// overwrite specifies whether outputFile should be replaced if it already
// exists.
//
// OutputVariables maps the names of the columns that should be included in
// the output file to expressions specifying how they should be calculated
// from the sweep variables. If it is empty, every sweep variable is written
// unchanged.
//
// If plotFile isn't empty, a chart of the speciation is saved there as a
// PNG image.
func RunSpeciation(sweep *carbonate.PHSweep, outputFile string, overwrite bool,
	outputVariables map[string]string, plotFile string) error {
	log.Println("Running pH sweep...")
	results, err := sweep.Run()
	if err != nil {
		return err
	}
	return writeResults(results, outputFile, overwrite, outputVariables,
		plotFile, carbonate.SpeciationPlot)
}

// RunOutgassing calculates the CO2 partial pressure over each solution in
// sweep and writes the results to outputFile. The arguments work the same
// way as those of RunSpeciation.
func RunOutgassing(sweep *carbonate.HCO3Sweep, outputFile string, overwrite bool,
	outputVariables map[string]string, plotFile string) error {
	log.Println("Running bicarbonate sweep...")
	results, err := sweep.Run()
	if err != nil {
		return err
	}
	return writeResults(results, outputFile, overwrite, outputVariables,
		plotFile, carbonate.OutgassingPlot)
}

// writeResults saves results to outputFile and, if plotFile isn't empty,
// saves a chart drawn by plotFunc there as well.
func writeResults(results *carbonate.SweepResults, outputFile string, overwrite bool,
	outputVariables map[string]string, plotFile string,
	plotFunc func(*carbonate.SweepResults) (*plot.Plot, error)) error {

	o, err := carbonate.NewOutputter(outputFile, overwrite, outputVariables, nil)
	if err != nil {
		return err
	}
	if err := o.Output(results); err != nil {
		return err
	}
	log.Printf("Wrote %d rows to %s", results.Len(), outputFile)
	if results.Len() > 0 {
		for _, name := range append([]string{results.Variable}, results.Columns()...) {
			s, err := results.Summary(name)
			if err != nil {
				return err
			}
			units, err := results.Units(name)
			if err != nil {
				return err
			}
			log.Printf("%s: %d values from %g to %g %s", name, s.N, s.Min, s.Max, units)
		}
	}

	if plotFile == "" {
		return nil
	}
	p, err := plotFunc(results)
	if err != nil {
		return err
	}
	if err := p.Save(plotWidth, plotHeight, plotFile); err != nil {
		return fmt.Errorf("carbonate: saving the chart to %s: %v", plotFile, err)
	}
	log.Printf("Saved chart to %s", plotFile)
	return nil
}
