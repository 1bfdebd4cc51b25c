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
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/tealeg/xlsx"
)

// Outputter writes sweep results to a file.
//
// fileName contains the path where the output will be saved; its
// extension selects the format, either ".csv" or ".xlsx".
//
// outputVariables maps the names of the columns that should be
// written to expressions that define how they are calculated from
// the sweep variables, for example
// {"CO2aq": "CO2aq", "logPCO2": "log10(PCO2)"}. If it is empty, every
// sweep variable is written unchanged. The first column of the output
// is always the independent variable of the sweep; the remaining
// columns are ordered alphabetically.
//
// Functions usable in expressions are defined in outputFunctions.
type Outputter struct {
	fileName        string
	overwrite       bool
	outputVariables map[string]string
	outputFunctions map[string]govaluate.ExpressionFunction
	expressions     map[string]*govaluate.EvaluableExpression
}

// NewOutputter initializes a new Outputter and adds a set of default
// output functions. Default functions include:
//
// 'exp(x)', the exponential function e^x.
//
// 'log(x)', the natural logarithm of x.
//
// 'log10(x)', the base-10 logarithm of x.
//
// 'pow(x, y)', x raised to the power y.
//
// If overwrite is false, writing fails instead of replacing an
// existing file.
func NewOutputter(fileName string, overwrite bool, outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	defaultOutputFuncs := map[string]govaluate.ExpressionFunction{
		"exp": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("carbonate: got %d arguments for function 'exp', but needs 1", len(arg))
			}
			return (float64)(math.Exp(arg[0].(float64))), nil
		},
		"log": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("carbonate: got %d arguments for function 'log', but needs 1", len(arg))
			}
			return (float64)(math.Log(arg[0].(float64))), nil
		},
		"log10": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("carbonate: got %d arguments for function 'log10', but needs 1", len(arg))
			}
			return (float64)(math.Log10(arg[0].(float64))), nil
		},
		"pow": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 2 {
				return nil, fmt.Errorf("carbonate: got %d arguments for function 'pow', but needs 2", len(arg))
			}
			return (float64)(math.Pow(arg[0].(float64), arg[1].(float64))), nil
		},
	}

	for key, val := range outputFunctions {
		defaultOutputFuncs[key] = val
	}

	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".csv", ".xlsx":
	default:
		return nil, fmt.Errorf("carbonate: output file %s has unsupported extension %q; valid extensions are .csv and .xlsx", fileName, ext)
	}

	o := &Outputter{
		fileName:        fileName,
		overwrite:       overwrite,
		outputVariables: outputVariables,
		outputFunctions: defaultOutputFuncs,
		expressions:     make(map[string]*govaluate.EvaluableExpression),
	}

	for name, expr := range o.outputVariables {
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(expr, o.outputFunctions)
		if err != nil {
			return nil, fmt.Errorf("carbonate: parsing the expression %q for output variable %s: %v", expr, name, err)
		}
		o.expressions[name] = expression
	}
	return o, nil
}

// Output writes the given sweep results to the file specified when
// the Outputter was created.
func (o *Outputter) Output(results *SweepResults) error {
	if results == nil {
		return fmt.Errorf("carbonate: writing output to %s: %w", o.fileName, ErrMissingInput)
	}
	if !o.overwrite {
		if _, err := os.Stat(o.fileName); err == nil {
			return fmt.Errorf("carbonate: output file %s already exists", o.fileName)
		}
	}

	expressions := o.expressions
	if len(expressions) == 0 {
		expressions = make(map[string]*govaluate.EvaluableExpression)
		for _, name := range results.Columns() {
			expression, err := govaluate.NewEvaluableExpressionWithFunctions(name, o.outputFunctions)
			if err != nil {
				return fmt.Errorf("carbonate: parsing the expression for output variable %s: %v", name, err)
			}
			expressions[name] = expression
		}
	}

	names := make([]string, 0, len(expressions))
	for name := range expressions {
		if name == results.Variable {
			return fmt.Errorf("carbonate: output variable name %s conflicts with the sweep variable", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	valid := make(map[string]struct{})
	valid[results.Variable] = struct{}{}
	for _, name := range results.Columns() {
		valid[name] = struct{}{}
	}
	for _, name := range names {
		for _, v := range expressions[name].Vars() {
			if _, ok := valid[v]; !ok {
				return fmt.Errorf("carbonate: the expression for output variable %s refers to %s, which is not a variable of a %s sweep",
					name, v, results.Variable)
			}
		}
	}

	rows := make([][]float64, results.Len())
	for i := 0; i < results.Len(); i++ {
		params := map[string]interface{}{results.Variable: results.X[i]}
		for _, name := range results.Columns() {
			col, err := results.Column(name)
			if err != nil {
				return err
			}
			params[name] = col[i]
		}
		row := make([]float64, 0, len(names)+1)
		row = append(row, results.X[i])
		for _, name := range names {
			v, err := expressions[name].Evaluate(params)
			if err != nil {
				return fmt.Errorf("carbonate: evaluating the expression for output variable %s: %v", name, err)
			}
			vf, ok := v.(float64)
			if !ok {
				return fmt.Errorf("carbonate: the expression for output variable %s gives a %T, not a number", name, v)
			}
			row = append(row, vf)
		}
		rows[i] = row
	}

	header := append([]string{results.Variable}, names...)
	switch strings.ToLower(filepath.Ext(o.fileName)) {
	case ".csv":
		return o.writeCSV(header, rows)
	default:
		return o.writeXLSX(header, rows)
	}
}

func (o *Outputter) writeCSV(header []string, rows [][]float64) error {
	f, err := os.Create(o.fileName)
	if err != nil {
		return fmt.Errorf("carbonate: creating output file: %v", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("carbonate: writing output file %s: %v", o.fileName, err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("carbonate: writing output file %s: %v", o.fileName, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("carbonate: writing output file %s: %v", o.fileName, err)
	}
	return f.Close()
}

func (o *Outputter) writeXLSX(header []string, rows [][]float64) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Results")
	if err != nil {
		return fmt.Errorf("carbonate: writing output file %s: %v", o.fileName, err)
	}
	headerRow := sheet.AddRow()
	for _, name := range header {
		headerRow.AddCell().SetString(name)
	}
	for _, row := range rows {
		r := sheet.AddRow()
		for _, v := range row {
			r.AddCell().SetFloat(v)
		}
	}
	if err := f.Save(o.fileName); err != nil {
		return fmt.Errorf("carbonate: writing output file %s: %v", o.fileName, err)
	}
	return nil
}
