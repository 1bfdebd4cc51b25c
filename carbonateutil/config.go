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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aquachem/carbonate"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// PHSweepConfig unmarshals a viper configuration for a pH sweep.
func PHSweepConfig(cfg *viper.Viper) (*carbonate.PHSweep, error) {
	s := carbonate.PHSweep{
		PCO2: cfg.GetFloat64("PHSweep.PCO2"),
		Min:  cfg.GetFloat64("PHSweep.Min"),
		Max:  cfg.GetFloat64("PHSweep.Max"),
		Step: cfg.GetFloat64("PHSweep.Step"),
	}

	vars := []float64{s.PCO2, s.Step}
	varNames := []string{"PHSweep.PCO2", "PHSweep.Step"}
	for i, v := range vars {
		if !(v > 0) {
			return nil, fmt.Errorf("parsing pH sweep configuration: %s=%g but should be >0", varNames[i], v)
		}
	}
	if !(s.Max > s.Min) {
		return nil, fmt.Errorf("parsing pH sweep configuration: PHSweep.Max=%g but should be greater than PHSweep.Min=%g", s.Max, s.Min)
	}

	return &s, nil
}

// HCO3SweepConfig unmarshals a viper configuration for a bicarbonate sweep.
func HCO3SweepConfig(cfg *viper.Viper) (*carbonate.HCO3Sweep, error) {
	s := carbonate.HCO3Sweep{
		DIC:    cfg.GetFloat64("HCO3Sweep.DIC"),
		Start:  cfg.GetFloat64("HCO3Sweep.Start"),
		Factor: cfg.GetFloat64("HCO3Sweep.Factor"),
	}

	vars := []float64{s.DIC, s.Start}
	varNames := []string{"HCO3Sweep.DIC", "HCO3Sweep.Start"}
	for i, v := range vars {
		if !(v > 0) {
			return nil, fmt.Errorf("parsing bicarbonate sweep configuration: %s=%g but should be >0", varNames[i], v)
		}
	}
	if !(s.Factor > 1) {
		return nil, fmt.Errorf("parsing bicarbonate sweep configuration: HCO3Sweep.Factor=%g but should be >1", s.Factor)
	}

	return &s, nil
}

// checkOutputVars expands any environment variables in the output variable
// definitions and removes line breaks from them. An empty map is allowed;
// it means that every sweep variable should be written unchanged.
func checkOutputVars(vars map[string]string) map[string]string {
	for k, v := range vars {
		v = strings.Replace(v, "\r\n", " ", -1)
		v = strings.Replace(v, "\n", " ", -1)
		vars[os.ExpandEnv(k)] = os.ExpandEnv(v)
	}
	return vars
}

// checkOutputFile makes sure that the output file is specified and that
// the directory it should be written to exists.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="output.csv"`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("carbonate: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for getStringMapString variable %s: %#v", varName, i))
	}
}
