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
	"errors"
	"os"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestSpeciationPlot(t *testing.T) {
	s := &PHSweep{
		PCO2: DefaultPCO2,
		Min:  DefaultPHMin,
		Max:  DefaultPHMax,
		Step: DefaultPHStep,
	}
	r, err := s.Run()
	if err != nil {
		t.Fatal(err)
	}
	p, err := SpeciationPlot(r)
	if err != nil {
		t.Fatal(err)
	}
	file := "testSpeciationPlot.png"
	defer os.Remove(file)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, file); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("the plot file is empty")
	}

	if _, err := SpeciationPlot(nil); err == nil {
		t.Error("should be an error")
	} else if !errors.Is(err, ErrMissingInput) {
		t.Errorf("error should be ErrMissingInput but is %v", err)
	}
}

func TestOutgassingPlot(t *testing.T) {
	s := &HCO3Sweep{
		DIC:    DefaultDIC,
		Start:  DefaultHCO3Start,
		Factor: DefaultHCO3Factor,
	}
	r, err := s.Run()
	if err != nil {
		t.Fatal(err)
	}
	p, err := OutgassingPlot(r)
	if err != nil {
		t.Fatal(err)
	}
	file := "testOutgassingPlot.png"
	defer os.Remove(file)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, file); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatal(err)
	}

	if _, err := OutgassingPlot(nil); err == nil {
		t.Error("should be an error")
	} else if !errors.Is(err, ErrMissingInput) {
		t.Errorf("error should be ErrMissingInput but is %v", err)
	}

	// A speciation plot needs the columns of a pH sweep.
	if _, err := SpeciationPlot(r); err == nil {
		t.Error("should be an error")
	}
}
