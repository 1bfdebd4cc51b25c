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
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Dimensions of the charts served over HTTP.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// Server serves the model over HTTP: an index page, PNG charts of pH
// and bicarbonate sweeps, and a JSON listing of the model variables.
// Sweep parameters can be overridden through URL query parameters;
// see the handler documentation below for their names.
type Server struct {
	// Log is the logger for server events. The default is the
	// logrus standard logger.
	Log logrus.FieldLogger

	mux *http.ServeMux
}

// NewServer creates a new Server with its handlers registered.
func NewServer() *Server {
	s := &Server{
		Log: logrus.StandardLogger(),
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.indexHandler)
	s.mux.HandleFunc("/speciation.png", s.speciationHandler)
	s.mux.HandleFunc("/outgassing.png", s.outgassingHandler)
	s.mux.HandleFunc("/variables", s.variablesHandler)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Log.WithFields(logrus.Fields{
		"url":  r.URL.String(),
		"addr": r.RemoteAddr,
	}).Info("carbonate serving request")
	s.mux.ServeHTTP(w, r)
}

// formValue returns the named form value as a number, or def if the
// value is absent.
func formValue(r *http.Request, name string, def float64) (float64, error) {
	v := r.FormValue(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("carbonate: parsing query parameter %s: %v", name, err)
	}
	return f, nil
}

// speciationHandler serves a chart of carbonate speciation against
// pH. The query parameters pco2, min, max, and step override the
// default sweep parameters.
func (s *Server) speciationHandler(w http.ResponseWriter, r *http.Request) {
	sweep := &PHSweep{}
	var err error
	if sweep.PCO2, err = formValue(r, "pco2", DefaultPCO2); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sweep.Min, err = formValue(r, "min", DefaultPHMin); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sweep.Max, err = formValue(r, "max", DefaultPHMax); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sweep.Step, err = formValue(r, "step", DefaultPHStep); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	results, err := sweep.Run()
	if err != nil {
		s.Log.WithError(err).Error("carbonate generating speciation chart")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := SpeciationPlot(results)
	if err != nil {
		s.Log.WithError(err).Error("carbonate generating speciation chart")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.servePNG(w, p)
}

// outgassingHandler serves a chart of the CO2 partial pressure over a
// solution against its bicarbonate concentration. The query
// parameters dic, start, and factor override the default sweep
// parameters.
func (s *Server) outgassingHandler(w http.ResponseWriter, r *http.Request) {
	sweep := &HCO3Sweep{}
	var err error
	if sweep.DIC, err = formValue(r, "dic", DefaultDIC); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sweep.Start, err = formValue(r, "start", DefaultHCO3Start); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sweep.Factor, err = formValue(r, "factor", DefaultHCO3Factor); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	results, err := sweep.Run()
	if err != nil {
		s.Log.WithError(err).Error("carbonate generating outgassing chart")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := OutgassingPlot(results)
	if err != nil {
		s.Log.WithError(err).Error("carbonate generating outgassing chart")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.servePNG(w, p)
}

// servePNG renders p as a PNG image and writes it to w.
func (s *Server) servePNG(w http.ResponseWriter, p *plot.Plot) {
	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		s.Log.WithError(err).Error("carbonate rendering chart")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := wt.WriteTo(w); err != nil {
		s.Log.WithError(err).Error("carbonate writing chart")
	}
}

// variablesHandler serves the names and units of the model variables
// as JSON.
func (s *Server) variablesHandler(w http.ResponseWriter, r *http.Request) {
	names, units := OutputOptions()
	vars := make(map[string]string, len(names))
	for i, name := range names {
		vars[name] = units[i]
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(vars); err != nil {
		s.Log.WithError(err).Error("carbonate encoding variable list")
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Carbonate</title></head>
<body>
<h1>Carbonate</h1>
<p>Equilibrium speciation of the aqueous carbonate system.</p>
<ul>
<li><a href="/speciation.png">Concentrations of carbonate species vs pH</a></li>
<li><a href="/outgassing.png">CO2 partial pressure vs bicarbonate concentration</a></li>
<li><a href="/variables">Model variables and units (JSON)</a></li>
</ul>
</body>
</html>
`

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}
