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
	"net/http"
	"time"

	"github.com/aquachem/carbonate"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

// RunServe starts the model web server listening at addr. If openBrowser is
// true, the index page is also opened in a web browser. RunServe blocks for
// as long as the server is running.
func RunServe(addr string, openBrowser bool) error {
	logger := logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	s := carbonate.NewServer()
	s.Log = logger

	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	logger.Infof("listening on http://%s\n", addr)
	if openBrowser {
		open.Run("http://" + addr)
	}
	return srv.ListenAndServe()
}
