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
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/aquachem/carbonate"
	"github.com/ctessum/gobra"
	"github.com/lnashier/viper"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Carbonate.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "PHSweep.PCO2",
			usage: `
              PHSweep.PCO2 specifies the fixed partial pressure of CO2 [atm]
              that the solution is in equilibrium with during a pH sweep.`,
			defaultVal: carbonate.DefaultPCO2,
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "PHSweep.Min",
			usage: `
              PHSweep.Min specifies the first pH value of a pH sweep.`,
			defaultVal: carbonate.DefaultPHMin,
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "PHSweep.Max",
			usage: `
              PHSweep.Max specifies the last pH value of a pH sweep.`,
			defaultVal: carbonate.DefaultPHMax,
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "PHSweep.Step",
			usage: `
              PHSweep.Step specifies the pH increment between successive
              points of a pH sweep.`,
			defaultVal: carbonate.DefaultPHStep,
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "HCO3Sweep.DIC",
			usage: `
              HCO3Sweep.DIC specifies the fixed total dissolved inorganic
              carbon concentration [mol/L] during a bicarbonate sweep.`,
			defaultVal: carbonate.DefaultDIC,
			flagsets:   []*pflag.FlagSet{outgassingCmd.Flags()},
		},
		{
			name: "HCO3Sweep.Start",
			usage: `
              HCO3Sweep.Start specifies the first bicarbonate concentration
              [mol/L] of a bicarbonate sweep.`,
			defaultVal: carbonate.DefaultHCO3Start,
			flagsets:   []*pflag.FlagSet{outgassingCmd.Flags()},
		},
		{
			name: "HCO3Sweep.Factor",
			usage: `
              HCO3Sweep.Factor specifies the ratio between successive
              bicarbonate concentrations of a bicarbonate sweep. The sweep
              ends when the concentration would exceed HCO3Sweep.DIC.`,
			defaultVal: carbonate.DefaultHCO3Factor,
			flagsets:   []*pflag.FlagSet{outgassingCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the sweep results are saved. The
              extension selects the format, either ".csv" or ".xlsx". It can
              include environment variables.`,
			defaultVal: "carbonate_output.csv",
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags(), outgassingCmd.Flags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables maps the names of the columns that should be
              included in the output file to expressions that define how they
              are calculated from the sweep variables, for example
              {"logPCO2": "log10(PCO2)"}. If it is empty, every sweep
              variable is written unchanged. It can include environment
              variables.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags(), outgassingCmd.Flags()},
		},
		{
			name: "Overwrite",
			usage: `
              Overwrite specifies whether the output file should replace a
              file that already exists at the same path.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags(), outgassingCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path where a chart of the sweep results is
              saved as a PNG image. If it is left blank, no chart is saved.
              It can include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags(), outgassingCmd.Flags()},
		},
		{
			name: "ListenAddr",
			usage: `
              ListenAddr is the address that the web server listens on.`,
			defaultVal: "localhost:8080",
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
		{
			name: "OpenBrowser",
			usage: `
              OpenBrowser specifies whether the web interface should be
              opened in a browser when the server starts.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("CARBONATE")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(speciationCmd)
	Root.AddCommand(outgassingCmd)
	Root.AddCommand(serveCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("carbonate: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "carbonate",
	Short: "A chemical equilibrium model for the aqueous carbonate system.",
	Long: `Carbonate calculates the equilibrium speciation of carbon dioxide,
carbonic acid, bicarbonate, and carbonate in water.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'CARBONATE_var' where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Carbonate.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Carbonate v%s\n", carbonate.Version)
		cmd.Printf("Carbonate v%s\n", carbonate.Version)
	},
	DisableAutoGenTag: true,
}

// speciationCmd is a command that calculates carbonate speciation
// across a range of pH values.
var speciationCmd = &cobra.Command{
	Use:   "speciation",
	Short: "Calculate carbonate speciation across a pH sweep.",
	Long: `speciation calculates the equilibrium concentrations of the dissolved
carbonate species in water that is in contact with a fixed partial
pressure of CO2, at each pH value in a sweep, and writes the results
to OutputFile. If PlotFile is specified, a chart of the results is
saved there as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sweep, err := PHSweepConfig(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		return RunSpeciation(
			sweep,
			outputFile,
			Cfg.GetBool("Overwrite"),
			checkOutputVars(GetStringMapString("OutputVariables", Cfg)),
			os.ExpandEnv(Cfg.GetString("PlotFile")),
		)
	},
	DisableAutoGenTag: true,
}

// outgassingCmd is a command that calculates the CO2 partial pressure
// over solutions with increasing bicarbonate concentrations.
var outgassingCmd = &cobra.Command{
	Use:   "outgassing",
	Short: "Calculate CO2 partial pressure across a bicarbonate sweep.",
	Long: `outgassing calculates the partial pressure of CO2 over solutions
holding a fixed amount of dissolved inorganic carbon while the
bicarbonate concentration increases geometrically, and writes the
results to OutputFile. If PlotFile is specified, a chart of the
results is saved there as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sweep, err := HCO3SweepConfig(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		return RunOutgassing(
			sweep,
			outputFile,
			Cfg.GetBool("Overwrite"),
			checkOutputVars(GetStringMapString("OutputVariables", Cfg)),
			os.ExpandEnv(Cfg.GetString("PlotFile")),
		)
	},
	DisableAutoGenTag: true,
}

// serveCmd is a command that serves the model over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the model over HTTP.",
	Long: `serve starts a web server that draws charts of carbonate speciation
and CO2 outgassing and lists the model variables. Sweep parameters can
be changed through URL query parameters; refer to the index page for
details.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunServe(Cfg.GetString("ListenAddr"), Cfg.GetBool("OpenBrowser"))
	},
	DisableAutoGenTag: true,
}

// StartWebServer starts the web server for the configuration GUI.
func StartWebServer() {
	setConfig() // Ignore any errors for now.

	http.HandleFunc("/setConfig", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		configFile := r.Form["config"][0]
		Root.Flags().Set("config", configFile)
		err := setConfig()
		if err != nil {
			http.Error(w, err.Error(), 204)
			return
		}
		config := make(map[string]interface{})
		for _, option := range options {
			config[option.name] = Cfg.Get(option.name)
		}
		e := json.NewEncoder(w)
		if err := e.Encode(config); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
	})

	log.Println("Loading front-end...")

	for _, cmd := range []*cobra.Command{Root, versionCmd, speciationCmd,
		outgassingCmd, serveCmd} {
		cmd.SilenceUsage = true // We don't want the usage messages in the GUI.
	}

	const address = "localhost:7272"
	const tmpl = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Carbonate</title>
	<style>
		html, body {padding: 0; margin: 2% 0; font-family: sans-serif;}
		.container { max-width: 700px; margin: 0 auto; padding: 10px; }
		div[id^="gobra-"] blockquote { border-left: 3px solid #bbb; margin: .3em; color: #333; padding-left: 5px; font-size: 75%; }
		div[id^="gobra-"] input { font-family: monospace; margin-left: .2em; width: 50%; outline:none; }
		.red-border{ border: 1px solid #c35; }
		.green-border{ border: 1px solid #3c5; }
		.blue-border{ border: 1px solid #35c; }
	</style>
</head>
<body>
<div class="container">
	<h1>Carbonate</h1>
	<p>Configure the calculation below.</p>
	<p>
		Color key: black=default;
		<font color="red">red</font>=error;
		<font color="green">green</font>=value from config file;
		<font color="blue">blue</font>=user entered
	</p>
	<div>
		{{.}}
	</div>
	<footer>
		© 2019 Carbonate Authors
	</footer>
</div>

<script>
// Mark fields that the user has changed.

let allFlags = [...document.querySelectorAll('[data-name]')];
allFlags.forEach(x => {
	let inputField = x.children[0];
	inputField.addEventListener("input", e => {
		inputField.classList.remove("green-border");
		inputField.classList.add("blue-border");
	})
})

// If the configuration file is changed, send the new file path
// to the server and update the other fields.

let configInput = allFlags.filter(x => x.dataset.name == "config")[0].children[0];
configInput.addEventListener("input", e => {
	fetch("http://` + address + `/setConfig?config="+configInput.value)
		.then( res => {
			if (res.status !== 200) {
				if (res.status == 204) {
					configInput.classList.remove("blue-border");
					configInput.classList.remove("green-border");
					configInput.classList.add("red-border");
				} else {
					console.log("Error fetching /setConfig: ", response.text());
				}
			} else {
				res.json().then( data => {
					configInput.classList.remove("red-border");
					for (let key in data)
						for(let f of allFlags)
							if (f.dataset.name == key) {
								let input = f.children[0];
								var newValue = JSON.stringify(data[key]).replace(/^"+|"+$/g,'');
								if (input.value != newValue) {
									input.value = newValue
									input.classList.remove("blue-border");
									input.classList.add("green-border");
								}
							}
				})
			}
		})
		.catch( err => {
			console.log("Error fetching /setConfig", err)
		})
})
</script>
</body>
</html>`

	output := template.Must(template.New("").Parse(tmpl))
	server := gobra.Server{Root: Root, ServerAddress: address, AllowCORS: false, HTML: output}
	log.Println("Server starting... ")
	open.Run("http://" + address)
	fmt.Println("If not opened automatically, please visit http://localhost:7272")
	server.Start()
}
