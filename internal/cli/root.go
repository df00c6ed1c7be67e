// Package cli implements the rdfconv command line tool.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoknoesis/rdf-serializer/logger"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version reported by --version; main passes values
// injected with ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// app is the state shared by the commands of one root command.
type app struct {
	v   *viper.Viper
	log logger.Logger
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix("RDFCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return &app{v: v}
}

// NewRootCommand builds the rdfconv command tree. Settings are read from
// flags, then RDFCONV_* environment variables, then the --config file.
func NewRootCommand() *cobra.Command {
	return newApp().rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	defaults := DefaultConfig()
	var configFile string

	root := &cobra.Command{
		Use:           "rdfconv",
		Short:         "Convert RDF datasets between serialization formats",
		Long:          "rdfconv reads N-Quads, N-Triples or JSON-LD and writes Turtle, TriG, N-Triples, N-Quads, RDF/XML, JSON-LD or xRDF.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				a.v.SetConfigFile(configFile)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %s: %w", configFile, err)
				}
			}
			cfg := configFrom(a.v)
			log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (toml, yaml or json)")

	flags.String("log-format", defaults.Log.Format, "log encoding: text or json")
	mustBindPFlag(a.v, logFormatConf, flags.Lookup("log-format"))
	mustBindEnv(a.v, logFormatConf, "RDFCONV_LOG_FORMAT")

	flags.String("log-level", defaults.Log.Level, "log level: none, debug, info, warn or error")
	mustBindPFlag(a.v, logLevelConf, flags.Lookup("log-level"))
	mustBindEnv(a.v, logLevelConf, "RDFCONV_LOG_LEVEL")

	root.AddCommand(a.newConvertCommand())
	root.AddCommand(newFormatsCommand())
	return root
}
