package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avdva/ieee754"
)

type app struct {
	v      *viper.Viper
	log    *log.Logger
	out    io.Writer
	config config
}

func newApp(out, errOut io.Writer) *app {
	logger := log.New()
	logger.SetOutput(errOut)
	logger.SetLevel(log.WarnLevel)
	return &app{
		v:   viper.New(),
		log: logger,
		out: out,
	}
}

func (a *app) decoder() *ieee754.Decoder {
	return &ieee754.Decoder{DecimalPlaces: a.config.DecimalPlaces}
}

func (a *app) rootCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:           "ieee754",
		Short:         "Decode and encode IEEE-754 binary floating-point values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(configFile)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is $HOME/.ieee754.yaml)")
	flags.String("output", defaultOutput, "output format: text or json")
	flags.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	flags.Int32("decimal-places", ieee754.DefaultDecimalPlaces, "maximum number of fractional digits of exact values")
	a.bindFlags(flags)

	cmd.AddCommand(a.decodeCmd(), a.encodeCmd(), a.stepCmd())
	return cmd
}

func run(args []string, out, errOut io.Writer) int {
	a := newApp(out, errOut)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := cmd.Execute(); err != nil {
		a.log.Error(err)
		return 1
	}
	return 0
}
