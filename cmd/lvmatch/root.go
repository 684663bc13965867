package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmatch/internal/logx"
)

const envPrefix = "lvmatch"

// Flag names, shared by cobra and viper.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagNoColor  = "no-color"
)

var (
	// ErrUnknownMode is returned for an unsupported --mode.
	ErrUnknownMode = errors.New("lvmatch: unknown mode")

	// ErrUnknownFamily is returned for an unsupported --family.
	ErrUnknownFamily = errors.New("lvmatch: unknown graph family")
)

// app carries the resolved configuration into the subcommands.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

// newRootCommand wires the command tree to a fresh viper instance. Flags are
// bound to viper so LVMATCH_* variables and the config file fill in whatever
// the command line leaves unset.
func newRootCommand() (*cobra.Command, error) {
	a := &app{v: viper.New(), log: zerolog.Nop()}
	a.v.SetConfigType("yaml")
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:               "lvmatch",
		Short:             "Maximum and weighted matchings on general graphs",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "YAML config file")
	pf.String(flagLogLevel, "info", "log level: trace, debug, info, warn, error")
	pf.Bool(flagNoColor, false, "disable coloured log output")

	match := newMatchCommand(a)
	gen := newGenCommand(a)
	root.AddCommand(match, gen)

	for _, fs := range []*pflag.FlagSet{pf, match.Flags(), gen.Flags()} {
		if err := a.v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	return root, nil
}

// setup reads the optional config file and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if path := a.v.GetString(flagConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	log, err := logx.New(cmd.ErrOrStderr(), logx.Options{
		Level:   a.v.GetString(flagLogLevel),
		NoColor: a.v.GetBool(flagNoColor),
	})
	if err != nil {
		return err
	}
	a.log = log

	return nil
}
