// SPDX-License-Identifier: MIT
// Package: lvfuzzy/cmd/lvfuzzy
//
// root.go — root command, persistent flags and viper/env binding.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvfuzzy/config"
)

const (
	envPrefix     = "LVFUZZY"
	keyConfig     = "config"
	keyDebug      = "debug"
	keyDigits     = "digits"
	defaultDigits = 4
)

var errNoConfig = errors.New("no definitions file: pass --config or set " + envPrefix + "_CONFIG")

// app carries the per-invocation state shared by every subcommand.
type app struct {
	v      *viper.Viper
	logger *log.Logger
	out    io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: log.NewWithOptions(errOut, log.Options{Prefix: "lvfuzzy"}),
		out:    out,
	}

	var bindErr error
	cmd := &cobra.Command{
		Use:           "lvfuzzy",
		Short:         "Evaluate and combine fuzzy sets from a YAML definitions file",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if bindErr != nil {
				return bindErr
			}
			if a.v.GetBool(keyDebug) {
				a.logger.SetLevel(log.DebugLevel)
			}
			if a.v.GetInt(keyDigits) < 0 {
				return fmt.Errorf("--%s must be >= 0, got %d", keyDigits, a.v.GetInt(keyDigits))
			}
			a.logger.Debug("starting", "command", cmd.Name())

			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringP(keyConfig, "c", "", "YAML definitions file (env "+envPrefix+"_CONFIG)")
	flags.Bool(keyDebug, false, "enable debug logging on stderr")
	flags.Int(keyDigits, defaultDigits, "decimal places for printed degrees")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	bindErr = a.bindPersistentFlags(cmd, keyConfig, keyDebug, keyDigits)

	cmd.AddCommand(
		a.newEvalCmd(),
		a.newUnionCmd(),
		a.newIntersectCmd(),
		a.newMergeCmd(),
		a.newComplementCmd(),
		a.newCutCmd(),
		a.newKindsCmd(),
	)

	return cmd
}

// bindPersistentFlags binds each persistent flag named by keys to the
// viper key of the same name. A missing flag is an error, not a no-op.
func (a *app) bindPersistentFlags(cmd *cobra.Command, keys ...string) error {
	flags := cmd.PersistentFlags()
	for _, key := range keys {
		flag := flags.Lookup(key)
		if flag == nil {
			return fmt.Errorf("bind --%s: no such persistent flag", key)
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind --%s: %w", key, err)
		}
	}

	return nil
}

// loadDocument resolves the definitions path from flag or env and maps it.
func (a *app) loadDocument() (config.Document, error) {
	path := a.v.GetString(keyConfig)
	if path == "" {
		return config.Document{}, errNoConfig
	}

	doc, err := config.Load(path)
	if err != nil {
		return config.Document{}, err
	}
	a.logger.Debug("loaded definitions", "path", path, "points", len(doc.Domain), "sets", len(doc.Sets))

	return doc, nil
}

var longRoot = `
lvfuzzy reads a domain and a list of fuzzy sets from a YAML file and prints
their membership degrees, unions, intersections, complements and cuts.

Definitions file:
  domain: {start: 0, stop: 100, n: 11}
  sets:
    - {title: young, kind: trapezoidal, params: [0, 0, 10, 15]}
    - {title: adult, kind: gaussian,    params: [45, 12]}

Every flag can also be set through the environment, e.g. LVFUZZY_CONFIG.
`
