// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigcalc evaluates big integer operations from the command line.
//
// Usage:
//
//	bigcalc [flags] <op> operands...
//	bigcalc convert x
//	bigcalc round --digits n [--radix-kind decimal] [--mode to-zero] x
//
// Operands are read in --radix and results are printed in --out-radix.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/db47h/bignum/internal/config"
)

var version = "dev"

func main() {
	defer glog.Flush()
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

func errorf(w io.Writer, format string, args ...interface{}) {
	_, _ = color.New(color.FgRed).Fprintf(w, "bigcalc: "+format+"\n", args...)
}

// applyColor sets the global color switch from the color setting.
func applyColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var cfgFile string
	cfg := new(config.Config)

	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary precision integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			*cfg = *c
			applyColor(cfg.Color)
			glog.V(1).Infof("config: radix=%d out_radix=%d rounding=%s", cfg.Radix, cfg.OutRadix, cfg.Rounding)
			return nil
		},
	}
	root.SetOut(out)
	root.SetGlobalNormalizationFunc(normalizeFlags)

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "configuration file (TOML, YAML or JSON)")
	pf.Int("radix", 10, "radix of operands")
	pf.Int("out-radix", 10, "radix of results")
	pf.String("color", "auto", "colored output: auto, always or never")
	pf.String("rounding", "to-nearest-even", "rounding mode of the round command")
	// glog flags
	pf.AddGoFlagSet(flag.CommandLine)

	for _, op := range opCommands(cfg) {
		root.AddCommand(op)
	}
	root.AddCommand(convertCmd(cfg), roundCmd(cfg), versionCmd())
	return root
}

// normalizeFlags lets users write --out_radix as well as --out-radix.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "out_radix" {
		name = "out-radix"
	}
	return pflag.NormalizedName(name)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bigcalc %s\n", version)
		},
	}
}
