// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/db47h/bignum"
	"github.com/db47h/bignum/internal/calc"
	"github.com/db47h/bignum/internal/config"
)

func timed(name string, f func() (string, error)) (string, error) {
	start := time.Now()
	s, err := f()
	glog.V(1).Infof("%s: %v", name, time.Since(start))
	return s, err
}

func opCommands(cfg *config.Config) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(calc.Ops))
	for _, op := range calc.Ops {
		op := op
		use := op.Name
		for i := 0; i < op.Args; i++ {
			use += fmt.Sprintf(" x%d", i+1)
		}
		cmds = append(cmds, &cobra.Command{
			Use:   use,
			Short: op.Short,
			Args:  cobra.ExactArgs(op.Args),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := timed(op.Name, func() (string, error) {
					return op.Eval(args, cfg.Radix, cfg.OutRadix)
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			},
		})
	}
	return cmds
}

func convertCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert x",
		Short: "Convert x from --radix to --out-radix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := timed("convert", func() (string, error) {
				return calc.Convert(args[0], cfg.Radix, cfg.OutRadix)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func roundCmd(cfg *config.Config) *cobra.Command {
	var (
		kind   string
		digits int64
		mode   string
	)
	cmd := &cobra.Command{
		Use:   "round x",
		Short: "Round x to a number of significant binary or decimal digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := calc.RadixMath(kind)
			if err != nil {
				return err
			}
			m := cfg.Mode()
			if mode != "" {
				if m, err = bignum.ParseRoundingMode(mode); err != nil {
					return err
				}
			}
			if digits < 1 {
				return fmt.Errorf("--digits must be positive, got %d", digits)
			}
			s, err := timed("round", func() (string, error) {
				return calc.Round(args[0], cfg.Radix, cfg.OutRadix, rm, digits, m)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "radix-kind", "decimal", "digits are binary or decimal")
	f.Int64Var(&digits, "digits", 1, "number of significant digits to keep")
	f.StringVar(&mode, "mode", "", "rounding mode, overrides --rounding")
	return cmd
}
