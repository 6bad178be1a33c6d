// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the bigcalc configuration.
//
// Settings are merged in priority order:
//  1. default values
//  2. the configuration file, if any (TOML, YAML or JSON)
//  3. environment variables with the BIGCALC_ prefix
//  4. command line flags that were explicitly set
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/db47h/bignum"
)

// Config holds the bigcalc settings.
type Config struct {
	Radix    int    `mapstructure:"radix"`     // radix of operands
	OutRadix int    `mapstructure:"out_radix"` // radix of results
	Color    string `mapstructure:"color"`     // auto, always or never
	Rounding string `mapstructure:"rounding"`  // default rounding mode of the round command
}

// Mode returns the parsed rounding mode.
func (c *Config) Mode() bignum.RoundingMode {
	m, _ := bignum.ParseRoundingMode(c.Rounding)
	return m
}

// flag name -> config key
var flagKeys = map[string]string{
	"radix":     "radix",
	"out-radix": "out_radix",
	"color":     "color",
	"rounding":  "rounding",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("radix", 10)
	v.SetDefault("out_radix", 10)
	v.SetDefault("color", "auto")
	v.SetDefault("rounding", "to-nearest-even")
}

// Load reads the configuration. path may be empty, in which case no file is
// read. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("BIGCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// Validate checks the values of c.
func (c *Config) Validate() error {
	for _, r := range []struct {
		name string
		v    int
	}{{"radix", c.Radix}, {"out_radix", c.OutRadix}} {
		if r.v < 2 || r.v > bignum.MaxRadix {
			return fmt.Errorf("%s %d out of range [2, %d]", r.name, r.v, bignum.MaxRadix)
		}
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color setting %q", c.Color)
	}
	if _, err := bignum.ParseRoundingMode(c.Rounding); err != nil {
		return err
	}
	return nil
}
