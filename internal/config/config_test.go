// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bignum"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("radix", 10, "")
	fs.Int("out-radix", 10, "")
	fs.String("color", "auto", "")
	fs.String("rounding", "to-nearest-even", "")
	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Radix)
	assert.Equal(t, 10, c.OutRadix)
	assert.Equal(t, "auto", c.Color)
	assert.Equal(t, bignum.ToNearestEven, c.Mode())
}

func TestLoad_Precedence(t *testing.T) {
	p := writeFile(t, "bigcalc.toml", "radix = 16\nout_radix = 2\nrounding = \"to-zero\"\n")

	c, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Radix)
	assert.Equal(t, 2, c.OutRadix)
	assert.Equal(t, bignum.ToZero, c.Mode())

	// environment overrides the file
	t.Setenv("BIGCALC_RADIX", "8")
	c, err = Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Radix)

	// explicitly set flags override everything
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--radix=36", "--out-radix=16"}))
	c, err = Load(p, fs)
	require.NoError(t, err)
	assert.Equal(t, 36, c.Radix)
	assert.Equal(t, 16, c.OutRadix)

	// unset flags do not shadow the file
	fs = newFlags()
	require.NoError(t, fs.Parse(nil))
	c, err = Load(p, fs)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Radix)
	assert.Equal(t, 2, c.OutRadix)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "bigcalc.yaml", "radix: 2\ncolor: never\n")
	c, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Radix)
	assert.Equal(t, "never", c.Color)
}

func TestLoad_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
	}{
		{"radix", "radix = 1\n"},
		{"out_radix", "out_radix = 37\n"},
		{"color", "color = \"pink\"\n"},
		{"rounding", "rounding = \"sideways\"\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, "bigcalc.toml", tc.content)
			_, err := Load(p, nil)
			require.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.Error(t, err)
}
