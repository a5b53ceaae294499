// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"encoding/json"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/paintmix"
	"cogentcore.org/paintmix/config"
	"cogentcore.org/paintmix/mix"
	"cogentcore.org/paintmix/pigment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T) (*config.Config, *bytes.Buffer) {
	c := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.LogLevel = "error"
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	t.Cleanup(func() { Stdout = old })
	return c, &buf
}

func TestDeltaE(t *testing.T) {
	c, buf := newConfig(t)
	c.Mixed = "200,50,50"
	require.NoError(t, DeltaE(c))
	assert.Contains(t, buf.String(), "delta_e 0.0000")
	assert.Contains(t, buf.String(), "#c83232")

	buf.Reset()
	c.Target, c.Mixed, c.JSON = "#ffffff", "0,0,0", true
	require.NoError(t, DeltaE(c))
	var res struct {
		Target [3]int  `json:"target"`
		DeltaE float64 `json:"delta_e"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, [3]int{255, 255, 255}, res.Target)
	assert.Greater(t, res.DeltaE, 50.0)

	c.Mixed = "1,2"
	assert.Error(t, DeltaE(c))
}

func TestLogLevel(t *testing.T) {
	old := logx.UserLevel
	t.Cleanup(func() { logx.UserLevel = old })

	c, _ := newConfig(t)
	c.LogLevel = "debug"
	c.Drops = "red=1"
	require.NoError(t, Mix(c))
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)

	c.LogLevel = "loud"
	assert.ErrorContains(t, Mix(c), "log level")
}

func TestMix(t *testing.T) {
	c, buf := newConfig(t)
	c.JSON = true
	require.NoError(t, Mix(c))
	var r paintmix.MixResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, [3]int{255, 255, 255}, r.RGB)
	assert.Len(t, r.Spectrum.Reflectances, 31)

	buf.Reset()
	c.JSON = false
	c.Drops = "red=2 blue=1"
	require.NoError(t, Mix(c))
	assert.Contains(t, buf.String(), "3 drops")
	assert.Contains(t, buf.String(), "  400 nm  ")

	c.Drops = "red=-1"
	assert.ErrorIs(t, Mix(c), mix.ErrInvalidDropCount)
	c.Drops = "cobalt=1"
	assert.ErrorIs(t, Mix(c), pigment.ErrUnknownPigment)
	c.Drops = "red=1"
	c.Model = "additive"
	assert.Error(t, Mix(c))
}

func TestScore(t *testing.T) {
	c, buf := newConfig(t)
	c.JSON = true
	c.Drops = `red=3 yellow=1`
	require.NoError(t, Score(c))
	var s paintmix.ScoreResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &s))
	assert.Equal(t, [3]int{200, 50, 50}, s.Target)
	assert.Equal(t, 4, s.TotalDrops)
	assert.Equal(t, map[string]int{"red": 3, "yellow": 1}, s.DropCounts)
	assert.Greater(t, s.DeltaE, 0.0)
}

func TestPigments(t *testing.T) {
	c, buf := newConfig(t)
	dir := t.TempDir()
	c.Samples = filepath.Join(dir, "samples.csv")
	require.NoError(t, os.WriteFile(c.Samples, []byte("name,400nm,700nm\nsepia,20,40\n"), 0o644))
	require.NoError(t, Pigments(c))
	out := buf.String()
	for _, s := range []string{"red", "Bengal Rose (PR169)", "sepia", "Sepia", "Titanium White (PW6)"} {
		assert.Contains(t, out, s)
	}

	buf.Reset()
	c.JSON = true
	require.NoError(t, Pigments(c))
	var list map[string]paintmix.PigmentSpectrum
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	assert.Len(t, list, 6)

	c.Palette = filepath.Join(dir, "missing.toml")
	assert.Error(t, Pigments(c))
}

func TestPlot(t *testing.T) {
	c, buf := newConfig(t)
	c.Output = filepath.Join(t.TempDir(), "blue.png")
	c.Pigment = "blue"
	c.Width, c.Height = 200, 100
	require.NoError(t, Plot(c))
	assert.Contains(t, buf.String(), "blue.png")

	f, err := os.Open(c.Output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	c.Pigment = ""
	c.Drops = "red=1 green=1"
	assert.NoError(t, Plot(c))
	c.Pigment = "mauve"
	assert.ErrorIs(t, Plot(c), pigment.ErrUnknownPigment)
}

func TestWatchNeedsFiles(t *testing.T) {
	c, _ := newConfig(t)
	assert.Error(t, Watch(c))
}
