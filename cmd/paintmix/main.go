// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paintmix mixes simulated pigment drops and scores the
// mixed colors against targets.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/paintmix/cmd"
	"cogentcore.org/paintmix/config"
)

func main() {
	opts := cli.DefaultOptions("paintmix", "Paintmix simulates mixing drops of pigments from their reflectance spectra and scores mixed colors with CIEDE2000.")
	opts.DefaultFiles = []string{"paintmix.toml"}
	opts.SearchUp = true
	cli.Run(opts, &config.Config{}, cmd.Pigments, cmd.Mix, cmd.Score, cmd.DeltaE, cmd.Plot, cmd.Watch)
}
