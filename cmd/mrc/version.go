// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coreobj/mrc/internal/telemetry"
)

// mrcVersion is bumped on tagged releases.
const mrcVersion = "0.1.0"

type versionCommand struct{}

func (c *versionCommand) Name() string          { return "version" }
func (c *versionCommand) Args() string          { return "" }
func (c *versionCommand) ShortHelp() string      { return "Show the mrc version" }
func (c *versionCommand) Register(*flag.FlagSet) {}

func (c *versionCommand) Run(l *telemetry.Logger, args []string) error {
	fmt.Fprintln(os.Stdout, mrcVersion)
	return nil
}
