// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/coreobj/mrc/internal/telemetry"
	"github.com/coreobj/mrc/internal/visualize"
	"github.com/pkg/errors"
)

type hierarchyCommand struct{}

func (c *hierarchyCommand) Name() string          { return "hierarchy" }
func (c *hierarchyCommand) Args() string          { return "<manifest> <class>" }
func (c *hierarchyCommand) ShortHelp() string      { return "Print a class's declared superclass tree" }
func (c *hierarchyCommand) Register(*flag.FlagSet) {}

func (c *hierarchyCommand) Run(l *telemetry.Logger, args []string) error {
	if len(args) != 2 {
		return errors.New("hierarchy requires <manifest> <class>")
	}
	manifestPath, className := args[0], args[1]

	_, classes, _, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	class, ok := classes[className]
	if !ok {
		return errors.Errorf("undefined class %q", className)
	}

	tree := visualize.BuildHierarchyTree(class)
	tree.WriteTree(os.Stdout)
	return nil
}
