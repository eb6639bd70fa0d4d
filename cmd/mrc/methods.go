// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coreobj/mrc"
	"github.com/coreobj/mrc/internal/telemetry"
	"github.com/pkg/errors"
)

type methodsCommand struct {
	publicOnly  bool
	privateOnly bool
}

func (c *methodsCommand) Name() string      { return "methods" }
func (c *methodsCommand) Args() string      { return "<manifest> <object>" }
func (c *methodsCommand) ShortHelp() string { return "List every method name visible on an object" }

func (c *methodsCommand) Register(fs *flag.FlagSet) {
	fs.BoolVar(&c.publicOnly, "public", false, "list public methods only")
	fs.BoolVar(&c.privateOnly, "private", false, "also surface per-instance private methods")
}

func (c *methodsCommand) Run(l *telemetry.Logger, args []string) error {
	if len(args) != 2 {
		return errors.New("methods requires <manifest> <object>")
	}
	manifestPath, objectName := args[0], args[1]

	f, _, objects, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	obj, ok := objects[objectName]
	if !ok {
		return errors.Errorf("undefined object %q", objectName)
	}

	modes := mrc.ModeSet(0)
	if c.publicOnly {
		modes |= mrc.ModePublic
	}
	if c.privateOnly {
		modes |= mrc.ModePrivate
	}

	names, err := mrc.ListMethods(f, obj, modes)
	if err != nil {
		return errors.Wrap(err, "listing methods")
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}
