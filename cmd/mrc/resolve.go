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
	"github.com/coreobj/mrc/internal/visualize"
	"github.com/pkg/errors"
)

type resolveCommand struct {
	publicOnly bool
}

func (c *resolveCommand) Name() string      { return "resolve" }
func (c *resolveCommand) Args() string      { return "<manifest> <object> <method>" }
func (c *resolveCommand) ShortHelp() string { return "Resolve and print a method's call chain" }

func (c *resolveCommand) Register(fs *flag.FlagSet) {
	fs.BoolVar(&c.publicOnly, "public", false, "require a public resolution")
}

func (c *resolveCommand) Run(l *telemetry.Logger, args []string) error {
	if len(args) != 3 {
		return errors.New("resolve requires <manifest> <object> <method>")
	}
	manifestPath, objectName, methodName := args[0], args[1], args[2]

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

	ctx, err := mrc.Resolve(f, obj, methodName, modes)
	if err != nil {
		return errors.Wrapf(err, "resolving %s.%s", objectName, methodName)
	}
	if ctx == nil {
		return errors.Errorf("no implementation of %q visible on %s", methodName, objectName)
	}
	defer mrc.Release(f, obj, ctx)

	if ctx.Outcome.Unknown {
		l.Resolve.Printf("no implementation for %q; falling back to unknown-method handling\n", methodName)
	}
	visualize.WriteChain(os.Stdout, ctx)
	return nil
}

func loadManifest(path string) (*mrc.Foundation, map[string]*mrc.Class, map[string]*mrc.Object, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "opening manifest")
	}
	defer file.Close()

	manifest, err := mrc.ReadManifest(file)
	if err != nil {
		return nil, nil, nil, err
	}

	impl := func(env *mrc.InvocationEnv, ctx *mrc.CallContext) (mrc.Status, error) {
		fmt.Fprintf(os.Stdout, "  -> %s\n", ctx.Name)
		return mrc.StatusOK, nil
	}

	return manifest.Build("unknown", impl)
}
