// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/coreobj/mrc/internal/telemetry"
)

var (
	successExitCode = 0
	errorExitCode   = 1
)

// command is one mrc subcommand.
type command interface {
	Name() string           // "resolve"
	Args() string           // "<manifest> <object> <method>"
	ShortHelp() string      // "Resolve and print a call chain"
	Register(*flag.FlagSet) // command-specific flags
	Run(l *telemetry.Logger, args []string) error
}

func main() {
	os.Exit(run(os.Args))
}

func run(osArgs []string) int {
	commands := [...]command{
		&resolveCommand{},
		&hierarchyCommand{},
		&methodsCommand{},
		&versionCommand{},
	}

	usage := func(w io.Writer) {
		fmt.Fprintln(w, "mrc drives the method resolution core from the command line")
		fmt.Fprintln(w)
		fmt.Fprintln(w, `Usage: "mrc [command]"`)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, cmd := range commands {
			fmt.Fprintf(tw, "\t%s\t%s\n", cmd.Name(), cmd.ShortHelp())
		}
		tw.Flush()
	}

	if len(osArgs) < 2 {
		usage(os.Stderr)
		return errorExitCode
	}
	cmdName := osArgs[1]

	logger, err := telemetry.New(defaultCacheDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		return errorExitCode
	}
	defer logger.Close()

	logger.Resolve.Printf("RUN ID: %s\n", logger.RunID)
	logger.Resolve.Printf("RUNNING COMMAND: %v\n", osArgs)

	for _, cmd := range commands {
		if cmd.Name() != cmdName {
			continue
		}
		flags := flag.NewFlagSet(cmdName, flag.ContinueOnError)
		cmd.Register(flags)
		if err := flags.Parse(osArgs[2:]); err != nil {
			return errorExitCode
		}
		if err := cmd.Run(logger, flags.Args()); err != nil {
			logger.Resolve.Printf("ERROR: %v\n", err)
			return errorExitCode
		}
		return successExitCode
	}

	fmt.Fprintf(os.Stderr, "mrc: unknown command %q\n", cmdName)
	usage(os.Stderr)
	return errorExitCode
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".mrc-cache"
	}
	return dir + string(os.PathSeparator) + "mrc"
}
