package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/unitctl-tools/cli/internal/cli"
	"github.com/unitctl-tools/cli/internal/config"
	"github.com/unitctl-tools/cli/internal/log"
	"github.com/unitctl-tools/cli/internal/paths"
	"github.com/unitctl-tools/cli/internal/ui/style"
	"github.com/unitctl-tools/cli/internal/usage"
	"github.com/unitctl-tools/cli/internal/verbs"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	tokens, flags, err := cli.SplitArgs(args)
	if err != nil {
		return report(err)
	}

	// Styling only when stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !cli.HasFlag(flags, "--no-color")
	style.Init(enableColor)

	initLogging()
	defer func() { _ = log.Close() }()

	table := cli.Table(cli.Options{
		Interactive: cli.HasFlag(flags, "--interactive", "-i"),
	})

	if err := verbs.Dispatch(tokens, table); err != nil {
		return report(err)
	}
	return 0
}

func initLogging() {
	if enabled, ok := config.Get("enable_log"); ok && enabled == "false" {
		return
	}

	level := log.LevelWarn
	if raw, ok := config.Get("log_level"); ok {
		level = log.ParseLevel(raw)
	}

	if err := log.Init(paths.LogFilePath(), level); err != nil {
		fmt.Fprintf(os.Stderr, "unitctl: logging disabled: %v\n", err)
	}
}

func report(err error) int {
	fmt.Fprintln(os.Stderr, err.Error())
	if ue, ok := err.(*usage.Error); ok {
		return ue.GetExitCode()
	}
	return 1
}
