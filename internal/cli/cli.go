package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one txnoracle subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args to a subcommand and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	name := args[0]
	if name == "help" || isHelpFlag(name) {
		printUsage(stdout)
		return ExitOK
	}
	idx := slices.IndexFunc(commands, func(cmd *Command) bool { return cmd.Name == name })
	if idx < 0 {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printUsage(stderr)
		return ExitUsage
	}
	return commands[idx].Run(args[1:], stdout, stderr)
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}

// wantsHelp reports whether any argument asks for help.
func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, isHelpFlag)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txnoracle <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name, cmd.Summary)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, `Run "txnoracle <command> --help" for command options.`)
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintln(w, "  "+line)
	}
	if cmd.Summary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cmd.Summary)
	}
}

// handler builds a command's Run function once the command exists, so the
// function can print the command's own usage.
type handler func(cmd *Command) func(args []string, stdout, stderr io.Writer) int

func newCommand(name, summary string, build handler, usage ...string) *Command {
	cmd := &Command{Name: name, Summary: summary, Usage: usage}
	cmd.Run = build(cmd)
	return cmd
}

var commands = []*Command{
	newCommand("init", "Scaffold .txnoracle.yml", runInit,
		"txnoracle init [--config <path>]"),
	newCommand("validate", "Validate the oracle config", runValidate,
		"txnoracle validate [--config <path>]"),
	newCommand("run", "Simulate, check and summarize a session of runs", runRun,
		"txnoracle run [--config <path>] [--runs N] [--output-dir DIR] [--format table|csv|json]",
		"              [--duckdb PATH] [--ui auto|live|plain] [--fail-fast] [--verbose] [--no-color]"),
	newCommand("parse", "Summarize existing trace files", runParse,
		"txnoracle parse [--grammar begin|client_order] [--format table|csv|json] [--duckdb PATH] <trace>..."),
}
