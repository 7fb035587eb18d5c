// Package cmd implements the fomantic CLI commands.
//
// The root command dispatches to subcommands (modal, toast, table,
// version). Scenario commands read a YAML file, drive the bindings against
// the goja widget host and print what the host saw.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/fomantic/cmd/fomantic/internal/config"
	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/log"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "fomantic",
	Short: "fomantic - play Fomantic UI widget scenarios from Go",
	Long: `fomantic drives the Go widget bindings against an in-process
widget host. Describe a modal, a toast or a table in YAML, list the
user interactions to play, and read back the host transcript.

Use "fomantic <command> --help" for more information about a command.`,
	Usage: "fomantic <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// Settings shared by all commands.
var (
	stdout     io.Writer = os.Stdout
	projectDir           = "."
	verbose    bool
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	var filtered []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case (arg == "-h" || arg == "--help" || arg == "help") && len(filtered) == 0:
			printHelp()
			return nil
		case arg == "--verbose":
			verbose = true
		case arg == "--dir":
			if i+1 >= len(args) {
				return fmt.Errorf("--dir requires a directory path")
			}
			projectDir = args[i+1]
			i++
		case strings.HasPrefix(arg, "--dir="):
			projectDir = strings.TrimPrefix(arg, "--dir=")
		default:
			filtered = append(filtered, arg)
		}
	}
	if len(filtered) == 0 {
		printHelp()
		return nil
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck
		log.SetLogger(logger)
		errors.SetHandler(&errors.ZapHandler{Logger: logger})
		defer log.SetLogger(nil)
		defer errors.SetHandler(nil)
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

// resolveConfig loads fomantic.yaml from the project directory.
func resolveConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot(projectDir)
	if err != nil {
		return nil, err
	}
	return config.Resolve(root)
}

func printHelp() {
	fmt.Fprintln(stdout, rootCmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  --dir DIR            Directory to search for fomantic.yaml (default: .)")
	fmt.Fprintln(stdout, "  --verbose            Log widget lifecycles and binding errors")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  fomantic modal -f delete.yaml    Play a modal scenario")
	fmt.Fprintln(stdout, "  fomantic table -f rows.yaml      Render a sortable table")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
