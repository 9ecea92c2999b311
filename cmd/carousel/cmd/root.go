// Package cmd implements the carousel CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, simulate, snapshot).
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/go-drift/carousel/cmd/carousel/internal/config"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command is one carousel subcommand.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

const rootLong = `carousel drives the carousel position state machine from the command line.
Options and cards come from carousel.yaml in the current directory, or the
file given with --config.

Use "carousel <command> --help" for more information about a command.`

const rootUsage = "carousel [--config FILE] [--verbose] <command> [flags]"

// commands holds every registered subcommand by name.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI. Commands register from init.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// globals holds the flags accepted before the command name.
var globals struct {
	configPath string
	verbose    bool
}

// errShowHelp and errShowVersion end global flag parsing early.
var (
	errShowHelp    = stderrors.New("help requested")
	errShowVersion = stderrors.New("version requested")
)

// parseGlobals consumes the global flags anywhere before the command name
// and returns the command name and its arguments.
func parseGlobals(args []string) ([]string, error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help" || arg == "help":
			return nil, errShowHelp
		case arg == "-v" || arg == "--version" || arg == "version":
			return nil, errShowVersion
		case arg == "--verbose":
			globals.verbose = true
		case arg == "--config":
			v, err := flagValue(args, i, "--config")
			if err != nil {
				return nil, err
			}
			globals.configPath = v
			i++
		case strings.HasPrefix(arg, "--config="):
			globals.configPath = strings.TrimPrefix(arg, "--config=")
		default:
			return args[i:], nil
		}
	}
	return nil, errShowHelp
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	rest, err := parseGlobals(args)
	switch {
	case err == errShowHelp:
		printHelp(os.Stdout)
		return nil
	case err == errShowVersion:
		fmt.Printf("carousel version %s (built %s)\n", Version, BuildTime)
		return nil
	case err != nil:
		return err
	}

	errors.SetHandler(&errors.LogHandler{Verbose: globals.verbose})

	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", rest[0])
		printHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", rest[0])
	}
	if slices.ContainsFunc(rest[1:], isHelpFlag) {
		printCommandHelp(os.Stdout, cmd)
		return nil
	}
	return cmd.Run(rest[1:])
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// loadConfig resolves the carousel options from --config or carousel.yaml
// in the working directory.
func loadConfig() (carousel.Config, error) {
	var (
		f   *config.File
		err error
	)
	if globals.configPath != "" {
		f, err = config.Load(globals.configPath)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err == nil {
			f, err = config.LoadOptional(dir)
		}
	}
	if err != nil {
		return carousel.Config{}, err
	}
	return f.Resolve()
}

// flagValue returns the value following args[i] for flag name.
func flagValue(args []string, i int, name string) (string, error) {
	if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
		return "", fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], nil
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n\nCommands:\n", rootLong, rootUsage)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintf(w, "  %-14s %s\n", name, commands[name].Short)
	}
	fmt.Fprint(w, `
Flags:
  -h, --help           Show help for a command
  -v, --version        Show version information
  --config FILE        Read options from FILE (default: ./carousel.yaml)
  --verbose            Log errors with stack traces

Examples:
  carousel run                          Interactive terminal carousel
  carousel simulate next next prev      Print positions after each step
  carousel snapshot --out frames.png    Render a PNG strip of one step
`)
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.Usage)
}
