package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/commands"
	"objkit/config"
	"objkit/css"
	"objkit/misc"
	"objkit/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(cmd.Bool("debug")); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()
	env.Prepare()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))

	// log is synced now, errors must be reported directly to stderr from now on
	env.RestoreStdLog()
	return nil
}

// Ignore urfave/cli default error handling - regular errors are returned
// from subcommands and reported here once.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "rectangle, JSON and CSS selector utilities",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "output debug information to console"},
		},
		Commands: []*cli.Command{
			{
				Name:         "area",
				Usage:        "Computes area of a rectangle",
				OnUsageError: usageErrorHandler,
				Action:       commands.Area,
				ArgsUsage:    "WIDTH HEIGHT",
			},
			{
				Name:  "json",
				Usage: "Converts JSON text",
				Commands: []*cli.Command{
					{
						Name:         "format",
						Usage:        "Parses JSON and outputs it according to configuration",
						OnUsageError: usageErrorHandler,
						Action:       commands.JSONFormat,
						ArgsUsage:    "[SOURCE]",
					},
					{
						Name:         "rectangle",
						Usage:        "Restores rectangle from JSON and outputs it with its area",
						OnUsageError: usageErrorHandler,
						Action:       commands.JSONRectangle,
						ArgsUsage:    "[SOURCE]",
					},
				},
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to file with JSON text, if absent - STDIN
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "selector",
				Usage: "Builds and validates CSS selectors",
				Commands: []*cli.Command{
					{
						Name:         "build",
						Usage:        "Builds selector from parts in the specified order",
						OnUsageError: usageErrorHandler,
						Action:       commands.SelectorBuild,
						ArgsUsage:    "KIND=VALUE...",
						CustomHelpTemplate: fmt.Sprintf(`%s
KIND:
    one of: %s
    parts must follow the order above, element, id and pseudo-element may be used once
`, cli.CommandHelpTemplate, strings.Join(css.CategoryNames(), ", ")),
					},
					{
						Name:         "combine",
						Usage:        "Combines two selectors",
						OnUsageError: usageErrorHandler,
						Action:       commands.SelectorCombine,
						ArgsUsage:    "LEFT COMBINATOR RIGHT",
						CustomHelpTemplate: fmt.Sprintf(`%s
COMBINATOR:
    CSS token (" ", ">", "+", "~") or one of: %s
`, cli.CommandHelpTemplate, strings.Join(css.CombinatorNames(), ", ")),
					},
					{
						Name:         "check",
						Usage:        "Validates selectors and outputs their canonical form",
						OnUsageError: usageErrorHandler,
						Action:       commands.SelectorCheck,
						ArgsUsage:    "SELECTOR...",
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "tree", Aliases: []string{"t"}, Usage: "output selector structure instead of canonical text"},
						},
					},
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := cmd.Root().Writer
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputting configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
