package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/jsonbridge"
	"objkit/shape"
	"objkit/state"
)

// readInput reads file named by the first argument or, if absent, standard
// input.
func readInput(cmd *cli.Command, log *zap.Logger) (string, error) {
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		log.Debug("Reading STDIN")
		data, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return "", fmt.Errorf("unable to read input: %w", err)
		}
		return string(data), nil
	}

	log.Debug("Reading file", zap.String("file", fname))
	data, err := os.ReadFile(fname)
	if err != nil {
		return "", fmt.Errorf("unable to read input file '%s': %w", fname, err)
	}
	return string(data), nil
}

// JSONFormat parses JSON input and prints it serialized according to
// configuration.
func JSONFormat(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("json")

	text, err := readInput(cmd, log)
	if err != nil {
		return err
	}

	v, err := env.Bridge.Parse(text)
	if err != nil {
		return fmt.Errorf("unable to parse input: %w", err)
	}
	out, err := env.Bridge.Serialize(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, out)
	return err
}

// JSONRectangle restores rectangle from JSON input and prints it together
// with its area.
func JSONRectangle(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("json")

	text, err := readInput(cmd, log)
	if err != nil {
		return err
	}

	r, err := jsonbridge.RestoreWith[shape.Rectangle](env.Bridge, text)
	if err != nil {
		return fmt.Errorf("unable to restore rectangle: %w", err)
	}
	log.Debug("Restored rectangle", zap.Stringer("rectangle", r))

	out, err := env.Bridge.Serialize(r)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "area: %s\n", strconv.FormatFloat(r.Area(), 'g', -1, 64))
	return err
}
