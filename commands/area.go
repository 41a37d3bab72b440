// Package commands implements program subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/shape"
	"objkit/state"
)

// Area prints area of rectangle with dimensions from command line.
func Area(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("area")

	if cmd.Args().Len() < 2 {
		return errors.New("both WIDTH and HEIGHT must be specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	width, err := strconv.ParseFloat(cmd.Args().Get(0), 64)
	if err != nil {
		return fmt.Errorf("bad width: %w", err)
	}
	height, err := strconv.ParseFloat(cmd.Args().Get(1), 64)
	if err != nil {
		return fmt.Errorf("bad height: %w", err)
	}

	r := shape.NewRectangle(width, height)
	log.Debug("Computing area", zap.Stringer("rectangle", r))

	_, err = fmt.Fprintln(cmd.Root().Writer, strconv.FormatFloat(r.Area(), 'g', -1, 64))
	return err
}
