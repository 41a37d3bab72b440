package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"objkit/css"
	"objkit/state"
	"objkit/utils/debug"
)

// SelectorBuild applies KIND=VALUE arguments to a new selector builder in
// command line order and prints resulting selector.
func SelectorBuild(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("selector")

	if cmd.Args().Len() == 0 {
		return errors.New("no selector parts have been specified")
	}

	b := css.New()
	for _, arg := range cmd.Args().Slice() {
		kind, value, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("malformed selector part '%s', expected KIND=VALUE", arg)
		}
		cat, err := css.ParseCategory(strings.ToLower(strings.TrimSpace(kind)))
		if err != nil {
			return fmt.Errorf("unknown selector part kind (supported kinds: %s): %w", strings.Join(css.CategoryNames(), ", "), err)
		}
		log.Debug("Applying selector part", zap.Stringer("kind", cat), zap.String("value", value))
		if err := b.Apply(cat, value).Err(); err != nil {
			return err
		}
	}

	out, err := b.Stringify()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, out)
	return err
}

// SelectorCombine parses two selectors and joins them with combinator given
// by name or by CSS token.
func SelectorCombine(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("selector")

	if cmd.Args().Len() != 3 {
		return errors.New("exactly LEFT, COMBINATOR and RIGHT must be specified")
	}
	args := cmd.Args().Slice()

	comb, err := css.ParseCombinator(args[1])
	if err != nil {
		if comb, err = css.ParseCombinatorToken(args[1]); err != nil {
			return fmt.Errorf("unknown combinator (supported: %s or CSS token): %w", strings.Join(css.CombinatorNames(), ", "), err)
		}
	}

	left, err := env.Parser.ParseSelector(args[0])
	if err != nil {
		return fmt.Errorf("left selector: %w", err)
	}
	right, err := env.Parser.ParseSelector(args[2])
	if err != nil {
		return fmt.Errorf("right selector: %w", err)
	}

	out, err := css.Combine(left, comb.Token(), right).Stringify()
	if err != nil {
		return err
	}
	log.Debug("Combined selectors", zap.Stringer("combinator", comb), zap.String("result", out))

	_, err = fmt.Fprintln(cmd.Root().Writer, out)
	return err
}

// SelectorCheck validates every selector from command line and prints
// canonical form (or structure when --tree is set) of the valid ones. All
// failures are reported together.
func SelectorCheck(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("selector")

	if cmd.Args().Len() == 0 {
		return errors.New("no selectors have been specified")
	}

	w := cmd.Root().Writer
	for _, text := range cmd.Args().Slice() {
		b, er := env.Parser.ParseSelector(text)
		if er != nil {
			log.Warn("Invalid selector", zap.String("selector", text), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("selector '%s': %w", text, er))
			continue
		}
		out := b.String() + "\n"
		if cmd.Bool("tree") {
			tw := debug.NewTreeWriter()
			b.Explain(tw, 0)
			out = tw.String()
		}
		if _, er := io.WriteString(w, out); er != nil {
			return er
		}
	}
	return err
}
