// Package splitsfsa parses splitsfsa command flags and scores a game with
// the single-pass streaming scorer.
package splitsfsa

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jeifrig/splitshappen/internal/bowling"
	entrypoint "github.com/jeifrig/splitshappen/internal/platform/cmd"
)

// Config holds splitsfsa command configuration.
type Config struct {
	Verbose bool `env:"SPLITSHAPPEN_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "print each ball's weighted score and the running total")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run scores ball symbols from in as they are read and writes the game
// total to out. The command drives the state machine itself rather than
// calling bowling.ScoreStream so that in verbose mode the trace appears
// ball by ball, as each symbol is consumed.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSplitsFSA, func(context.Context) error {
		br := bufio.NewReader(in)
		var scorer bowling.StreamScorer

		for !scorer.Done() {
			c, err := br.ReadByte()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("read score line: %w", err)
			}
			if c == '\n' || c == '\r' {
				break
			}

			ball, err := scorer.Roll(c)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				fmt.Fprintf(out, "%2d: %2d: %c: %2d (%3d)\n",
					ball.Index, ball.Frame, ball.Symbol, ball.Score, ball.Running)
			}
		}

		total, err := scorer.Finish()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%d\n", total)
		return err
	})
}
