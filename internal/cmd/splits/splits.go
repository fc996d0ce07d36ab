// Package splits parses splits command flags and scores a game with the
// frame-based scorer.
package splits

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jeifrig/splitshappen/internal/bowling"
	entrypoint "github.com/jeifrig/splitshappen/internal/platform/cmd"
)

// Config holds splits command configuration.
type Config struct {
	Verbose bool `env:"SPLITSHAPPEN_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "print the tokenized frames and per-frame scores")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads one score line from in and writes the game total to out. In
// verbose mode it first writes the tokenized frame list and one line per
// frame with its score.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSplits, func(context.Context) error {
		line, err := readScoreLine(in)
		if err != nil {
			return err
		}

		frames := bowling.Tokenize(line)
		if cfg.Verbose {
			printFrames(out, frames)
		}

		result, err := bowling.ScoreFrames(frames)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			for _, frame := range result.Frames {
				fmt.Fprintf(out, "  %2d: %2s: %2d\n", frame.Number, frame.Frame, frame.Score)
			}
		}
		_, err = fmt.Fprintf(out, "%d\n", result.Total)
		return err
	})
}

// readScoreLine reads the first input line, without its line terminator.
// Empty input yields an empty line, which scores as an incomplete game.
func readScoreLine(in io.Reader) (string, error) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read score line: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func printFrames(out io.Writer, frames []bowling.Frame) {
	fmt.Fprint(out, "Frames:")
	for _, frame := range frames {
		fmt.Fprintf(out, " %s", frame)
	}
	fmt.Fprintln(out)
}
