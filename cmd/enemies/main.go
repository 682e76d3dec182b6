package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/go-leo/enemy-factory/enemy"
	"github.com/go-leo/enemy-factory/factory"
)

var app = cli.Command{
	Name:  "enemies",
	Usage: "Print sample batches of generated enemies",

	Flags: []cli.Flag{
		&flagSeed,
		&flagFormat,
		&flagLog,
		&flagLogFormat,
	},
	Commands: []*cli.Command{
		{
			Name:  "basic",
			Usage: "Generate Boo, Koopa and Goomba with even probabilities",
			Flags: []cli.Flag{
				newFlagN(),
			},
			Action: cliBasic,
		},
		{
			Name:  "specific",
			Usage: "Generate enemies with probabilities proportional to the given ratios",
			Flags: []cli.Flag{
				newFlagN(),
				&cli.StringSliceFlag{
					Name:  "ratio",
					Usage: "Relative weight of an enemy kind, as kind=weight; may be repeated",
					Value: []string{"boo=1", "goomba=2", "koopa=2"},
				},
			},
			Action: cliSpecific,
		},
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cliBasic(ctx context.Context, cmd *cli.Command) error {
	logger := loggerFromFlags(cmd)
	f := enemy.NewBasicFactory(factoryOptions(cmd, logger)...)
	fmt.Fprintln(os.Stdout, "BASIC ENEMY ARRAY WITH EVEN PROBABILITIES FOR EACH ENEMY TYPE")
	expected := map[enemy.Kind]float64{
		enemy.KindBoo:    1.0 / 3,
		enemy.KindKoopa:  1.0 / 3,
		enemy.KindGoomba: 1.0 / 3,
	}
	return generate(ctx, os.Stdout, cmd, logger, f, expected)
}

func cliSpecific(ctx context.Context, cmd *cli.Command) error {
	logger := loggerFromFlags(cmd)
	ratios, err := parseRatios(cmd.StringSlice("ratio"))
	if err != nil {
		return err
	}
	f, err := enemy.NewRatioFactory(ratios, factoryOptions(cmd, logger)...)
	if err != nil {
		return fmt.Errorf("couldn't create factory: %w", err)
	}
	expected := make(map[enemy.Kind]float64, len(ratios))
	for i, p := range f.Probabilities() {
		expected[ratios[i].Kind] += p
	}
	fmt.Fprintln(os.Stdout, "SPECIFIC ENEMY ARRAY WITH PROBABILITY PROPORTIONS:", formatRatios(ratios))
	return generate(ctx, os.Stdout, cmd, logger, f, expected)
}

func generate(ctx context.Context, w io.Writer, cmd *cli.Command, logger *slog.Logger, f enemy.Factory, expected map[enemy.Kind]float64) error {
	n := int(cmd.Int("n"))
	counter := factory.NewCounter(enemy.KindOf)
	f = factory.Chain[enemy.Enemy](f, counter, factory.Logging(logger, func(e enemy.Enemy) slog.Attr {
		return slog.String("kind", string(e.Kind()))
	}))
	batch := make([]enemy.Enemy, 0, n)
	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch = append(batch, f.Create())
	}
	if err := render(w, cmd.String("format"), batch); err != nil {
		return err
	}
	logger.InfoContext(ctx, "generated", slog.Int("n", counter.Total()))
	return summarize(w, counter.Counts(), counter.Total(), expected)
}

func factoryOptions(cmd *cli.Command, logger *slog.Logger) []factory.Option {
	opts := []factory.Option{factory.WithLogger(logger)}
	if seed := cmd.Int("seed"); seed != 0 {
		opts = append(opts, factory.Seed(uint64(seed)))
	}
	return opts
}

// parseRatios parses kind=weight pairs.
func parseRatios(pairs []string) ([]enemy.Ratio, error) {
	ratios := make([]enemy.Ratio, 0, len(pairs))
	for _, pair := range pairs {
		name, weight, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("ratio %q: want kind=weight", pair)
		}
		k, err := enemy.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("ratio %q: %w", pair, err)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil {
			return nil, fmt.Errorf("ratio %q: bad weight: %w", pair, err)
		}
		ratios = append(ratios, enemy.Ratio{Kind: k, Weight: w})
	}
	return ratios, nil
}

func formatRatios(ratios []enemy.Ratio) string {
	parts := make([]string, 0, len(ratios))
	for _, r := range ratios {
		parts = append(parts, fmt.Sprintf("%s:%g", r.Kind, r.Weight))
	}
	return strings.Join(parts, " ")
}

func newFlagN() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "n",
		Usage: "Number of enemies to generate",
		Value: 20,
		Action: func(ctx context.Context, cmd *cli.Command, n int64) error {
			if n < 0 {
				return errors.New("n must not be negative")
			}
			return nil
		},
	}
}

var (
	flagSeed = cli.IntFlag{
		Name:       "seed",
		Usage:      "Seed for a reproducible batch; 0 draws from the shared generator",
		Persistent: true,
	}

	flagFormat = cli.StringFlag{
		Name:       "format",
		Usage:      "Output format, either text or json",
		Value:      "text",
		Persistent: true,
		Action: func(ctx context.Context, cmd *cli.Command, s string) error {
			switch strings.ToLower(s) {
			case "text", "json":
				return nil
			default:
				return errors.New("unknown output format")
			}
		},
	}

	flagLog = cli.StringFlag{
		Name:       "log",
		Usage:      "Logging level, one of debug, info, warn, error",
		Value:      "info",
		Persistent: true,
		Action: func(ctx context.Context, cmd *cli.Command, s string) error {
			var l slog.Level
			return l.UnmarshalText([]byte(s))
		},
	}

	flagLogFormat = cli.StringFlag{
		Name:       "log-format",
		Usage:      "Logging format, either text or json",
		Value:      "text",
		Persistent: true,
		Action: func(ctx context.Context, cmd *cli.Command, s string) error {
			switch strings.ToLower(s) {
			case "text", "json":
				return nil
			default:
				return errors.New("unknown logging format")
			}
		},
	}
)

func loggerFromFlags(cmd *cli.Command) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cmd.String("log"))); err != nil {
		panic(err)
	}
	var h slog.Handler
	switch strings.ToLower(cmd.String("log-format")) {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	default:
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	}
	return slog.New(h)
}
