package main

import (
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// seedEnv names the environment variable that supplies the default -seed.
const seedEnv = "PREFIXCODE_SEED"

type config struct {
	symbols   string
	weights   []float64
	normalize bool
	emit      int
	seed      int64
	canonical bool
	json      bool
	debug     bool
}

// demos are run when no -symbols are given.
var demos = []config{
	{symbols: "WXYZ", weights: []float64{0.4, 0.2, 0.3, 0.1}},
	{symbols: "ABCDE", weights: []float64{3, 2, 1, 1, 1}, normalize: true, emit: 12},
}

func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var cfg config

	defaultSeed := int64(1)
	if str := getenv(seedEnv); str != "" {
		seed, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to parse $%s", seedEnv)
		}
		defaultSeed = seed
	}

	var weights string
	fs := flag.NewFlagSet("prefixcode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.symbols, "symbols", "", "source alphabet, one symbol per character")
	fs.StringVar(&weights, "weights", "", "comma-separated weight for each symbol")
	fs.BoolVar(&cfg.normalize, "normalize", false, "divide the weights by their sum")
	fs.IntVar(&cfg.emit, "emit", 0, "number of random symbols to emit and encode")
	fs.Int64Var(&cfg.seed, "seed", defaultSeed, "random seed for -emit (default from $"+seedEnv+")")
	fs.BoolVar(&cfg.canonical, "canonical", false, "print the canonical code with the same lengths")
	fs.BoolVar(&cfg.json, "json", false, "print the code table as JSON")
	fs.BoolVar(&cfg.debug, "debug", false, "enable development logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		return cfg, errors.Errorf("unexpected arguments: %q", fs.Args())
	}
	if cfg.emit < 0 {
		return cfg, errors.Errorf("-emit must not be negative, got %d", cfg.emit)
	}

	if weights != "" {
		parsed, err := parseWeights(weights)
		if err != nil {
			return cfg, err
		}
		cfg.weights = parsed
	}
	if (cfg.symbols == "") != (cfg.weights == nil) {
		return cfg, errors.New("-symbols and -weights must be given together")
	}
	return cfg, nil
}

func parseWeights(str string) ([]float64, error) {
	fields := strings.Split(str, ",")
	out := make([]float64, len(fields))
	for i, field := range fields {
		w, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse weight #%d", i)
		}
		out[i] = w
	}
	return out, nil
}
