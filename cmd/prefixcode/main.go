// Command prefixcode builds the Huffman code for a source and reports its
// entropy and expected codeword length.
//
// Usage:
//
//     prefixcode -symbols WXYZ -weights 0.4,0.2,0.3,0.1
//     prefixcode -symbols ABCDE -weights 3,2,1,1,1 -normalize -emit 12
//
// With no flags, both of the examples above are run.
//
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/chronos-tachyon/prefixcode"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	runs := []config{cfg}
	if cfg.symbols == "" {
		runs = make([]config, len(demos))
		for i, demo := range demos {
			demo.seed = cfg.seed
			demo.canonical = cfg.canonical
			demo.json = cfg.json
			runs[i] = demo
		}
	}

	for i, run := range runs {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		if err := report(os.Stdout, logger, run); err != nil {
			logger.Error("failed to build code", zap.String("symbols", run.symbols), zap.Error(err))
			os.Exit(1)
		}
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func report(w io.Writer, logger *zap.Logger, cfg config) error {
	src, err := prefixcode.SourceFromString(cfg.symbols, cfg.weights, cfg.normalize)
	if err != nil {
		return err
	}

	tree := prefixcode.Build(src)
	ct := tree.CodeTable()
	if cfg.canonical {
		ct = ct.Canonical()
	}
	logger.Debug("built code",
		zap.Int("symbols", src.Len()),
		zap.Int("nodes", tree.NumNodes()),
		zap.Int("height", tree.Height()),
		zap.Bool("canonical", cfg.canonical))

	entropy := src.Entropy()
	length, err := prefixcode.ExpectedLength(src, ct)
	if err != nil {
		return err
	}

	fmt.Fprint(w, "Source: ")
	if err := printWeights(w, src); err != nil {
		return err
	}
	fmt.Fprint(w, "Encoding: ")
	if err := printTable(w, ct, cfg.json); err != nil {
		return err
	}
	fmt.Fprintf(w, "Entropy of source = %v\n", prefixcode.Round(entropy, prefixcode.Precision))
	fmt.Fprintf(w, "Expected codeword length of Huffman encoding = %v\n", prefixcode.Round(length, prefixcode.Precision))

	if cfg.emit == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	text := src.Emit(rng, cfg.emit)
	bits, err := ct.Encode(text)
	if err != nil {
		return err
	}
	if err := checkRoundTrip(ct, text, bits); err != nil {
		return err
	}
	logger.Debug("encoded sample", zap.Int("symbols", len(text)), zap.Int("bits", len(bits)))

	fmt.Fprintln(w, "Example:")
	fmt.Fprintf(w, "Source emits: %s\n", prefixcode.SymbolsString(text))
	fmt.Fprintf(w, "Huffman encoding is: %s with average codeword length %v\n",
		bits, prefixcode.Round(prefixcode.AverageLength(bits, len(text)), prefixcode.Precision))
	return nil
}

func checkRoundTrip(ct *prefixcode.CodeTable, text []prefixcode.Symbol, bits string) error {
	d, err := prefixcode.NewDecoder(ct)
	if err != nil {
		return err
	}
	out, err := d.Decode(bits)
	if err != nil {
		return err
	}
	if prefixcode.SymbolsString(out) != prefixcode.SymbolsString(text) {
		return errors.Errorf("decoded %q, expected %q", prefixcode.SymbolsString(out), prefixcode.SymbolsString(text))
	}
	return nil
}

func printWeights(w io.Writer, src *prefixcode.Source) error {
	fmt.Fprint(w, "[")
	syms := src.Symbols()
	slices.Sort(syms)
	for i, sym := range syms {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		weight, _ := src.Weight(sym)
		fmt.Fprintf(w, "(%s, %v)", sym, prefixcode.Round(weight, prefixcode.Precision))
	}
	_, err := fmt.Fprintln(w, "]")
	return err
}

func printTable(w io.Writer, ct *prefixcode.CodeTable, asJSON bool) error {
	if asJSON {
		raw, err := ct.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", raw)
		return err
	}

	fmt.Fprint(w, "[")
	for i, sym := range ct.Symbols() {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		cw, _ := ct.Codeword(sym)
		fmt.Fprintf(w, "(%s, %s)", sym, cw)
	}
	_, err := fmt.Fprintln(w, "]")
	return err
}
