package prefixcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Tolerance is the maximum distance from 1.0 that the weights of a
// non-normalized Source may sum to.
const Tolerance = 1e-4

// Source implements a discrete memoryless information source: a probability
// distribution over a finite alphabet of Symbols.
//
// The zero value is an empty Source, which is not a valid input to New.  Use
// Init or one of the constructors to populate it.
type Source struct {
	symbols    []Symbol
	weights    []float64
	cumulative []float64
	index      map[Symbol]int
}

// NewSource constructs a Source whose weights must already sum to 1 within
// Tolerance.
func NewSource(symbols []Symbol, weights []float64) (*Source, error) {
	s := new(Source)
	if err := s.Init(symbols, weights, false); err != nil {
		return nil, err
	}
	return s, nil
}

// NormalizedSource constructs a Source from arbitrary positive weights, which
// are divided by their sum.
func NormalizedSource(symbols []Symbol, weights []float64) (*Source, error) {
	s := new(Source)
	if err := s.Init(symbols, weights, true); err != nil {
		return nil, err
	}
	return s, nil
}

// SourceFromString constructs a Source with one Symbol per rune of str.
func SourceFromString(str string, weights []float64, normalize bool) (*Source, error) {
	s := new(Source)
	if err := s.Init(Symbols(str), weights, normalize); err != nil {
		return nil, err
	}
	return s, nil
}

// Init initializes this Source.  The two arguments are parallel: weights[i]
// is the probability mass of symbols[i].  Every weight must be positive and
// finite, and every symbol must be distinct.
//
// If normalize is false, the weights must sum to 1 within Tolerance and are
// kept as given.  If normalize is true, each weight is divided by the sum.
//
func (s *Source) Init(symbols []Symbol, weights []float64, normalize bool) error {
	if len(symbols) != len(weights) {
		return invalidInputf("%d symbols but %d weights", len(symbols), len(weights))
	}
	if len(symbols) == 0 {
		return invalidInputf("no symbols")
	}

	index := make(map[Symbol]int, len(symbols))
	var sum, largest float64
	for i, sym := range symbols {
		if !utf8.ValidRune(rune(sym)) {
			return invalidInputf("symbol %d (%#x) is not a valid rune", i, int32(sym))
		}
		if j, found := index[sym]; found {
			return invalidInputf("symbol %s repeated at indices %d and %d", sym, j, i)
		}
		index[sym] = i

		w := weights[i]
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return invalidInputf("weight %g for symbol %s is not a positive number", w, sym)
		}
		sum += w
		if w > largest {
			largest = w
		}
	}

	copied := make([]float64, len(weights))
	if normalize {
		// Scale by the largest weight first so the sum cannot overflow.
		var scaled float64
		for _, w := range weights {
			scaled += w / largest
		}
		for i, w := range weights {
			copied[i] = (w / largest) / scaled
			if !(copied[i] > 0) {
				return invalidInputf("weight %g for symbol %s underflows when normalized", w, symbols[i])
			}
		}
	} else {
		if math.Abs(sum-1) > Tolerance {
			return invalidInputf("weights sum to %g, not 1", sum)
		}
		copy(copied, weights)
	}

	cumulative := make([]float64, len(copied))
	var running float64
	for i, w := range copied {
		running += w
		cumulative[i] = running
	}

	*s = Source{
		symbols:    append([]Symbol(nil), symbols...),
		weights:    copied,
		cumulative: cumulative,
		index:      index,
	}
	return nil
}

// Len returns the number of Symbols in this Source's alphabet.
func (s *Source) Len() int {
	return len(s.symbols)
}

// Symbols returns the alphabet in the order given to Init.
func (s *Source) Symbols() []Symbol {
	return append([]Symbol(nil), s.symbols...)
}

// Weights returns the probabilities, parallel to Symbols.
func (s *Source) Weights() []float64 {
	return append([]float64(nil), s.weights...)
}

// Weight returns the probability of sym, or false if sym is not in the
// alphabet.
func (s *Source) Weight(sym Symbol) (float64, bool) {
	i, found := s.index[sym]
	if !found {
		return 0, false
	}
	return s.weights[i], true
}

// Contains returns true iff sym is in the alphabet.
func (s *Source) Contains(sym Symbol) bool {
	_, found := s.index[sym]
	return found
}

// Entropy returns the entropy of this Source, in bits per symbol.
func (s *Source) Entropy() float64 {
	h, err := Entropy(s.weights)
	if err != nil {
		// Init rejects non-positive weights
		panic(err)
	}
	return h
}

// Sample draws one Symbol at random, with probability equal to its weight.
func (s *Source) Sample(rng *rand.Rand) Symbol {
	n := len(s.cumulative)
	if n == 0 {
		return InvalidSymbol
	}
	x := rng.Float64() * s.cumulative[n-1]
	i := sort.SearchFloat64s(s.cumulative, x)
	if i < n && s.cumulative[i] == x {
		i++
	}
	if i >= n {
		i = n - 1
	}
	return s.symbols[i]
}

// Emit draws n independent Symbols at random.
func (s *Source) Emit(rng *rand.Rand, n int) []Symbol {
	out := make([]Symbol, n)
	for i := range out {
		out[i] = s.Sample(rng)
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Source to the given
// writer, with Symbols in sorted order.
func (s *Source) Dump(w io.Writer) (int64, error) {
	sorted := s.Symbols()
	slices.Sort(sorted)

	var buf bytes.Buffer
	buf.WriteString("Source{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(s.symbols))
	for _, sym := range sorted {
		fmt.Fprintf(&buf, "\tWeight(%s) = %.4f\n", sym, s.weights[s.index[sym]])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
