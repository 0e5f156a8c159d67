package prefixcode

import (
	"math"

	"golang.org/x/exp/slices"
)

// Precision is the number of decimal places that reports round metrics to.
const Precision = 4

// Entropy returns -Σ p·log2(p) over the given weights, in bits.  Every weight
// must be positive.
func Entropy(weights []float64) (float64, error) {
	var h float64
	for i, p := range weights {
		if !(p > 0) {
			return 0, domainError(i, p)
		}
		h -= p * math.Log2(p)
	}
	return h, nil
}

// ExpectedLength returns Σ p·len(codeword) over the Source, in bits per
// symbol.  The CodeTable must cover exactly the Source's alphabet.
func ExpectedLength(src *Source, ct *CodeTable) (float64, error) {
	var missing, extra []Symbol
	for _, sym := range src.symbols {
		if _, found := ct.codes[sym]; !found {
			missing = append(missing, sym)
		}
	}
	for sym := range ct.codes {
		if !src.Contains(sym) {
			extra = append(extra, sym)
		}
	}
	if len(missing) != 0 || len(extra) != 0 {
		slices.Sort(missing)
		slices.Sort(extra)
		return 0, mismatch(missing, extra)
	}

	var length float64
	for i, sym := range src.symbols {
		length += src.weights[i] * float64(ct.codes[sym].Len())
	}
	return length, nil
}

// AverageLength returns the number of bits per symbol actually spent by an
// encoded message of numSymbols symbols.
func AverageLength(encoded string, numSymbols int) float64 {
	if numSymbols == 0 {
		return 0
	}
	return float64(len(encoded)) / float64(numSymbols)
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
