package prefixcode

import (
	"strconv"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Symbols converts a string into the sequence of Symbols it spells, one per
// rune.
func Symbols(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// SymbolsString is the inverse of Symbols.
func SymbolsString(list []Symbol) string {
	runes := make([]rune, len(list))
	for index, sym := range list {
		runes[index] = rune(sym)
	}
	return string(runes)
}

// String returns the string representation of this Symbol.
func (sym Symbol) String() string {
	if sym < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(sym))
}

// bareString returns the Symbol as a bare, unquoted string.
func (sym Symbol) bareString() string {
	return string(rune(sym))
}
