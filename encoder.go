package prefixcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol of an alphabet to its Codeword.  A CodeTable is
// immutable once constructed, and its Codewords are always prefix-free.
type CodeTable struct {
	codes map[Symbol]Codeword
}

// NewCodeTable constructs a CodeTable from an explicit mapping.  Every
// Codeword must be a valid bit string, and no Codeword may be a prefix of
// another.  An empty Codeword is only permitted for a single-Symbol table.
func NewCodeTable(codes map[Symbol]Codeword) (*CodeTable, error) {
	copied := make(map[Symbol]Codeword, len(codes))
	for sym, cw := range codes {
		if !utf8.ValidRune(rune(sym)) {
			return nil, corruptf(0, "symbol %#x is not a valid rune", int32(sym))
		}
		if !cw.Valid() {
			return nil, corruptf(0, "codeword %s for symbol %s is not a bit string", cw, sym)
		}
		copied[sym] = cw
	}
	ct := &CodeTable{codes: copied}
	if err := ct.checkPrefixFree(); err != nil {
		return nil, err
	}
	return ct, nil
}

// checkPrefixFree sorts the Codewords lexically; any prefix pair is then
// adjacent.
func (ct *CodeTable) checkPrefixFree() error {
	syms := ct.Symbols()
	sort.Slice(syms, func(i, j int) bool {
		return ct.codes[syms[i]] < ct.codes[syms[j]]
	})
	for i := 1; i < len(syms); i++ {
		a, b := ct.codes[syms[i-1]], ct.codes[syms[i]]
		if a.IsPrefixOf(b) {
			return corruptf(0, "codeword %s for symbol %s is a prefix of codeword %s for symbol %s", a, syms[i-1], b, syms[i])
		}
	}
	return nil
}

// Len returns the number of Symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.codes)
}

// Symbols returns the table's alphabet in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ct.codes))
	for sym := range ct.codes {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// Codeword returns the Codeword for sym, or false if sym has none.
func (ct *CodeTable) Codeword(sym Symbol) (Codeword, bool) {
	cw, found := ct.codes[sym]
	return cw, found
}

// Lengths returns the bit length of every Codeword.
func (ct *CodeTable) Lengths() map[Symbol]int {
	out := make(map[Symbol]int, len(ct.codes))
	for sym, cw := range ct.codes {
		out[sym] = cw.Len()
	}
	return out
}

// MinSize is the bit length of the shortest Codeword.
func (ct *CodeTable) MinSize() int {
	first := true
	var size int
	for _, cw := range ct.codes {
		if first || cw.Len() < size {
			size = cw.Len()
			first = false
		}
	}
	return size
}

// MaxSize is the bit length of the longest Codeword.
func (ct *CodeTable) MaxSize() int {
	var size int
	for _, cw := range ct.codes {
		if cw.Len() > size {
			size = cw.Len()
		}
	}
	return size
}

// Encode concatenates the Codewords of seq, in order.
func (ct *CodeTable) Encode(seq []Symbol) (string, error) {
	var sb strings.Builder
	for index, sym := range seq {
		cw, found := ct.codes[sym]
		if !found {
			return "", unknownSymbol(sym, index)
		}
		sb.WriteString(string(cw))
	}
	return sb.String(), nil
}

// EncodeString encodes the Symbols spelled by str.
func (ct *CodeTable) EncodeString(str string) (string, error) {
	return ct.Encode(Symbols(str))
}

// Canonical returns the canonical prefix code with the same Codeword lengths
// as this table.  Symbols are sorted by (length, Symbol) and assigned
// consecutive Codewords, so the expected length is unchanged.
func (ct *CodeTable) Canonical() *CodeTable {
	// Step 1: sort the symbols by (length, Symbol) ascending.

	sorted := make(bySize, 0, len(ct.codes))
	for sym, cw := range ct.codes {
		sorted = append(sorted, symbolAndSize{sym, cw.Len()})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
	//
	// The running code is kept as a slice of bits rather than an integer
	// so that skewed trees deeper than 64 levels still work.

	codes := make(map[Symbol]Codeword, len(sorted))
	if len(sorted) == 0 {
		return &CodeTable{codes: codes}
	}

	next := make([]byte, sorted[0].size)
	for _, item := range sorted {
		for len(next) < item.size {
			next = append(next, 0)
		}
		codes[item.symbol] = bitsCodeword(next)
		increment(next)
	}
	return &CodeTable{codes: codes}
}

// increment adds one to a big-endian bit slice in place.
func increment(bits []byte) {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == 0 {
			bits[i] = 1
			return
		}
		bits[i] = 0
	}
}

func bitsCodeword(bits []byte) Codeword {
	buf := make([]byte, len(bits))
	for i, bit := range bits {
		buf[i] = '0' + bit
	}
	return Codeword(buf)
}

// String returns a one-line summary of this table.
func (ct *CodeTable) String() string {
	return fmt.Sprintf("(prefix code with %d symbols, with coded lengths of %d .. %d bits)", ct.Len(), ct.MinSize(), ct.MaxSize())
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, sym := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", sym, ct.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON encodes the table as a JSON object from Symbol to Codeword.
func (ct *CodeTable) MarshalJSON() ([]byte, error) {
	raw := make(map[string]string, len(ct.codes))
	for sym, cw := range ct.codes {
		raw[sym.bareString()] = string(cw)
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes a table written by MarshalJSON, validating it as
// NewCodeTable does.
func (ct *CodeTable) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	codes := make(map[Symbol]Codeword, len(raw))
	for key, value := range raw {
		runes := []rune(key)
		if len(runes) != 1 {
			return corruptf(0, "key %q is not a single symbol", key)
		}
		codes[Symbol(runes[0])] = Codeword(value)
	}
	parsed, err := NewCodeTable(codes)
	if err != nil {
		return err
	}
	*ct = *parsed
	return nil
}

var (
	_ json.Marshaler   = (*CodeTable)(nil)
	_ json.Unmarshaler = (*CodeTable)(nil)
	_ fmt.Stringer     = (*CodeTable)(nil)
)

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   int
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
