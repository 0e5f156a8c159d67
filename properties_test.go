package prefixcode

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	randSeed   = 0x5a025ca11825a5e7
	iterations = 50
)

func randomSource(t *testing.T, rng *rand.Rand) *Source {
	k := 2 + rng.Intn(60)
	symbols := make([]Symbol, k)
	weights := make([]float64, k)
	for i := range symbols {
		symbols[i] = Symbol('A' + i)
		switch rng.Intn(3) {
		case 0:
			weights[i] = 1
		case 1:
			weights[i] = float64(1 + rng.Intn(4))
		default:
			weights[i] = 0.01 + rng.Float64()
		}
	}
	src, err := NormalizedSource(symbols, weights)
	require.NoError(t, err)
	return src
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		src := randomSource(t, rng)
		tree := Build(src)
		ct := tree.CodeTable()

		// Completeness: every symbol exactly once.
		require.Equal(t, src.Len(), ct.Len(), "source #%d", iteration)
		seen := make(map[Symbol]int)
		for _, a := range tree.Extract() {
			require.Len(t, a.Items, 1)
			seen[a.Items[0]]++
		}
		for _, sym := range src.Symbols() {
			require.Equal(t, 1, seen[sym], "source #%d symbol %s", iteration, sym)
		}

		// Prefix-freeness, checked pairwise.
		syms := ct.Symbols()
		for i, a := range syms {
			for j, b := range syms {
				if i == j {
					continue
				}
				ca, _ := ct.Codeword(a)
				cb, _ := ct.Codeword(b)
				require.False(t, ca.IsPrefixOf(cb), "source #%d: %s=%s is a prefix of %s=%s", iteration, a, ca, b, cb)
			}
		}

		// A Huffman tree is full, so the Kraft sum is exactly 1.
		var kraft float64
		for _, size := range ct.Lengths() {
			kraft += math.Ldexp(1, -size)
		}
		require.InDelta(t, 1.0, kraft, 1e-9, "source #%d", iteration)

		// Shannon bound.
		h := src.Entropy()
		l, err := ExpectedLength(src, ct)
		require.NoError(t, err)
		require.LessOrEqual(t, h, l+1e-9, "source #%d", iteration)
		require.Less(t, l, h+1, "source #%d", iteration)

		// The expected length equals the total weight of the internal nodes.
		var internal float64
		tree.walk(func(n *node, depth int) {
			if !n.isLeaf() {
				internal += n.weight
			}
		})
		require.InDelta(t, internal, l, 1e-9, "source #%d", iteration)

		// Determinism.
		require.Equal(t, ct.codes, New(src).codes, "source #%d", iteration)

		// Round trip, for both the tree's table and the canonical one.
		msg := src.Emit(rng, rng.Intn(100))
		for _, table := range []*CodeTable{ct, ct.Canonical()} {
			bits, err := table.Encode(msg)
			require.NoError(t, err)

			d, err := NewDecoder(table)
			require.NoError(t, err)
			out, err := d.Decode(bits)
			require.NoError(t, err)
			if len(msg) == 0 {
				require.Empty(t, out)
			} else {
				require.Equal(t, msg, out, "source #%d", iteration)
			}
		}
	}
}

func TestProperties_Scenarios(t *testing.T) {
	type testRow struct {
		name    string
		src     *Source
		lengths map[Symbol]int
	}

	testData := [...]testRow{
		{
			name:    "lecture",
			src:     makeLectureSource(t),
			lengths: map[Symbol]int{'W': 1, 'X': 3, 'Y': 2, 'Z': 3},
		},
		{
			name:    "counts",
			src:     makeCountsSource(t),
			lengths: map[Symbol]int{'A': 2, 'B': 2, 'C': 3, 'D': 3, 'E': 2},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			ct := New(row.src)
			require.Equal(t, row.lengths, ct.Lengths())

			h := row.src.Entropy()
			l, err := ExpectedLength(row.src, ct)
			require.NoError(t, err)
			require.LessOrEqual(t, h, l)
			require.Less(t, l, h+1)
		})
	}
}

func TestSingleSymbolCode(t *testing.T) {
	src, err := SourceFromString("A", []float64{1}, false)
	require.NoError(t, err)

	ct := New(src)
	cw, found := ct.Codeword('A')
	require.True(t, found)
	require.Equal(t, EmptyCodeword, cw)

	l, err := ExpectedLength(src, ct)
	require.NoError(t, err)
	require.Equal(t, 0.0, l)

	bits, err := ct.EncodeString("AAAA")
	require.NoError(t, err)
	require.Equal(t, "", bits)
}
