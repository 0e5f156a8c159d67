package prefixcode

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func makeTestDecoder(t testing.TB) *Decoder {
	d, err := NewDecoder(New(makeLectureSource(t)))
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	return d
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t)

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tDecode(\"\") = InvalidSymbol\n",
		"\tDecode(\"0\") = 'W'\n",
		"\tDecode(\"1\") = InvalidSymbol\n",
		"\tDecode(\"10\") = 'Y'\n",
		"\tDecode(\"11\") = InvalidSymbol\n",
		"\tDecode(\"110\") = 'Z'\n",
		"\tDecode(\"111\") = 'X'\n",
		"}\n",
	}, "")
	actualDump := dumpString(t, d)
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t)

	type testRow struct {
		bits   string
		output string
		offset int
		fails  bool
	}

	testData := [...]testRow{
		{bits: "", output: ""},
		{bits: "0", output: "W"},
		{bits: "011110110", output: "WXYZ"},
		{bits: "110110010", output: "ZZWY"},
		{bits: "1", offset: 0, fails: true},
		{bits: "0011", offset: 2, fails: true},
		{bits: "01x", offset: 2, fails: true},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			actual, err := d.DecodeString(row.bits)
			if row.fails {
				var target *CorruptCodeError
				if !errors.As(err, &target) {
					t.Fatalf("expected CorruptCodeError, got %v", err)
				}
				if target.Offset != row.offset {
					t.Errorf("expected offset %d, got %d", row.offset, target.Offset)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeString failed: %v", err)
			}
			if actual != row.output {
				t.Errorf("expected %q, got %q", row.output, actual)
			}
		})
	}
}

func TestDecoder_Incomplete(t *testing.T) {
	ct, err := NewCodeTable(map[Symbol]Codeword{'A': "0", 'B': "10"})
	require.NoError(t, err)

	d, err := NewDecoder(ct)
	require.NoError(t, err)

	out, err := d.DecodeString("0100")
	require.NoError(t, err)
	require.Equal(t, "ABA", out)

	_, err = d.DecodeString("011")
	var target *CorruptCodeError
	require.True(t, errors.As(err, &target))
	require.Equal(t, 1, target.Offset)
}

func TestDecoder_SingleSymbol(t *testing.T) {
	src, err := SourceFromString("A", []float64{1}, false)
	require.NoError(t, err)

	d, err := NewDecoder(New(src))
	require.NoError(t, err)

	out, err := d.Decode("")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = d.Decode("0")
	var target *CorruptCodeError
	require.True(t, errors.As(err, &target))
}

func TestDecoder_Uninitialized(t *testing.T) {
	var d Decoder
	_, err := d.Decode("0")
	require.Error(t, err)
}

func TestDecoder_InitNilTable(t *testing.T) {
	var d Decoder
	err := d.Init(nil)

	var target *CorruptCodeError
	require.True(t, errors.As(err, &target), "expected CorruptCodeError, got %v", err)

	_, err = d.Decode("")
	require.Error(t, err)
}
