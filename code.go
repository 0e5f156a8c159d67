package prefixcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Codeword represents a sequence of bits, written as a string over the
// alphabet {'0', '1'}.  The first character is the first bit, i.e. the branch
// taken at the root of the tree.
type Codeword string

// EmptyCodeword is the Codeword of length 0.
const EmptyCodeword = Codeword("")

// Len returns the number of bits in this Codeword.
func (cw Codeword) Len() int {
	return len(cw)
}

// Bit returns the index'th bit of this Codeword, either 0 or 1.
func (cw Codeword) Bit(index int) byte {
	return cw[index] - '0'
}

// Append returns a Codeword one bit longer than this one.
func (cw Codeword) Append(bit byte) Codeword {
	if bit == 0 {
		return cw + "0"
	}
	return cw + "1"
}

// IsPrefixOf returns true iff this Codeword is a prefix of other.  Every
// Codeword is a prefix of itself.
func (cw Codeword) IsPrefixOf(other Codeword) bool {
	return strings.HasPrefix(string(other), string(cw))
}

// Valid returns true iff this Codeword contains only '0' and '1'.
func (cw Codeword) Valid() bool {
	for index := 0; index < len(cw); index++ {
		if ch := cw[index]; ch != '0' && ch != '1' {
			return false
		}
	}
	return true
}

// String returns the string representation of this Codeword.
func (cw Codeword) String() string {
	return strconv.Quote(string(cw))
}

var _ fmt.Stringer = Codeword("")
