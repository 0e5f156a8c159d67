// Package prefixcode derives optimal binary prefix codes (Huffman codes) for
// discrete memoryless sources, and measures how close such a code comes to
// the source's entropy.
//
// A Source holds a probability distribution over Symbols.  New builds a
// Huffman tree for it by repeatedly merging the two lightest nodes, then
// walks the tree root-to-leaf to assign each Symbol a Codeword.  The
// resulting CodeTable encodes symbol sequences into bit strings, and a
// Decoder turns them back.
//
// Conventions:
//
//     Ties between equal weights are broken in favor of the node that was
//     created first.  Leaves are created in Source order, before any merged
//     node.
//
//     The first node taken from the weight set becomes the left child and
//     receives bit '0'; the second becomes the right child and receives '1'.
//
//     A Source with exactly one Symbol yields that Symbol the empty Codeword.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Entropy_(information_theory)>
//
package prefixcode
