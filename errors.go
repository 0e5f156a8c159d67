package prefixcode

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidInputError is returned when a Source cannot be built from the given
// symbols and weights.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid source: " + e.Reason
}

// UnknownSymbolError is returned when encoding a Symbol that has no Codeword.
type UnknownSymbolError struct {
	Symbol Symbol
	Index  int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %s at index %d", e.Symbol, e.Index)
}

// DomainError is returned when entropy is requested for a non-positive
// weight, for which the logarithm is undefined.
type DomainError struct {
	Index  int
	Weight float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("entropy undefined for weight %g at index %d", e.Weight, e.Index)
}

// MismatchError is returned when a CodeTable and a Source do not share the
// same alphabet.
type MismatchError struct {
	// Missing lists symbols of the Source that have no Codeword.
	Missing []Symbol

	// Extra lists symbols of the CodeTable that are absent from the Source.
	Extra []Symbol
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("code table does not match source: missing %v, extra %v", e.Missing, e.Extra)
}

// CorruptCodeError is returned when a bit string or code table cannot be
// interpreted as a prefix code.
type CorruptCodeError struct {
	Offset int
	Reason string
}

func (e *CorruptCodeError) Error() string {
	return fmt.Sprintf("corrupt code at offset %d: %s", e.Offset, e.Reason)
}

func invalidInputf(format string, args ...interface{}) error {
	return errors.WithStack(&InvalidInputError{Reason: fmt.Sprintf(format, args...)})
}

func unknownSymbol(sym Symbol, index int) error {
	return errors.WithStack(&UnknownSymbolError{Symbol: sym, Index: index})
}

func domainError(index int, weight float64) error {
	return errors.WithStack(&DomainError{Index: index, Weight: weight})
}

func mismatch(missing, extra []Symbol) error {
	return errors.WithStack(&MismatchError{Missing: missing, Extra: extra})
}

func corruptf(offset int, format string, args ...interface{}) error {
	return errors.WithStack(&CorruptCodeError{Offset: offset, Reason: fmt.Sprintf(format, args...)})
}

var (
	_ error = (*InvalidInputError)(nil)
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*DomainError)(nil)
	_ error = (*MismatchError)(nil)
	_ error = (*CorruptCodeError)(nil)
)
