// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for hex strings which are neither 8 nor 16 digits long.
	ErrInvalidLength = errors.New("invalid hex length")
	// ErrInvalidHexCharacter is returned if a hex string contains a non-hex symbol.
	ErrInvalidHexCharacter = errors.New("invalid hex character")
	// ErrInvalidDecimalFormat is returned by Encode for strings not matching -?\d+(\.\d*)?([Ee][+-]?\d+)?
	ErrInvalidDecimalFormat = errors.New("invalid decimal format")
	// ErrMalformedBitString is returned for bit strings, that can't be split into nibbles.
	ErrMalformedBitString = errors.New("malformed bit string")
	// ErrInvalidOverride is returned if an override doesn't fit the layout.
	ErrInvalidOverride = errors.New("invalid override")
	// ErrBitIndex is returned when toggling a bit outside of a field.
	ErrBitIndex = errors.New("bit index out of range")
	// ErrHexBoundary is returned when stepping past all-F or all-0 values.
	ErrHexBoundary = errors.New("hex value at boundary")
)

// posError is an error with a position inside the input string.
// It unwraps to one of the Err* values above.
type posError struct {
	kind error
	pos  int
	err  string
}

func newPosError(kind error, err string, pos int) *posError {
	return &posError{kind: kind, err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.kind.Error() + ": " + pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return pe.kind
}
