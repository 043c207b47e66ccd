// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	hexDigits = "0123456789ABCDEF"
)

var (
	nibbles = [...]string{
		"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111",
		"1000", "1001", "1010", "1011", "1100", "1101", "1110", "1111",
	}
)

// Direction is used by StepHex.
type Direction int

const (
	// Up increments a value.
	Up Direction = 1
	// Down decrements a value.
	Down Direction = -1
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// HexDigitValue maps '0'-'9', 'A'-'F' and 'a'-'f' to 0..15.
// The second result is false for any other symbol.
func HexDigitValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// HexToBits expands every hex digit into 4 bits, most significant first.
func HexToBits(hex string) (string, error) {
	var b strings.Builder
	b.Grow(len(hex) * bitsInHexDigit)
	for i := 0; i < len(hex); i++ {
		v, ok := HexDigitValue(hex[i])
		if !ok {
			return "", newPosError(ErrInvalidHexCharacter, fmt.Sprintf("unexpected symbol %q", hex[i]), i+1)
		}
		b.WriteString(nibbles[v])
	}
	return b.String(), nil
}

// BitsToHex groups a string of '0' and '1' into nibbles and returns their uppercase hex digits.
// The length of bits must be a multiple of 4.
func BitsToHex(bits string) (string, error) {
	if len(bits)%bitsInHexDigit != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of %d", ErrMalformedBitString, len(bits), bitsInHexDigit)
	}
	result := make([]byte, 0, len(bits)/bitsInHexDigit)
	for i := 0; i < len(bits); i += bitsInHexDigit {
		var v int
		for j := i; j < i+bitsInHexDigit; j++ {
			switch bits[j] {
			case '0':
				v <<= 1
			case '1':
				v = v<<1 | 1
			default:
				return "", newPosError(ErrMalformedBitString, fmt.Sprintf("unexpected symbol %q", bits[j]), j+1)
			}
		}
		result = append(result, hexDigits[v])
	}
	return string(result), nil
}

// normalizeHex checks the length and the symbols of a hex encoding
// and returns it in upper case with its layout.
func normalizeHex(hex string) (string, Layout, error) {
	layout, err := LayoutFor(len(hex))
	if err != nil {
		return "", Layout{}, err
	}
	for i := 0; i < len(hex); i++ {
		if _, ok := HexDigitValue(hex[i]); !ok {
			return "", Layout{}, newPosError(ErrInvalidHexCharacter, fmt.Sprintf("unexpected symbol %q", hex[i]), i+1)
		}
	}
	return strings.ToUpper(hex), layout, nil
}

// StepHex treats hex as an unsigned integer of its bit width and adds dir to it.
// The caller must not step up from an all-F value or down from an all-0 value,
// such calls return ErrHexBoundary.
func StepHex(hex string, dir Direction) (string, error) {
	hex, layout, err := normalizeHex(hex)
	if err != nil {
		return "", err
	}
	v, err := strconv.ParseUint(hex, 16, layout.TotalBits)
	if err != nil {
		return "", err
	}
	maxValue := uint64(1)<<(layout.TotalBits-1)<<1 - 1
	switch {
	case dir == Up && v == maxValue, dir == Down && v == 0:
		return "", fmt.Errorf("%w: can't step %s from %s", ErrHexBoundary, dir, hex)
	case dir == Down:
		v--
	default:
		v++
	}
	return fmt.Sprintf("%0*X", layout.HexDigits(), v), nil
}
