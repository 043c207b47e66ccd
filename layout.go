// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import "fmt"

const (
	// HexDigits32 is the length of a single-precision hex encoding.
	HexDigits32 = 8
	// HexDigits64 is the length of a double-precision hex encoding.
	HexDigits64 = 16

	bitsInHexDigit = 4
)

var (
	// Binary32 is the layout of an IEEE-754 single-precision number.
	//   31 30     23 22                    0
	//   s  eeeeeeee mmmmmmmmmmmmmmmmmmmmmmm
	Binary32 = newLayout(HexDigits32*bitsInHexDigit, 8)
	// Binary64 is the layout of an IEEE-754 double-precision number.
	//   63 62        52 51                                                 0
	//   s  eeeeeeeeeee mmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
	Binary64 = newLayout(HexDigits64*bitsInHexDigit, 11)
)

// Layout describes how the bits of an encoded value are split into fields.
type Layout struct {
	TotalBits    int
	ExponentBits int
	MantissaBits int
	// Bias is subtracted from the stored exponent.
	Bias int
	// MinExponent is the power of two of the least significant mantissa bit of a subnormal number.
	MinExponent int
}

func newLayout(totalBits, exponentBits int) Layout {
	mantissaBits := totalBits - exponentBits - 1
	bias := 1<<(exponentBits-1) - 1
	return Layout{
		TotalBits:    totalBits,
		ExponentBits: exponentBits,
		MantissaBits: mantissaBits,
		Bias:         bias,
		MinExponent:  1 - bias - mantissaBits,
	}
}

// LayoutFor returns a layout for a hex string of the given length.
func LayoutFor(hexLen int) (Layout, error) {
	switch hexLen {
	case HexDigits32:
		return Binary32, nil
	case HexDigits64:
		return Binary64, nil
	default:
		return Layout{}, fmt.Errorf("%w: got %d digits, want %d or %d", ErrInvalidLength, hexLen, HexDigits32, HexDigits64)
	}
}

// HexDigits returns the number of hex digits in an encoding.
func (l Layout) HexDigits() int {
	return l.TotalBits / bitsInHexDigit
}

// split slices a full bit string into sign, exponent, and mantissa.
func (l Layout) split(bits string) Fields {
	return Fields{
		Sign:     bits[:1],
		Exponent: bits[1 : 1+l.ExponentBits],
		Mantissa: bits[1+l.ExponentBits:],
	}
}
