package mathutil

import (
	"math/big"
	"math/bits"
	"unsafe"
)

var (
	bigFive = big.NewInt(5)
)

// BinaryDigits returns the number of significant bits in 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// LeadingZerosIn returns the number of leading zero bits of 'value' viewed as a width-bit number.
// If value is 0, width is returned.
func LeadingZerosIn(value uint64, width int) int {
	return width - BinaryDigits(value)
}

// Pow5 returns 5^n as a new big integer. Panics for negative n.
func Pow5(n int) *big.Int {
	if n < 0 {
		panic("mathutil: negative power of five")
	}
	return new(big.Int).Exp(bigFive, big.NewInt(int64(n)), nil)
}

// ScaleBinary returns such (coef, exp), that coef*10^exp == n*2^p exactly.
// For p < 0 the identity 2^p = 5^-p * 10^p is used, so no precision is lost.
func ScaleBinary(n uint64, p int) (coef *big.Int, exp int32) {
	coef = new(big.Int).SetUint64(n)
	if n == 0 {
		return coef, 0
	}
	if p >= 0 {
		return coef.Lsh(coef, uint(p)), 0
	}
	// strip factors of two first: they cancel against 10^p and keep the coefficient small.
	tz := bits.TrailingZeros64(n)
	if tz > -p {
		tz = -p
	}
	coef.Rsh(coef, uint(tz))
	p += tz
	if p == 0 {
		return coef, 0
	}
	return coef.Mul(coef, Pow5(-p)), int32(p)
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}
