// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	su "github.com/avdva/ieee754/internal/strutil"
)

const (
	// a float64 has at most 1074 fractional and 309 integer digits.
	maxExactScale = 2200
)

var (
	exactDecoder = &Decoder{DecimalPlaces: DefaultDecimalPlaces}
)

// Encoded holds the encodings of a decimal number.
type Encoded struct {
	// Hex32 is the big-endian single-precision encoding, 8 uppercase hex digits.
	Hex32 string `json:"hex32"`
	// Hex64 is the big-endian double-precision encoding, 16 uppercase hex digits.
	Hex64 string `json:"hex64"`
	// Printed is the shortest decimal form of the double-precision value.
	Printed string `json:"printed"`
	// Exact is true if the input is exactly representable as a float64.
	Exact bool `json:"exact"`
	// Exact64 is the exact decimal value stored in Hex64.
	Exact64 string `json:"exact64"`
}

// Encode converts a decimal string to its IEEE-754 encodings.
// The string must match -?\d+(\.\d*)?([Ee][+-]?\d+)?
// Values too large for a format are encoded as infinities,
// and values too small are encoded as subnormals or zeros.
func Encode(d string) (*Encoded, error) {
	if err := su.ScanDecimal(d); err != nil {
		var se *su.SyntaxError
		if errors.As(err, &se) {
			return nil, newPosError(ErrInvalidDecimalFormat, se.Msg, se.Pos)
		}
		return nil, err
	}
	f64, err := strconv.ParseFloat(d, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	f32, _ := big.NewFloat(f64).Float32()
	result := &Encoded{
		Hex32:   hex32(math.Float32bits(f32)),
		Hex64:   hex64(math.Float64bits(f64)),
		Printed: su.FormatNumber(f64),
	}
	result.Exact64, result.Exact = exactFloat64(d, f64)
	return result, nil
}

func hex32(v uint32) string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return strings.ToUpper(hex.EncodeToString(buf[:]))
}

func hex64(v uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return strings.ToUpper(hex.EncodeToString(buf[:]))
}

// exactFloat64 returns the exact value of f, and whether it equals the decimal string d.
func exactFloat64(d string, f float64) (string, bool) {
	decoded, err := exactDecoder.Decode(hex64(math.Float64bits(f)), nil)
	if err != nil || decoded.Class == ClassInfinity {
		return su.FormatNumber(f), false
	}
	want, err := decimal.NewFromString(d)
	if err != nil { // exponent out of range
		return decoded.Exact, false
	}
	if f == 0 {
		return decoded.Exact, want.IsZero()
	}
	// comparison rescales both values to the same exponent, so don't try it for absurd inputs.
	if e := want.Exponent(); e < -maxExactScale || e > maxExactScale {
		return decoded.Exact, false
	}
	got, err := decimal.NewFromString(decoded.Exact)
	if err != nil {
		return decoded.Exact, false
	}
	return decoded.Exact, want.Equal(got)
}
