// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/ieee754/internal/mathutil"
	su "github.com/avdva/ieee754/internal/strutil"
)

const (
	// DefaultDecimalPlaces is enough to print any float64 exactly:
	// 2^-1074 has 1074 fractional digits.
	DefaultDecimalPlaces = 100000
)

var (
	// DefaultDecoder is used by Decode.
	// This variable is not thread-safe, so this should be changed on program start.
	DefaultDecoder = &Decoder{DecimalPlaces: DefaultDecimalPlaces}
)

// Class is a kind of an encoded value.
type Class int

const (
	// ClassZero is +0 or -0.
	ClassZero Class = iota
	// ClassSubnormal is a value with a zero exponent field and a non-zero mantissa.
	ClassSubnormal
	// ClassNormal is a value with an implicit leading 1 bit.
	ClassNormal
	// ClassInfinity is +Inf or -Inf.
	ClassInfinity
	// ClassNaN is not-a-number.
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "Zero"
	case ClassSubnormal:
		return "Subnormal"
	case ClassNormal:
		return "Normal"
	case ClassInfinity:
		return "Infinity"
	case ClassNaN:
		return "NaN"
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// MarshalJSON implements json.Marshaler.
func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Fields are the bits of an encoded value, as strings of '0' and '1'.
type Fields struct {
	Sign     string `json:"sign"`
	Exponent string `json:"exponent"`
	Mantissa string `json:"mantissa"`
}

// Bits returns all the bits, sign first.
func (f Fields) Bits() string {
	return f.Sign + f.Exponent + f.Mantissa
}

// Overrides replace fields of a decoded value.
// An empty string leaves the corresponding field as is.
type Overrides struct {
	Sign     string
	Exponent string
	Mantissa string
}

func (o *Overrides) apply(f Fields, l Layout) (Fields, error) {
	if o == nil {
		return f, nil
	}
	var err error
	if f.Sign, err = overrideField("sign", f.Sign, o.Sign); err != nil {
		return f, err
	}
	if f.Exponent, err = overrideField("exponent", f.Exponent, o.Exponent); err != nil {
		return f, err
	}
	if f.Mantissa, err = overrideField("mantissa", f.Mantissa, o.Mantissa); err != nil {
		return f, err
	}
	return f, nil
}

func overrideField(name, field, override string) (string, error) {
	if len(override) == 0 {
		return field, nil
	}
	if len(override) != len(field) {
		return "", fmt.Errorf("%w: %s has %d bits, want %d", ErrInvalidOverride, name, len(override), len(field))
	}
	for i := 0; i < len(override); i++ {
		if c := override[i]; c != '0' && c != '1' {
			return "", fmt.Errorf("%w: %s", ErrInvalidOverride, newPosError(ErrMalformedBitString, fmt.Sprintf("unexpected symbol %q", c), i+1))
		}
	}
	return override, nil
}

// Decoded is an interpretation of an encoded value.
type Decoded struct {
	Layout Layout `json:"layout"`
	Fields Fields `json:"fields"`
	Class  Class  `json:"class"`
	// Negative is true if the sign bit is set.
	Negative bool `json:"negative"`
	// Fraction are the bits after "1." in the description, without trailing zeros.
	// Only set for normal and subnormal values.
	Fraction string `json:"fraction,omitempty"`
	// Exponent is the power of two in the description.
	// Only set for normal and subnormal values.
	Exponent int `json:"exponent"`
	// Description is like "+(1.1)₂ × 2⁻¹", "- Zero", "+∞", or "NaN".
	Description string `json:"description"`
	// Approx is the value computed with float64 arithmetic.
	Approx float64 `json:"-"`
	// Exact is the exact decimal value.
	Exact string `json:"exact"`
	// Hex is the encoding of Fields.
	Hex string `json:"hex"`
}

// MarshalJSON implements json.Marshaler.
// Approx is rendered as a string, as json has no infinities and NaNs.
func (d Decoded) MarshalJSON() ([]byte, error) {
	type plain Decoded
	return json.Marshal(struct {
		plain
		Approx string `json:"approx"`
	}{plain: plain(d), Approx: su.FormatNumber(d.Approx)})
}

// Decoder decodes hex strings.
type Decoder struct {
	// DecimalPlaces limits the number of fractional digits of Decoded.Exact.
	// Zero means DefaultDecimalPlaces.
	DecimalPlaces int32
}

// Decode decodes hex with DefaultDecoder.
func Decode(hex string, ov *Overrides) (*Decoded, error) {
	return DefaultDecoder.Decode(hex, ov)
}

// Decode interprets an 8- or 16-digit hex string as an IEEE-754 value.
// Non-nil overrides replace the fields taken from hex.
func (d *Decoder) Decode(hex string, ov *Overrides) (*Decoded, error) {
	hex, layout, err := normalizeHex(hex)
	if err != nil {
		return nil, err
	}
	bits, err := HexToBits(hex)
	if err != nil {
		return nil, err
	}
	fields, err := ov.apply(layout.split(bits), layout)
	if err != nil {
		return nil, err
	}
	result := &Decoded{
		Layout:   layout,
		Fields:   fields,
		Negative: fields.Sign == "1",
	}
	if result.Hex, err = BitsToHex(fields.Bits()); err != nil {
		return nil, err
	}
	d.interpret(result)
	return result, nil
}

func (d *Decoder) interpret(result *Decoded) {
	layout, fields := result.Layout, result.Fields
	exp, _ := strconv.ParseUint(fields.Exponent, 2, 64)
	mant, _ := strconv.ParseUint(fields.Mantissa, 2, 64)
	sign := "+"
	if result.Negative {
		sign = "-"
	}

	var (
		significand uint64
		power       int
	)
	switch maxExp := uint64(1)<<layout.ExponentBits - 1; {
	case exp == 0 && mant == 0:
		result.Class = ClassZero
		result.Description = sign + " Zero"
		result.Approx = signed(0, result.Negative)
		result.Exact = "0"
		return
	case exp == maxExp && mant == 0:
		result.Class = ClassInfinity
		result.Description = sign + "∞"
		result.Approx = math.Inf(1)
		if result.Negative {
			result.Approx = math.Inf(-1)
		}
		result.Exact = result.Description
		return
	case exp == maxExp:
		result.Class = ClassNaN
		result.Description = "NaN"
		result.Approx = math.NaN()
		result.Exact = result.Description
		return
	case exp == 0:
		// 0.m * 2^(1-bias) == 1.(bits after the first one) * 2^(-bias-k)
		k := mu.LeadingZerosIn(mant, layout.MantissaBits)
		result.Class = ClassSubnormal
		result.Fraction = su.TrimTrailingZeros(fields.Mantissa[k+1:])
		result.Exponent = -layout.Bias - k
		significand, power = mant, layout.MinExponent
	default:
		result.Class = ClassNormal
		result.Fraction = su.TrimTrailingZeros(fields.Mantissa)
		result.Exponent = int(exp) - layout.Bias
		significand, power = 1<<layout.MantissaBits|mant, result.Exponent-layout.MantissaBits
	}
	result.Description = sign + "(1." + result.Fraction + ")₂ × 2" + su.Superscript(result.Exponent)
	result.Approx = signed(math.Ldexp(float64(significand), power), result.Negative)
	result.Exact = d.exact(significand, power, result.Negative)
}

// exact returns the decimal representation of ±n*2^p.
func (d *Decoder) exact(n uint64, p int, neg bool) string {
	places := d.DecimalPlaces
	if places <= 0 {
		places = DefaultDecimalPlaces
	}
	coef, exp := mu.ScaleBinary(n, p)
	v := decimal.NewFromBigInt(coef, exp)
	if -exp > places {
		v = v.Round(places)
	}
	if neg {
		v = v.Neg()
	}
	return v.String()
}

func signed(f float64, neg bool) float64 {
	if neg {
		return math.Copysign(f, -1)
	}
	return f
}
