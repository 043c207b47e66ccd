package ieee754

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionToggle(t *testing.T) {
	a := assert.New(t)
	s, err := NewSession("3f800000")
	if !a.NoError(err) {
		return
	}
	a.Equal("3F800000", s.Hex())
	a.Equal(Binary32, s.Layout())

	s.ToggleSign()
	a.Equal("BF800000", s.Hex())
	d, err := s.Decode()
	if a.NoError(err) {
		a.Equal(-1.0, d.Approx)
		a.Equal("BF800000", d.Hex)
	}

	// 0x3F800000 has exponent 01111111, setting the top bit gives 2^128 -> Inf.
	a.NoError(s.ToggleExponentBit(0))
	d, err = s.Decode()
	if a.NoError(err) {
		a.Equal(ClassInfinity, d.Class)
		a.Equal("-∞", d.Description)
		a.Equal("FF800000", s.Hex())
	}

	a.NoError(s.ToggleMantissaBit(22))
	d, err = s.Decode()
	if a.NoError(err) {
		a.Equal(ClassNaN, d.Class)
		a.Equal("FF800001", d.Hex)
	}

	// toggles accumulate and can be undone.
	a.NoError(s.ToggleMantissaBit(22))
	a.NoError(s.ToggleExponentBit(0))
	s.ToggleSign()
	a.Equal("3F800000", s.Hex())
}

func TestSessionBitIndex(t *testing.T) {
	a := assert.New(t)
	s, err := NewSession("3FF0000000000000")
	if !a.NoError(err) {
		return
	}
	a.True(errors.Is(s.ToggleExponentBit(11), ErrBitIndex))
	a.True(errors.Is(s.ToggleExponentBit(-1), ErrBitIndex))
	a.True(errors.Is(s.ToggleMantissaBit(52), ErrBitIndex))
	a.NoError(s.ToggleExponentBit(10))
	a.NoError(s.ToggleMantissaBit(51))
	a.Equal("3FE0000000000001", s.Hex())
}

func TestSessionReset(t *testing.T) {
	a := assert.New(t)
	s, err := NewSession("3F800000")
	if !a.NoError(err) {
		return
	}
	s.ToggleSign()
	a.NoError(s.Reset("40000000"))
	a.Equal("40000000", s.Hex())
	d, err := s.Decode()
	if a.NoError(err) {
		a.Equal(2.0, d.Approx)
	}
	a.NoError(s.Reset("0000000000000000"))
	a.Equal(Binary64, s.Layout())

	a.True(errors.Is(s.Reset("123"), ErrInvalidLength))
	a.Equal("0000000000000000", s.Hex())

	_, err = NewSession("zzzzzzzz")
	a.True(errors.Is(err, ErrInvalidHexCharacter))
}

func TestSessionStep(t *testing.T) {
	a := assert.New(t)
	s, err := NewSession("3F800000")
	if !a.NoError(err) {
		return
	}
	a.NoError(s.Step(Up))
	a.Equal("3F800001", s.Hex())

	// stepping starts from the toggled value and discards toggles.
	s.ToggleSign()
	a.NoError(s.Step(Down))
	a.Equal("BF800000", s.Hex())
	s.ToggleSign()
	a.Equal("3F800000", s.Hex())

	a.NoError(s.Reset("FFFFFFFF"))
	a.True(errors.Is(s.Step(Up), ErrHexBoundary))
	a.Equal("FFFFFFFF", s.Hex())
}

func TestSessionDecimalPlaces(t *testing.T) {
	a := assert.New(t)
	s, err := (&Decoder{DecimalPlaces: 3}).NewSession("3DCCCCCD")
	if !a.NoError(err) {
		return
	}
	d, err := s.Decode()
	if a.NoError(err) {
		a.Equal("0.1", d.Exact)
	}
}
