package ieee754

import "fmt"

// Session keeps an encoded value together with the bits toggled by a user.
// Toggled bits are stored as Overrides and are discarded on Reset or Step.
// Use NewSession to create one. A Session is not safe for concurrent use.
type Session struct {
	dec    *Decoder
	hex    string
	layout Layout
	ov     Overrides
}

// NewSession returns a session for the given hex string, decoded with DefaultDecoder.
func NewSession(hex string) (*Session, error) {
	return DefaultDecoder.NewSession(hex)
}

// NewSession returns a session for the given hex string.
func (d *Decoder) NewSession(hex string) (*Session, error) {
	s := &Session{dec: d}
	if err := s.Reset(hex); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces the value and discards all toggled bits.
func (s *Session) Reset(hex string) error {
	hex, layout, err := normalizeHex(hex)
	if err != nil {
		return err
	}
	s.hex, s.layout, s.ov = hex, layout, Overrides{}
	return nil
}

// Decode decodes the value with all the toggled bits applied.
func (s *Session) Decode() (*Decoded, error) {
	return s.dec.Decode(s.hex, &s.ov)
}

// Hex returns the encoding of the value with all the toggled bits applied.
func (s *Session) Hex() string {
	fields, err := s.fields()
	if err != nil {
		return s.hex
	}
	hex, err := BitsToHex(fields.Bits())
	if err != nil {
		return s.hex
	}
	return hex
}

// Layout returns the layout of the value.
func (s *Session) Layout() Layout {
	return s.layout
}

// ToggleSign flips the sign bit.
func (s *Session) ToggleSign() {
	fields, _ := s.fields()
	s.ov.Sign = flip(fields.Sign, 0)
}

// ToggleExponentBit flips the i-th exponent bit, 0 being the most significant.
func (s *Session) ToggleExponentBit(i int) error {
	fields, _ := s.fields()
	if i < 0 || i >= len(fields.Exponent) {
		return fmt.Errorf("%w: exponent bit %d, have %d bits", ErrBitIndex, i, len(fields.Exponent))
	}
	s.ov.Exponent = flip(fields.Exponent, i)
	return nil
}

// ToggleMantissaBit flips the i-th mantissa bit, 0 being the most significant.
func (s *Session) ToggleMantissaBit(i int) error {
	fields, _ := s.fields()
	if i < 0 || i >= len(fields.Mantissa) {
		return fmt.Errorf("%w: mantissa bit %d, have %d bits", ErrBitIndex, i, len(fields.Mantissa))
	}
	s.ov.Mantissa = flip(fields.Mantissa, i)
	return nil
}

// Step increments or decrements the value shown by Hex, and discards all toggled bits.
func (s *Session) Step(dir Direction) error {
	next, err := StepHex(s.Hex(), dir)
	if err != nil {
		return err
	}
	return s.Reset(next)
}

// fields returns the current fields. The error is never set for a session created with NewSession.
func (s *Session) fields() (Fields, error) {
	bits, err := HexToBits(s.hex)
	if err != nil {
		return Fields{}, err
	}
	return s.ov.apply(s.layout.split(bits), s.layout)
}

func flip(bits string, i int) string {
	b := []byte(bits)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}
