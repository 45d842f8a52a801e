package rom8

import "strconv"

// CalcType describes the calculator family a ROM image targets. The low two
// bits hold the family and Emu is set when the image targets an emulator
// rather than real hardware
type CalcType uint8

// These are the supported calculator families and flags
const (
	Old      CalcType = 1
	CWI      CalcType = 2
	CWII     CalcType = 3
	TypeMask CalcType = 3
	Emu      CalcType = 4
)

// Family returns the calculator family with any flags removed
func (c CalcType) Family() CalcType {
	return c & TypeMask
}

// Emulator reports whether the image targets an emulator
func (c CalcType) Emulator() bool {
	return c&Emu != 0
}

func (c CalcType) String() string {
	var s string
	switch c.Family() {
	case Old:
		s = "ES+"
	case CWI:
		s = "CWI"
	case CWII:
		s = "CWII"
	default:
		s = strconv.Itoa(int(c.Family()))
	}

	if c.Emulator() {
		return s + " (emulator)"
	}

	return s + " (real hardware)"
}

// MarshalBinary encodes the calculator type as its single byte payload
func (c CalcType) MarshalBinary() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// UnmarshalBinary decodes the calculator type from its single byte payload
func (c *CalcType) UnmarshalBinary(b []byte) error {
	if len(b) != 1 {
		return ErrTruncatedRecord
	}
	*c = CalcType(b[0])
	return nil
}
