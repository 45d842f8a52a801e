package rom8

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const displayBoundsSize = 10

// DisplayBounds places the firmware framebuffer on the face artwork
type DisplayBounds struct {
	X, Y, W, H uint16
	Scale      uint16
}

func (d DisplayBounds) String() string {
	return fmt.Sprintf("(%d, %d) %dx%d scale %d", d.X, d.Y, d.W, d.H, d.Scale)
}

// MarshalBinary encodes the bounds as five 16-bit values
func (d DisplayBounds) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	_ = binary.Write(b, binary.LittleEndian, &d)
	return b.Bytes(), nil
}

// UnmarshalBinary decodes the bounds
func (d *DisplayBounds) UnmarshalBinary(b []byte) error {
	if len(b) != displayBoundsSize {
		return fmt.Errorf("%w: display bounds are %d bytes", ErrTruncatedRecord, len(b))
	}
	return binary.Read(bytes.NewReader(b), binary.LittleEndian, d)
}
