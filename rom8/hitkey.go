package rom8

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const hitKeySize = 10

// HitKey is a rectangle on the face artwork, in doubled artwork coordinates,
// that presses the key at Code. Only the low byte of Code is meaningful
type HitKey struct {
	X, Y, W, H uint16
	Code       uint16
}

// Contains reports whether the point lies within the rectangle, edges
// included
func (k HitKey) Contains(x, y int) bool {
	return int(k.X) <= x && x <= int(k.X)+int(k.W) && int(k.Y) <= y && y <= int(k.Y)+int(k.H)
}

// Keycode returns the keycode the rectangle presses
func (k HitKey) Keycode() byte {
	return byte(k.Code)
}

// ParseHitKey parses a rectangle written as XxY;WxH;KC with the keycode in
// hexadecimal
func ParseHitKey(s string) (HitKey, error) {
	fields := strings.Split(s, ";")
	if len(fields) != 3 {
		return HitKey{}, fmt.Errorf("rom8: invalid rectangle %q", s)
	}

	var v [5]uint64
	for i, f := range fields[:2] {
		xy := strings.Split(f, "x")
		if len(xy) != 2 {
			return HitKey{}, fmt.Errorf("rom8: invalid rectangle %q", s)
		}
		for j, n := range xy {
			var err error
			if v[i*2+j], err = strconv.ParseUint(n, 10, 16); err != nil {
				return HitKey{}, err
			}
		}
	}

	code, err := strconv.ParseUint(strings.TrimPrefix(fields[2], "0x"), 16, 16)
	if err != nil {
		return HitKey{}, err
	}
	v[4] = code

	return HitKey{uint16(v[0]), uint16(v[1]), uint16(v[2]), uint16(v[3]), uint16(v[4])}, nil
}

// HitKeys is a table of hit rectangles
type HitKeys []HitKey

// Hit returns every rectangle containing the point
func (h HitKeys) Hit(x, y int) HitKeys {
	var hits HitKeys
	for _, k := range h {
		if k.Contains(x, y) {
			hits = append(hits, k)
		}
	}
	return hits
}

// MarshalBinary encodes the table as consecutive 10 byte records
func (h HitKeys) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	// Writes to bytes.Buffer never error
	_ = binary.Write(b, binary.LittleEndian, []HitKey(h))
	return b.Bytes(), nil
}

// UnmarshalBinary decodes the table
func (h *HitKeys) UnmarshalBinary(b []byte) error {
	if len(b)%hitKeySize != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncatedRecord, len(b), hitKeySize)
	}

	keys := make(HitKeys, len(b)/hitKeySize)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, []HitKey(keys)); err != nil {
		return err
	}
	*h = keys

	return nil
}
