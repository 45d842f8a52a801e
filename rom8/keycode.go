package rom8

import (
	"fmt"
	"math/bits"
)

// Pack converts a key matrix address, given as one-hot KI and KO line masks,
// into a keycode. The KI line index is stored in the high nibble and the KO
// line index in the low nibble
func Pack(ki, ko uint16) (byte, error) {
	if !oneHot(ki) || !oneHot(ko) {
		return 0, fmt.Errorf("%w: KI %#02x KO %#02x", ErrInvalidMatrixAddress, ki, ko)
	}

	return byte(bits.TrailingZeros16(ki)<<4 | bits.TrailingZeros16(ko)), nil
}

// Unpack converts a keycode back into one-hot KI and KO line masks
func Unpack(code byte) (ki, ko uint16) {
	return 1 << (code >> 4), 1 << (code & 0xf)
}

func oneHot(v uint16) bool {
	return v > 0 && (v-1)&v == 0
}
