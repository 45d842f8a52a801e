package rom8

import (
	"fmt"
	"math"
)

// Uint16 narrows v to a 16-bit record field
func Uint16(v int64) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return uint16(v), nil
}
