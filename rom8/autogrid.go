package rom8

// Half selects one of the two key banks laid out by Autogrid
type Half int

// These are the two key banks
const (
	Lower Half = iota
	Upper
)

func (h Half) String() string {
	if h == Upper {
		return "upper"
	}
	return "lower"
}

// ParseHalf parses "upper" or "lower"
func ParseHalf(s string) (Half, bool) {
	switch s {
	case "upper":
		return Upper, true
	case "lower":
		return Lower, true
	default:
		return Lower, false
	}
}

// cell is a key matrix address, the zero value marks an empty position
type cell struct {
	ki, ko uint16
}

func row(ki uint16, ko ...uint16) []cell {
	cells := make([]cell, len(ko))
	for i := range ko {
		cells[i] = cell{ki, ko[i]}
	}
	return cells
}

var layouts = map[Half][][]cell{
	Upper: {
		{{0x40, 0x01}, {0x40, 0x02}, {}, {}, {0x40, 0x10}, {0x40, 0x20}},
		row(0x20, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20),
		row(0x10, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20),
		row(0x08, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20),
	},
	Lower: {
		row(0x04, 0x01, 0x02, 0x04, 0x08, 0x10),
		row(0x02, 0x01, 0x02, 0x04, 0x08, 0x10),
		row(0x01, 0x01, 0x02, 0x04, 0x08, 0x10),
		{{0x10, 0x40}, {0x08, 0x40}, {0x04, 0x40}, {0x02, 0x40}, {0x01, 0x40}},
	},
}

// Autogrid lays out a bank of equally sized keys. The key in column i and row
// j of the bank is placed at (x + advanceX*i, y + advanceY*j) with size w by
// h. Keys are generated row by row, empty positions are skipped. Every
// coordinate must fit in 16 bits
func Autogrid(x, y, w, h, advanceX, advanceY int, half Half) (HitKeys, error) {
	kw, err := Uint16(int64(w))
	if err != nil {
		return nil, err
	}

	kh, err := Uint16(int64(h))
	if err != nil {
		return nil, err
	}

	var keys HitKeys
	for j, cells := range layouts[half] {
		for i, c := range cells {
			if c.ki == 0 {
				continue
			}

			kx, err := Uint16(int64(x) + int64(advanceX)*int64(i))
			if err != nil {
				return nil, err
			}

			ky, err := Uint16(int64(y) + int64(advanceY)*int64(j))
			if err != nil {
				return nil, err
			}

			// The layouts only hold valid addresses
			code, _ := Pack(c.ki, c.ko)
			keys = append(keys, HitKey{
				X:    kx,
				Y:    ky,
				W:    kw,
				H:    kh,
				Code: uint16(code),
			})
		}
	}
	return keys, nil
}
