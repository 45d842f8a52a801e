package rom8

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/rom8/keys"
)

const keybindSize = 2

// Keybind maps a host key, either an ASCII character or a special key, to a
// calculator keycode
type Keybind struct {
	Key  byte
	Code byte
}

func (k Keybind) String() string {
	if keys.IsSpecial(k.Key) {
		return fmt.Sprintf("%s => 0x%02x", keys.SpecialKey(k.Key), k.Code)
	}
	return fmt.Sprintf("%q => 0x%02x", rune(k.Key), k.Code)
}

// Keybinds is a table of key bindings
type Keybinds []Keybind

// MarshalBinary encodes each binding as the host key followed by the keycode
func (k Keybinds) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, len(k)*keybindSize)
	for _, bind := range k {
		b = append(b, bind.Key, bind.Code)
	}
	return b, nil
}

// UnmarshalBinary decodes the table
func (k *Keybinds) UnmarshalBinary(b []byte) error {
	if len(b)%keybindSize != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncatedRecord, len(b), keybindSize)
	}

	binds := make(Keybinds, 0, len(b)/keybindSize)
	for i := 0; i < len(b); i += keybindSize {
		binds = append(binds, Keybind{b[i], b[i+1]})
	}
	*k = binds

	return nil
}

// BasicKeybinds binds the digits, arithmetic operators and parentheses
var BasicKeybinds = Keybinds{
	{'(', 0x32},
	{')', 0x33},

	{'7', 0x20},
	{'8', 0x21},
	{'9', 0x22},
	{'\b', 0x23},

	{'4', 0x10},
	{'5', 0x11},
	{'6', 0x12},
	{'*', 0x13},
	{'/', 0x14},

	{'1', 0x00},
	{'2', 0x01},
	{'3', 0x02},
	{'+', 0x03},
	{'-', 0x04},

	{'0', 0x46},
	{'.', 0x36},
	{'=', 0x06},
}

// ParseKeybinds parses a binding specification. "basic" expands to
// BasicKeybinds, anything else must be KEY=KC where KEY is a single character
// or the name of a special key and KC is a hexadecimal keycode
func ParseKeybinds(s string) (Keybinds, error) {
	if s == "basic" {
		return append(Keybinds(nil), BasicKeybinds...), nil
	}

	i := strings.LastIndexByte(s, '=')
	if i < 1 {
		return nil, fmt.Errorf("rom8: invalid key binding %q", s)
	}
	name, kc := s[:i], s[i+1:]

	code, err := strconv.ParseUint(strings.TrimPrefix(kc, "0x"), 16, 8)
	if err != nil {
		return nil, err
	}

	var key byte
	switch {
	case len(name) == 1:
		key = name[0]
	default:
		special, ok := keys.Parse(name)
		if !ok {
			return nil, fmt.Errorf("rom8: unknown special key %q", name)
		}
		key = byte(special)
	}

	return Keybinds{{key, byte(code)}}, nil
}
