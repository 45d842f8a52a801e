package rom8

import (
	"bytes"
	"fmt"
	"strings"
)

// KeyName names the key at a keycode
type KeyName struct {
	Code byte
	Name string
}

// Keymap is an ordered list of key names. Each entry is encoded as the
// keycode, the UTF-8 name and a terminating zero byte
type Keymap []KeyName

// Key appends a named key addressed by its KI and KO lines
func (k *Keymap) Key(name string, ki, ko uint16) error {
	code, err := Pack(ki, ko)
	if err != nil {
		return err
	}
	*k = append(*k, KeyName{code, name})
	return nil
}

// Lookup returns the name of the first entry for code
func (k Keymap) Lookup(code byte) (string, bool) {
	for _, n := range k {
		if n.Code == code {
			return n.Name, true
		}
	}
	return "", false
}

// MarshalBinary encodes the keymap
func (k Keymap) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	for _, n := range k {
		if strings.IndexByte(n.Name, 0) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, n.Name)
		}
		b.WriteByte(n.Code)
		b.WriteString(n.Name)
		b.WriteByte(0)
	}
	return b.Bytes(), nil
}

// UnmarshalBinary decodes the keymap. Data ending part way through an entry
// is an error
func (k *Keymap) UnmarshalBinary(b []byte) error {
	var keymap Keymap
	for len(b) > 0 {
		i := bytes.IndexByte(b[1:], 0)
		if i < 0 {
			return fmt.Errorf("%w: unterminated key name for keycode %#02x", ErrTruncatedRecord, b[0])
		}
		keymap = append(keymap, KeyName{b[0], string(b[1 : i+1])})
		b = b[i+2:]
	}
	*k = keymap
	return nil
}
