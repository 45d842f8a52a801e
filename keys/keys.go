// Package keys defines the named special keys that can be bound to a
// calculator key in place of a single character
package keys

// SpecialKey is a non-character input key. The values occupy the top of the
// byte range so they never collide with ASCII characters
type SpecialKey byte

// These are the special keys understood by emulators reading key bindings
const (
	Down     SpecialKey = 0xf7 + iota
	Up                  // 0xf8
	Right               // 0xf9
	Left                // 0xfa
	Reset               // 0xfb
	Menu                // 0xfc
	Alpha               // 0xfd
	Shift               // 0xfe
	Reserved            // 0xff
)

var names = map[SpecialKey]string{
	Down:     "down",
	Up:       "up",
	Right:    "right",
	Left:     "left",
	Reset:    "reset",
	Menu:     "menu",
	Alpha:    "alpha",
	Shift:    "shift",
	Reserved: "reserved",
}

func (k SpecialKey) String() string {
	return names[k]
}

// Parse returns the special key with the given name
func Parse(name string) (SpecialKey, bool) {
	for k, n := range names {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// IsSpecial reports whether b is a special key rather than a character
func IsSpecial(b byte) bool {
	return b >= byte(Down)
}
