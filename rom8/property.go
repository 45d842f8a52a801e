package rom8

import (
	"fmt"
	"strings"
)

// Property is a free-form key and value carried in a prop record
type Property struct {
	Key   string
	Value string
}

func (p Property) String() string {
	return p.Key + "=" + p.Value
}

// MarshalBinary encodes the property as key=value
func (p Property) MarshalBinary() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalBinary decodes the property, splitting on the first =
func (p *Property) UnmarshalBinary(b []byte) error {
	s := string(b)
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrMalformedProperty, s)
	}
	p.Key, p.Value = s[:i], s[i+1:]
	return nil
}
