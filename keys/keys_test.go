package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialKey(t *testing.T) {
	assert.Equal(t, SpecialKey(0xf7), Down)
	assert.Equal(t, SpecialKey(0xfa), Left)
	assert.Equal(t, SpecialKey(0xfe), Shift)
	assert.Equal(t, SpecialKey(0xff), Reserved)
}

func TestSpecialKeyString(t *testing.T) {
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "reserved", Reserved.String())
	assert.Equal(t, "", SpecialKey('a').String())
}

func TestParse(t *testing.T) {
	k, ok := Parse("alpha")
	assert.True(t, ok)
	assert.Equal(t, Alpha, k)

	_, ok = Parse("hyp")
	assert.False(t, ok)
}

func TestIsSpecial(t *testing.T) {
	assert.True(t, IsSpecial(0xfb))
	assert.False(t, IsSpecial('='))
}
