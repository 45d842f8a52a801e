package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeymapRoundTrip(t *testing.T) {
	want := Keymap{{0x00, "1"}, {0x01, "2"}}

	b, err := want.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte("\x001\x00\x012\x00"), b)

	var got Keymap
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, want, got)
}

func TestKeymapEmptyName(t *testing.T) {
	var got Keymap
	require.NoError(t, got.UnmarshalBinary([]byte("\x46\x00\x47x\x00")))
	assert.Equal(t, Keymap{{0x46, ""}, {0x47, "x"}}, got)
}

func TestKeymapInvalidName(t *testing.T) {
	_, err := Keymap{{0x00, "a\x00b"}}.MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestKeymapTruncated(t *testing.T) {
	tables := [][]byte{
		[]byte("\x00"),
		[]byte("\x001\x00\x01ab"),
	}

	for _, table := range tables {
		var got Keymap
		assert.ErrorIs(t, got.UnmarshalBinary(table), ErrTruncatedRecord)
	}
}

func TestKeymapKey(t *testing.T) {
	var k Keymap
	require.NoError(t, k.Key("Shift", 0x80, 0x01))
	assert.ErrorIs(t, k.Key("bad", 0x03, 0x01), ErrInvalidMatrixAddress)
	assert.Equal(t, Keymap{{0x70, "Shift"}}, k)

	name, ok := k.Lookup(0x70)
	assert.True(t, ok)
	assert.Equal(t, "Shift", name)

	_, ok = k.Lookup(0x71)
	assert.False(t, ok)
}

func TestESPlusKeymap(t *testing.T) {
	k := ESPlusKeymap()
	assert.Len(t, k, 49)

	name, ok := k.Lookup(0x46)
	assert.True(t, ok)
	assert.Equal(t, "0", name)

	name, ok = k.Lookup(0x06)
	assert.True(t, ok)
	assert.Equal(t, "=", name)
}
