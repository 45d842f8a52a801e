package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(layout [][]cell) int {
	n := 0
	for _, cells := range layout {
		for _, c := range cells {
			if c.ki != 0 {
				n++
			}
		}
	}
	return n
}

func TestAutogrid(t *testing.T) {
	keys, err := Autogrid(0, 0, 10, 10, 12, 12, Upper)
	require.NoError(t, err)
	assert.Len(t, keys, count(layouts[Upper]))
	assert.Len(t, keys, 22)

	i := 0
	for j, cells := range layouts[Upper] {
		for k, c := range cells {
			if c.ki == 0 {
				continue
			}
			code, err := Pack(c.ki, c.ko)
			require.NoError(t, err)
			assert.Equal(t, HitKey{uint16(12 * k), uint16(12 * j), 10, 10, uint16(code)}, keys[i])
			i++
		}
	}
}

func TestAutogridLower(t *testing.T) {
	keys, err := Autogrid(100, 200, 20, 10, 30, 15, Lower)
	require.NoError(t, err)
	assert.Len(t, keys, 20)
	assert.Equal(t, HitKey{100, 200, 20, 10, 0x20}, keys[0])
	assert.Equal(t, HitKey{220, 245, 20, 10, 0x06}, keys[19])
}

func TestAutogridOutOfRange(t *testing.T) {
	tables := []struct {
		x, y, w, h, ax, ay int
	}{
		{65530, 0, 10, 10, 12, 12},
		{0, 65530, 10, 10, 12, 12},
		{-1, 0, 10, 10, 12, 12},
		{0, 0, 65536, 10, 12, 12},
		{0, 0, 10, -10, 12, 12},
		{100, 0, 10, 10, -30, 12},
	}

	for _, table := range tables {
		_, err := Autogrid(table.x, table.y, table.w, table.h, table.ax, table.ay, Upper)
		assert.ErrorIs(t, err, ErrOutOfRange, "%+v", table)
	}

	keys, err := Autogrid(65535-60, 0, 10, 10, 12, 12, Upper)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), keys[3].X)
}

func TestParseHalf(t *testing.T) {
	h, ok := ParseHalf("upper")
	assert.True(t, ok)
	assert.Equal(t, Upper, h)

	_, ok = ParseHalf("middle")
	assert.False(t, ok)
}
