package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			ki, ko := uint16(1)<<i, uint16(1)<<j
			code, err := Pack(ki, ko)
			require.NoError(t, err)
			assert.Equal(t, byte(i<<4|j), code)

			gotKI, gotKO := Unpack(code)
			assert.Equal(t, ki, gotKI)
			assert.Equal(t, ko, gotKO)
		}
	}
}

func TestPack(t *testing.T) {
	tables := []struct {
		ki, ko uint16
		code   byte
	}{
		{0x01, 0x01, 0x00},
		{0x01, 0x02, 0x01},
		{0x80, 0x10, 0x74},
		{0x10, 0x40, 0x46},
	}

	for _, table := range tables {
		code, err := Pack(table.ki, table.ko)
		assert.NoError(t, err)
		assert.Equal(t, table.code, code)
	}
}

func TestPackInvalid(t *testing.T) {
	tables := []struct {
		ki, ko uint16
	}{
		{0, 1},
		{1, 0},
		{3, 1},
		{1, 0x0180},
		{0xffff, 0xffff},
	}

	for _, table := range tables {
		_, err := Pack(table.ki, table.ko)
		assert.ErrorIs(t, err, ErrInvalidMatrixAddress)
	}
}

func TestUnpack(t *testing.T) {
	ki, ko := Unpack(0xff)
	assert.Equal(t, uint16(0x8000), ki)
	assert.Equal(t, uint16(0x8000), ko)
}
