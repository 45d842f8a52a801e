package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcType(t *testing.T) {
	tables := []struct {
		c    CalcType
		want string
	}{
		{Old | Emu, "ES+ (emulator)"},
		{CWI, "CWI (real hardware)"},
		{CWII | Emu, "CWII (emulator)"},
		{0, "0 (real hardware)"},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, table.c.String())
	}

	var c CalcType
	require.NoError(t, c.UnmarshalBinary([]byte{6}))
	assert.Equal(t, CWI, c.Family())
	assert.True(t, c.Emulator())
	assert.ErrorIs(t, c.UnmarshalBinary(nil), ErrTruncatedRecord)
}
