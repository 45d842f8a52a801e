package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayBounds(t *testing.T) {
	want := DisplayBounds{87, 111, 96, 31, 6}

	b, err := want.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{87, 0, 111, 0, 96, 0, 31, 0, 6, 0}, b)

	var got DisplayBounds
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, want, got)
	assert.Equal(t, "(87, 111) 96x31 scale 6", got.String())

	assert.ErrorIs(t, got.UnmarshalBinary(b[:8]), ErrTruncatedRecord)
}
