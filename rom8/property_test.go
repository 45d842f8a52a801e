package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty(t *testing.T) {
	var p Property
	require.NoError(t, p.UnmarshalBinary([]byte("writer.repo=https://x/y?a=b")))
	assert.Equal(t, Property{"writer.repo", "https://x/y?a=b"}, p)

	assert.ErrorIs(t, p.UnmarshalBinary([]byte("model")), ErrMalformedProperty)
}
