package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownCompat(t *testing.T) {
	assert.True(t, KnownCompat("pitust,1"))
	assert.True(t, KnownCompat("pitust,2"))
	assert.True(t, KnownCompat(Compat))
	assert.False(t, KnownCompat("pitust,4"))
}
