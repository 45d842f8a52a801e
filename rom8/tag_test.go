package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagString(t *testing.T) {
	assert.Equal(t, "end", TagEnd.String())
	assert.Equal(t, "faceKeybinds", TagFaceKeybinds.String())
	assert.Equal(t, "Tag(42)", Tag(42).String())
	assert.True(t, TagFaceKeybinds.Known())
	assert.False(t, Tag(11).Known())
	assert.False(t, Tag(42).Known())
}
