package rom8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaceTag(t *testing.T) {
	tables := []struct {
		b    []byte
		want Tag
	}{
		{png, TagFacePNG},
		{[]byte("\x89PNGjunk"), TagFacePNG},
		{[]byte("\x89PN"), TagFaceSVG},
		{[]byte("<svg/>"), TagFaceSVG},
		{nil, TagFaceSVG},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, FaceTag(table.b), "%q", table.b)
	}
}
