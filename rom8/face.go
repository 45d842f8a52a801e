package rom8

import (
	"bytes"

	"github.com/gabriel-vasile/mimetype"
)

var pngMagic = []byte("\x89PNG")

// FaceTag returns the tag a face image should be stored under, TagFacePNG for
// data starting with the PNG magic or detected as PNG (including animated
// PNG) and TagFaceSVG for anything else
func FaceTag(b []byte) Tag {
	if bytes.HasPrefix(b, pngMagic) {
		return TagFacePNG
	}
	for m := mimetype.Detect(b); m != nil; m = m.Parent() {
		if m.Is("image/png") {
			return TagFacePNG
		}
	}
	return TagFaceSVG
}
