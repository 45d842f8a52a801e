package rom8

import "fmt"

// Tag identifies the kind of a record
type Tag uint32

// These are the native tag values, they are part of the file format and must
// not be renumbered
const (
	TagEnd Tag = iota
	TagCompatible
	TagProp
	TagROM
	TagFaceSVG
	TagFacePNG
	TagFaceDisplayBounds
	TagFaceGUIKeys
	TagFaceKeymap
	TagCalcType
	TagFaceKeybinds
)

func (t Tag) String() string {
	strings := map[Tag]string{
		TagEnd:               "end",
		TagCompatible:        "compatible",
		TagProp:              "prop",
		TagROM:               "rom",
		TagFaceSVG:           "faceSVG",
		TagFacePNG:           "facePNG",
		TagFaceDisplayBounds: "faceDisplayBounds",
		TagFaceGUIKeys:       "faceGUIKeys",
		TagFaceKeymap:        "faceKeymap",
		TagCalcType:          "calcType",
		TagFaceKeybinds:      "faceKeybinds",
	}

	if s, ok := strings[t]; ok {
		return s
	}

	return fmt.Sprintf("Tag(%d)", uint32(t))
}

// Known reports whether the tag is one of the native tags
func (t Tag) Known() bool {
	return t <= TagFaceKeybinds
}
