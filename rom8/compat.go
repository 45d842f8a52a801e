package rom8

// Compat is the compatibility token written by this package. Files declaring
// it use the native tag numbering
const Compat = "pitust,3"

// legacyTags maps the on-disk tag numbers of older generations onto native
// tags. A nil table means the generation shares the native numbering
var legacyTags = map[string]map[uint32]Tag{
	"pitust,1": {
		2:  TagProp,
		3:  TagROM,
		4:  TagFaceSVG,
		5:  TagFacePNG,
		7:  TagFaceGUIKeys,
		8:  TagFaceKeymap,
		9:  TagCalcType,
		10: TagFaceKeybinds,
	},
	"pitust,2": nil,
}

// KnownCompat reports whether a compatibility token can be read
func KnownCompat(token string) bool {
	if token == Compat {
		return true
	}
	_, ok := legacyTags[token]
	return ok
}
