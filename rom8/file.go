package rom8

import (
	"bytes"
	"encoding"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// File is the decoded form of a ROM8 stream
type File struct {
	Properties    []Property
	ROM           []byte
	CalcType      CalcType
	FaceTag       Tag
	Face          []byte
	DisplayBounds *DisplayBounds
	GUIKeys       HitKeys
	Keymap        Keymap
	Keybinds      Keybinds
	// Records with tags this package does not understand, kept so they
	// survive a round trip
	Extra []Record
}

// Property returns the value of the first property named key
func (f *File) Property(key string) (string, bool) {
	for _, p := range f.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// SetProperty replaces the value of the property named key or appends it
func (f *File) SetProperty(key, value string) {
	for i := range f.Properties {
		if f.Properties[i].Key == key {
			f.Properties[i].Value = value
			return
		}
	}
	f.Properties = append(f.Properties, Property{key, value})
}

// SetFace stores the face image, choosing the tag from its content
func (f *File) SetFace(b []byte) {
	f.Face = b
	f.FaceTag = FaceTag(b)
}

// Check reports whether the file is a usable firmware bundle
func (f *File) Check() error {
	if len(f.ROM) == 0 {
		return fmt.Errorf("%w: no %s record", ErrMissingAsset, TagROM)
	}
	if f.CalcType.Family() == 0 {
		return fmt.Errorf("%w: no %s record", ErrMissingAsset, TagCalcType)
	}
	return nil
}

func writeMarshaler(w *Writer, tag Tag, m encoding.BinaryMarshaler) error {
	b, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	return w.Write(tag, b)
}

// Encode writes the file as records to w
func (f *File) Encode(w *Writer) error {
	for _, p := range f.Properties {
		if err := writeMarshaler(w, TagProp, p); err != nil {
			return err
		}
	}

	if f.ROM != nil {
		if err := w.Write(TagROM, f.ROM); err != nil {
			return err
		}
	}

	if f.CalcType != 0 {
		if err := writeMarshaler(w, TagCalcType, f.CalcType); err != nil {
			return err
		}
	}

	if f.Face != nil {
		tag := f.FaceTag
		if tag != TagFacePNG && tag != TagFaceSVG {
			tag = FaceTag(f.Face)
		}
		if err := w.Write(tag, f.Face); err != nil {
			return err
		}
	}

	if f.DisplayBounds != nil {
		if err := writeMarshaler(w, TagFaceDisplayBounds, f.DisplayBounds); err != nil {
			return err
		}
	}

	if len(f.Keybinds) > 0 {
		if err := writeMarshaler(w, TagFaceKeybinds, f.Keybinds); err != nil {
			return err
		}
	}

	if len(f.Keymap) > 0 {
		if err := writeMarshaler(w, TagFaceKeymap, f.Keymap); err != nil {
			return err
		}
	}

	if f.GUIKeys != nil {
		if err := writeMarshaler(w, TagFaceGUIKeys, f.GUIKeys); err != nil {
			return err
		}
	}

	for _, r := range f.Extra {
		if err := w.WriteRecord(r); err != nil {
			return err
		}
	}

	return nil
}

// Decode interprets records, as returned by a Reader, into the file
func (f *File) Decode(records []Record) error {
	for _, r := range records {
		var err error

		switch r.Tag {
		case TagProp:
			var p Property
			if err = p.UnmarshalBinary(r.Payload); err == nil {
				f.Properties = append(f.Properties, p)
			}
		case TagROM:
			f.ROM = r.Payload
		case TagCalcType:
			err = f.CalcType.UnmarshalBinary(r.Payload)
		case TagFaceSVG, TagFacePNG:
			f.FaceTag, f.Face = r.Tag, r.Payload
		case TagFaceDisplayBounds:
			f.DisplayBounds = new(DisplayBounds)
			err = f.DisplayBounds.UnmarshalBinary(r.Payload)
		case TagFaceGUIKeys:
			var keys HitKeys
			if err = keys.UnmarshalBinary(r.Payload); err == nil {
				if f.GUIKeys == nil {
					f.GUIKeys = HitKeys{}
				}
				f.GUIKeys = append(f.GUIKeys, keys...)
			}
		case TagFaceKeymap:
			var keymap Keymap
			if err = keymap.UnmarshalBinary(r.Payload); err == nil {
				f.Keymap = append(f.Keymap, keymap...)
			}
		case TagFaceKeybinds:
			var binds Keybinds
			if err = binds.UnmarshalBinary(r.Payload); err == nil {
				f.Keybinds = append(f.Keybinds, binds...)
			}
		default:
			f.Extra = append(f.Extra, r)
		}

		if err != nil {
			return fmt.Errorf("%s record: %w", r.Tag, err)
		}
	}

	return nil
}

// MarshalBinary encodes the file into binary form and returns the result
func (f *File) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)

	w, err := NewWriter(b)
	if err != nil {
		return nil, err
	}

	if err := f.Encode(w); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the file from binary form
func (f *File) UnmarshalBinary(b []byte) error {
	records, err := ReadAll(b, nil)
	if err != nil {
		return err
	}
	return f.Decode(records)
}

// Open reads and decodes the file at path
func Open(path string, logger hclog.Logger) (*File, error) {
	records, err := ReadFile(path, logger)
	if err != nil {
		return nil, err
	}

	f := new(File)
	if err := f.Decode(records); err != nil {
		return nil, err
	}

	return f, nil
}

// WriteFile encodes the file to path
func (f *File) WriteFile(path string) error {
	return WriteFile(path, f.Encode)
}
