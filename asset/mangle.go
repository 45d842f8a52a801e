package asset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/bodgit/rom8/rom8"
	"github.com/hashicorp/go-hclog"
)

const (
	writerName = "romangle"
	writerRepo = "https://git.malwarez.xyz/~pitust/romangle"
)

var (
	faceSize        = []byte(`width="375" height="635" viewBox="0 0 375 635"`)
	faceSizeWide    = []byte(`width="376" height="635" viewBox="0 0 376 635"`)
	faceSizeDoubled = []byte(`width="750" height="1270" viewBox="0 0 375 635"`)

	errFaceSize = errors.New("asset: face artwork is not 375x635")
)

// faceBounds is where the 96x31 framebuffer sits on the doubled artwork
var faceBounds = rom8.DisplayBounds{X: 87, Y: 111, W: 96, H: 31, Scale: 6}

// Variant is one of the ROM8 files produced for a model
type Variant struct {
	Role   Role
	Flags  rom8.CalcType
	Label  string
	Suffix string
}

// Variants lists the files produced for each model; an emulator build from
// the rom image and a real hardware build from the rom dump
var Variants = []Variant{
	{RoleROM, rom8.Emu, " (emu)", "-emu"},
	{RoleROMDump, 0, "", "-real"},
}

func doubleFace(svg []byte) ([]byte, error) {
	svg = bytes.Replace(svg, faceSizeWide, faceSize, -1)
	if !bytes.Contains(svg, faceSize) {
		return nil, errFaceSize
	}
	return bytes.Replace(svg, faceSize, faceSizeDoubled, -1), nil
}

// Build assembles the ROM8 file for model id using the rom image selected by
// v
func Build(id string, a Asset, v Variant) (*rom8.File, error) {
	rom, ok := a[v.Role]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s", rom8.ErrMissingAsset, id, v.Role)
	}

	f := new(rom8.File)
	f.SetProperty("model", id+v.Label)
	f.SetProperty("writer", writerName)
	f.SetProperty("writer.repo", writerRepo)

	f.ROM = rom

	f.CalcType = rom8.CWII
	if strings.Contains(id, "CY") {
		f.CalcType = rom8.CWI
	}
	f.CalcType |= v.Flags

	if svg, ok := a[RoleFaceSVG]; ok {
		face, err := doubleFace(svg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		f.Face, f.FaceTag = face, rom8.TagFaceSVG

		bounds := faceBounds
		f.DisplayBounds = &bounds
	}

	if b, ok := a[RoleKeyNames]; ok {
		entries, err := ParseKeyLog(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		if f.Keymap, f.Keybinds, err = KeyTables(entries); err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
	}

	if b, ok := a[RoleHitboxes]; ok {
		keys, err := ParseHitboxes(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		f.GUIKeys = keys
	}

	return f, nil
}

// OutputPath expands an output pattern for a file name. A pattern without a
// %s verb is treated as a directory
func OutputPath(pattern, name string) string {
	if !strings.Contains(pattern, "%s") {
		pattern = strings.TrimSuffix(pattern, "/") + "/%s" + rom8.Extension
	}
	return fmt.Sprintf(pattern, name)
}

// Mangle writes the ROM8 files for every model in the catalog and returns
// their paths. A model that cannot be built is reported to logger and
// skipped, failing to write a file stops the batch
func Mangle(c *Catalog, pattern string, logger hclog.Logger) ([]string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var written []string
	for _, id := range c.IDs() {
		a, _ := c.Asset(id)

		if !a.Has(RoleROM) && !a.Has(RoleROMDump) {
			logger.Error("no rom available", "model", id, "error", rom8.ErrMissingAsset)
			continue
		}

		for _, v := range Variants {
			if !a.Has(v.Role) {
				continue
			}

			f, err := Build(id, a, v)
			if err != nil {
				logger.Error("cannot build", "model", id+v.Suffix, "error", err)
				continue
			}

			path := OutputPath(pattern, id+v.Suffix)
			if err := f.WriteFile(path); err != nil {
				return written, err
			}
			logger.Debug("wrote", "path", path)

			written = append(written, path)
		}
	}

	return written, nil
}
