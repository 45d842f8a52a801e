package main

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/bodgit/plumbing"
	"github.com/bodgit/rom8/rom8"
	"github.com/urfave/cli/v2"
)

const (
	writerName = "tool8"
	writerRepo = "https://github.com/pitust/tool8"

	// The ES+ framebuffer size
	displayWidth  = 96
	displayHeight = 31
)

// readROM reads the ROM image, padding it with erased bytes up to size
func readROM(path string, size int64) ([]byte, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if size <= int64(len(b)) {
		return b, nil
	}

	return ioutil.ReadAll(io.LimitReader(plumbing.PaddedReader(bytes.NewReader(b), size, 0xff), size))
}

func concatFiles(paths []string) ([]byte, error) {
	b := new(bytes.Buffer)
	for _, path := range paths {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		b.Write(data)
	}
	return b.Bytes(), nil
}

type wrapOptions struct {
	ROM       string
	ROMSize   int64
	Face      string
	DispX     uint16
	DispY     uint16
	DispScale uint16
	Grids     []string
	Binds     []string
	Model     string
}

// buildWrap assembles an ES+ emulator bundle carrying the built-in keymap
func buildWrap(o wrapOptions) (*rom8.File, error) {
	rom, err := readROM(o.ROM, o.ROMSize)
	if err != nil {
		return nil, err
	}

	face, err := ioutil.ReadFile(o.Face)
	if err != nil {
		return nil, err
	}

	grid, err := concatFiles(o.Grids)
	if err != nil {
		return nil, err
	}

	binds, err := concatFiles(o.Binds)
	if err != nil {
		return nil, err
	}

	f := new(rom8.File)
	f.SetProperty("writer", writerName)
	f.SetProperty("writer.repo", writerRepo)
	f.SetProperty("model", o.Model)

	f.ROM = rom
	f.CalcType = rom8.Old | rom8.Emu
	f.SetFace(face)
	f.DisplayBounds = &rom8.DisplayBounds{
		X:     o.DispX,
		Y:     o.DispY,
		W:     displayWidth,
		H:     displayHeight,
		Scale: o.DispScale,
	}

	if len(grid) > 0 {
		if err := f.GUIKeys.UnmarshalBinary(grid); err != nil {
			return nil, err
		}
	}

	if len(binds) > 0 {
		if err := f.Keybinds.UnmarshalBinary(binds); err != nil {
			return nil, err
		}
	}

	f.Keymap = rom8.ESPlusKeymap()

	return f, nil
}

func wrap(c *cli.Context) error {
	o := wrapOptions{
		ROM:     c.String("rom"),
		ROMSize: c.Int64("rom-size"),
		Face:    c.String("face"),
		Grids:   splitValues(c.StringSlice("grid")),
		Binds:   splitValues(c.StringSlice("binds")),
		Model:   c.String("model"),
	}

	var err error
	if o.DispX, err = uintFlag(c, "disp-x"); err != nil {
		return cli.NewExitError(err, 1)
	}
	if o.DispY, err = uintFlag(c, "disp-y"); err != nil {
		return cli.NewExitError(err, 1)
	}
	if o.DispScale, err = uintFlag(c, "disp-scale"); err != nil {
		return cli.NewExitError(err, 1)
	}

	f, err := buildWrap(o)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := f.WriteFile(c.String("output")); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}
