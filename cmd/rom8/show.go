package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bodgit/rom8/rom8"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)
	return table
}

func keyName(f *rom8.File, code byte) string {
	if name, ok := f.Keymap.Lookup(code); ok {
		return name
	}
	return "-"
}

func show(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	path := c.Args().First()

	f, err := rom8.Open(path, logger.With("file", path))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := f.Check(); err != nil {
		logger.Warn("not a usable firmware bundle", "file", path, "error", err)
	}

	table := newTable()

	for _, p := range f.Properties {
		table.Append([]string{"Property " + p.Key + ":", p.Value})
	}
	if f.ROM != nil {
		table.Append([]string{"ROM:", fmt.Sprintf("%d KB", len(f.ROM)/1024)})
	}
	if f.CalcType != 0 {
		table.Append([]string{"Calculator type:", f.CalcType.String()})
	}
	switch f.FaceTag {
	case rom8.TagFacePNG:
		table.Append([]string{"Face:", fmt.Sprintf("PNG, %d bytes", len(f.Face))})
	case rom8.TagFaceSVG:
		table.Append([]string{"Face:", fmt.Sprintf("SVG, %d bytes", len(f.Face))})
	}
	if f.DisplayBounds != nil {
		table.Append([]string{"Display bounds:", f.DisplayBounds.String()})
	}
	if f.GUIKeys != nil {
		table.Append([]string{"GUI keys:", strconv.Itoa(len(f.GUIKeys))})
	}
	if f.Keybinds != nil {
		table.Append([]string{"Key bindings:", strconv.Itoa(len(f.Keybinds))})
	}
	if f.Keymap != nil {
		table.Append([]string{"Keymap:", strconv.Itoa(len(f.Keymap))})
	}
	for _, r := range f.Extra {
		label := r.Tag.String()
		if !r.Tag.Known() {
			label = "Unsupported " + label
		}
		table.Append([]string{label + ":", fmt.Sprintf("%q", r.Payload)})
	}

	table.Render()

	if !c.Bool("verbose") {
		return nil
	}

	if len(f.GUIKeys) > 0 {
		fmt.Println()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")

		table.SetHeader([]string{"X", "Y", "W", "H", "Keycode", "Name"})

		for _, k := range f.GUIKeys {
			table.Append([]string{
				strconv.Itoa(int(k.X)),
				strconv.Itoa(int(k.Y)),
				strconv.Itoa(int(k.W)),
				strconv.Itoa(int(k.H)),
				fmt.Sprintf("0x%02x", k.Code),
				keyName(f, k.Keycode()),
			})
		}

		table.Render()
	}

	if len(f.Keybinds) > 0 {
		fmt.Println()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")

		table.SetHeader([]string{"Binding", "Name"})

		for _, b := range f.Keybinds {
			table.Append([]string{b.String(), keyName(f, b.Code)})
		}

		table.Render()
	}

	if len(f.Keymap) > 0 {
		fmt.Println()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")

		table.SetHeader([]string{"Name", "KI", "KO", "Keycode"})

		for _, k := range f.Keymap {
			ki, ko := rom8.Unpack(k.Code)
			table.Append([]string{k.Name, fmt.Sprintf("%02x", ki), fmt.Sprintf("%02x", ko), fmt.Sprintf("%02x", k.Code)})
		}

		table.Render()
	}

	return nil
}

func keytest(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	path := c.Args().First()

	f, err := rom8.Open(path, logger.With("file", path))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	table := newTable()

	for _, k := range f.GUIKeys.Hit(c.Int("x"), c.Int("y")) {
		table.Append([]string{fmt.Sprintf("0x%02x", k.Code), keyName(f, k.Keycode())})
	}

	table.Render()

	return nil
}
