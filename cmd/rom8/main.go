package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bodgit/rom8/asset"
	"github.com/bodgit/rom8/database"
	"github.com/bodgit/rom8/rom8"
	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
)

var logger = hclog.NewNullLogger()

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(level string, output io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "rom8",
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv("ROM8_JSON_LOG") == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// catFiles copies the records of each input, in order, into a new native
// stream at output
func catFiles(output string, inputs []string) error {
	return rom8.WriteFile(output, func(w *rom8.Writer) error {
		for _, path := range inputs {
			b, err := ioutil.ReadFile(path)
			if err != nil {
				return err
			}

			r := rom8.NewReader(b, logger.With("file", path))
			for {
				record, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if err := w.WriteRecord(record); err != nil {
					return err
				}
			}

			if r.Compat() != rom8.Compat {
				logger.Info("upgraded", "file", path, "compat", r.Compat())
			}
		}
		return nil
	})
}

func cat(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	if err := catFiles(c.String("output"), c.Args().Slice()); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

// uintFlag returns the value of a uint flag that is stored in a 16-bit field
func uintFlag(c *cli.Context, name string) (uint16, error) {
	v := c.Uint(name)
	if v > 0xffff {
		return 0, fmt.Errorf("--%s: %w: %d", name, rom8.ErrOutOfRange, v)
	}
	return uint16(v), nil
}

func autogrid(c *cli.Context) error {
	half, ok := rom8.ParseHalf(c.String("half"))
	if !ok {
		return cli.NewExitError(fmt.Sprintf("invalid half %q, expected upper or lower", c.String("half")), 1)
	}

	var v [6]uint16
	for i, name := range []string{"x", "y", "w", "h", "ax", "ay"} {
		var err error
		if v[i], err = uintFlag(c, name); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	keys, err := rom8.Autogrid(int(v[0]), int(v[1]), int(v[2]), int(v[3]), int(v[4]), int(v[5]), half)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	b, err := keys.MarshalBinary()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := ioutil.WriteFile(c.String("output"), b, 0o644); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func gridpoint(c *cli.Context) error {
	var keys rom8.HitKeys
	for _, rect := range splitValues(c.StringSlice("rect")) {
		k, err := rom8.ParseHitKey(rect)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		keys = append(keys, k)
	}

	b, err := keys.MarshalBinary()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := ioutil.WriteFile(c.String("output"), b, 0o644); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func genBinds(c *cli.Context) error {
	var binds rom8.Keybinds
	for _, bind := range splitValues(c.StringSlice("bind")) {
		b, err := rom8.ParseKeybinds(bind)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		binds = append(binds, b...)
	}

	b, err := binds.MarshalBinary()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := ioutil.WriteFile(c.String("output"), b, 0o644); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

// splitValues accepts both repeated flags and comma separated lists
func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func scan(c *cli.Context) (*asset.Catalog, error) {
	catalog := asset.NewCatalog(logger)

	if c.IsSet("database") {
		db, err := database.NewDatabase(c.String("database"))
		if err != nil {
			return nil, err
		}
		defer db.Close()

		if err := db.Catalog(catalog); err != nil {
			return nil, err
		}
	}

	for _, dir := range splitValues(c.StringSlice("input")) {
		if err := catalog.Scan(dir); err != nil {
			return nil, err
		}
	}
	logger.Info("scanned", "models", catalog.Len())

	return catalog, nil
}

func mangle(c *cli.Context) error {
	if !c.IsSet("input") && !c.IsSet("database") {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	catalog, err := scan(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	written, err := asset.Mangle(catalog, c.String("output"), logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, path := range written {
		fmt.Println(path)
	}

	return nil
}

func index(c *cli.Context) error {
	catalog := asset.NewCatalog(logger)
	for _, dir := range splitValues(c.StringSlice("input")) {
		if err := catalog.Scan(dir); err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	logger.Info("scanned", "models", catalog.Len())

	db, err := database.NewDatabase(c.String("database"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	if err := db.ImportCatalog(catalog); err != nil {
		return cli.NewExitError(err, 1)
	}

	models, files, err := db.Models()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Printf("%d models, %d files\n", models, files)

	return nil
}

func newApp(stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "rom8"
	app.Usage = "ROM8 calculator firmware bundle utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log `LEVEL`: trace, debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{"ROM8_LOG_LEVEL"},
		},
	}

	app.Before = func(c *cli.Context) error {
		logger = newLogger(c.String("log-level"), stderr)
		return nil
	}

	outputFlag := &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "write to `FILE`",
		Required: true,
	}

	app.Commands = []*cli.Command{
		{
			Name:      "show",
			Usage:     "Show the contents of a " + rom8.Extension + " file",
			ArgsUsage: "FILE",
			Action:    show,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "verbose",
					Aliases: []string{"v"},
					Usage:   "list every key table entry",
				},
			},
		},
		{
			Name:      "keytest",
			Usage:     "List the GUI keys under a point on the face",
			ArgsUsage: "FILE",
			Action:    keytest,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "x",
					Usage:    "`X` coordinate",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "y",
					Usage:    "`Y` coordinate",
					Required: true,
				},
			},
		},
		{
			Name:      "cat",
			Usage:     "Concatenate the records of " + rom8.Extension + " files",
			ArgsUsage: "FILE...",
			Action:    cat,
			Flags:     []cli.Flag{outputFlag},
		},
		{
			Name:   "autogrid",
			Usage:  "Generate a GUI key table for a bank of keys",
			Action: autogrid,
			Flags: []cli.Flag{
				&cli.UintFlag{Name: "x", Usage: "left edge of the first key", Required: true},
				&cli.UintFlag{Name: "y", Usage: "top edge of the first key", Required: true},
				&cli.UintFlag{Name: "w", Usage: "key width", Required: true},
				&cli.UintFlag{Name: "h", Usage: "key height", Required: true},
				&cli.UintFlag{Name: "ax", Usage: "horizontal distance between keys", Required: true},
				&cli.UintFlag{Name: "ay", Usage: "vertical distance between keys", Required: true},
				&cli.StringFlag{Name: "half", Usage: "key bank, upper or lower", Required: true},
				outputFlag,
			},
		},
		{
			Name:   "gridpoint",
			Usage:  "Generate a GUI key table from explicit rectangles",
			Action: gridpoint,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "rect",
					Usage:    "rectangle as `XxY;WxH;KC` with a hexadecimal keycode",
					Required: true,
				},
				outputFlag,
			},
		},
		{
			Name:   "gen-binds",
			Usage:  "Generate a key binding table",
			Action: genBinds,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "bind",
					Usage:    "`basic`, or KEY=KC with a character or special key name and a hexadecimal keycode",
					Required: true,
				},
				outputFlag,
			},
		},
		{
			Name:   "wrap",
			Usage:  "Wrap an ES+ emulator ROM image into a " + rom8.Extension + " file",
			Action: wrap,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "rom", Usage: "ROM image `FILE`", Required: true},
				&cli.StringFlag{Name: "face", Usage: "PNG or SVG face artwork `FILE`", Required: true},
				&cli.UintFlag{Name: "disp-x", Usage: "left edge of the display on the face", Required: true},
				&cli.UintFlag{Name: "disp-y", Usage: "top edge of the display on the face", Required: true},
				&cli.UintFlag{Name: "disp-scale", Usage: "display scale factor", Required: true},
				&cli.StringSliceFlag{Name: "grid", Usage: "GUI key table `FILE`"},
				&cli.StringSliceFlag{Name: "binds", Usage: "key binding table `FILE`"},
				&cli.StringFlag{Name: "model", Usage: "model `NAME`", Value: "fx-83 GT+"},
				&cli.Int64Flag{Name: "rom-size", Usage: "pad the ROM image with 0xff to `SIZE` bytes"},
				outputFlag,
			},
		},
		{
			Name:   "mangle",
			Usage:  "Create " + rom8.Extension + " files from a tree of assets",
			Action: mangle,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Usage:   "asset `DIRECTORY`",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output directory or `PATTERN` containing %s",
					Value:   "roms",
				},
				&cli.StringFlag{
					Name:  "database",
					Usage: "also read assets indexed in SQLite `FILE`",
				},
			},
		},
		{
			Name:   "index",
			Usage:  "Index a tree of assets into a SQLite database",
			Action: index,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Usage:    "asset `DIRECTORY`",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "database",
					Usage:    "SQLite `FILE`",
					Required: true,
				},
			},
		},
	}

	return app
}

func main() {
	if err := newApp(os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
