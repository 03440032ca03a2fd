package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bodgit/palconv"
	"github.com/bodgit/palconv/palette"
	"github.com/bodgit/palconv/preview"
	"github.com/bodgit/palconv/swatch"
	"github.com/bodgit/palconv/tpl"
	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newConverter(c *cli.Context) *palconv.Converter {
	return palconv.New(newLogger(c), palconv.Options{
		NormalizeToSixteen: c.Bool("normalize"),
	})
}

func open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return ioutil.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func readText(name string) (string, error) {
	f, err := open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readBuffer(c *cli.Context) (palconv.EncodedBuffer, error) {
	var buf palconv.EncodedBuffer

	data, err := readText(c.Args().First())
	if err != nil {
		return buf, err
	}
	buf.Data = data

	if aux := c.String("aux"); aux != "" {
		if buf.Aux, err = readText(aux); err != nil {
			return buf, err
		}
	}
	return buf, nil
}

func scheme(c *cli.Context, name string) (palconv.Scheme, error) {
	return palconv.ParseScheme(c.String(name))
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func create(name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

func printBuffer(w io.Writer, buf palconv.EncodedBuffer) {
	fmt.Fprintln(w, buf.Data)
	if buf.Aux != "" {
		fmt.Fprintln(w, buf.Aux)
	}
}

func requireFile(c *cli.Context) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "palconv"
	app.Usage = "Retro hardware palette conversion utility"
	app.Version = "1.0.0"

	schemes := make([]string, 0, len(palconv.Schemes()))
	for _, s := range palconv.Schemes() {
		schemes = append(schemes, s.String())
	}
	schemeUsage := "palette encoding, one of " + strings.Join(schemes, ", ")

	fromFlag := &cli.StringFlag{
		Name:    "from",
		Aliases: []string{"f"},
		EnvVars: []string{"PALCONV_FROM"},
		Value:   palconv.RGB24.String(),
		Usage:   "input " + schemeUsage,
	}
	toFlag := &cli.StringFlag{
		Name:    "to",
		Aliases: []string{"t"},
		EnvVars: []string{"PALCONV_TO"},
		Value:   palconv.CRAM.String(),
		Usage:   "output " + schemeUsage,
	}
	auxFlag := &cli.StringFlag{
		Name:  "aux",
		Usage: "read the B byte stream of an arcade-split palette from `FILE`",
	}
	normalizeFlag := &cli.BoolFlag{
		Name:    "normalize",
		Aliases: []string{"n"},
		EnvVars: []string{"PALCONV_NORMALIZE"},
		Usage:   "pad or truncate the palette to 16 colors",
	}
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write to `FILE`",
	}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert a palette from one encoding to another",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{fromFlag, toFlag, auxFlag, normalizeFlag},
			Action: func(c *cli.Context) error {
				requireFile(c)

				from, err := scheme(c, "from")
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				to, err := scheme(c, "to")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				buf, err := readBuffer(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				out, err := newConverter(c).Convert(from, to, buf)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				printBuffer(c.App.Writer, out)

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Export a palette as a Tile Layer Pro file",
			Description: "Without --output the file is created in the current directory as palette_<milliseconds>.tpl",
			ArgsUsage:   "FILE",
			Flags:       []cli.Flag{fromFlag, auxFlag, outputFlag},
			Action: func(c *cli.Context) error {
				requireFile(c)

				from, err := scheme(c, "from")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				buf, err := readBuffer(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				logger := newLogger(c)
				conv := palconv.New(logger, palconv.Options{})

				if c.String("output") == "" {
					cwd, err := os.Getwd()
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					file, err := conv.ExportFile(cwd, time.Now(), from, buf)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					fmt.Fprintln(c.App.Writer, file)

					p, _ := conv.Parse(from, buf)
					return tpl.WriteText(logger.Writer(), palette.Normalize(p))
				}

				var p palette.Palette
				if output := c.String("output"); output == "-" {
					p, err = conv.Export(os.Stdout, from, buf)
				} else {
					p, err = conv.ExportTo(output, from, buf)
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return tpl.WriteText(logger.Writer(), p)
			},
		},
		{
			Name:        "import",
			Usage:       "Import a Tile Layer Pro file",
			Description: "Without --to the palette is printed in every encoding",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "to",
					Aliases: []string{"t"},
					EnvVars: []string{"PALCONV_TO"},
					Usage:   "output " + schemeUsage,
				},
			},
			Action: func(c *cli.Context) error {
				requireFile(c)

				p, err := newConverter(c).ImportFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.String("to") != "" {
					to, err := scheme(c, "to")
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					out, err := palconv.Encode(to, p)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					printBuffer(c.App.Writer, out)
					return nil
				}

				all := palconv.EncodeAll(p)
				for _, s := range palconv.Schemes() {
					fmt.Fprintf(c.App.Writer, "%s:\n", s)
					printBuffer(c.App.Writer, all[s])
				}

				return nil
			},
		},
		{
			Name:      "rearrange",
			Usage:     "Swap palette entries 2 & 4, 3 & 5, 10 & 12, and 11 & 13",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{fromFlag, auxFlag},
			Action: func(c *cli.Context) error {
				requireFile(c)

				from, err := scheme(c, "from")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				buf, err := readBuffer(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				out, err := newConverter(c).Rearrange(from, buf)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				printBuffer(c.App.Writer, out)

				return nil
			},
		},
		{
			Name:      "compare",
			Usage:     "Show how much each color changes when converted",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{fromFlag, toFlag, auxFlag, normalizeFlag},
			Action: func(c *cli.Context) error {
				requireFile(c)

				from, err := scheme(c, "from")
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				to, err := scheme(c, "to")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				buf, err := readBuffer(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				original, converted, err := newConverter(c).RoundTrip(from, to, buf)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				tw := tabwriter.NewWriter(c.App.Writer, 0, 8, 1, ' ', 0)
				fmt.Fprintf(tw, "INDEX\t%s\t%s\tDELTA E\n", strings.ToUpper(from.String()), strings.ToUpper(to.String()))
				for _, d := range palconv.Compare(original, converted) {
					fmt.Fprintf(tw, "%d\t#%s\t#%s\t%.2f\n", d.Index, d.Original, d.Converted, d.Distance*100)
				}

				return tw.Flush()
			},
		},
		{
			Name:      "swatch",
			Usage:     "Draw a palette as a PNG image or Genesis tiles",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				fromFlag,
				auxFlag,
				outputFlag,
				&cli.BoolFlag{
					Name:  "tiles",
					Usage: "write raw Genesis tile and color RAM data instead of PNG",
				},
			},
			Action: func(c *cli.Context) error {
				requireFile(c)

				from, err := scheme(c, "from")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				buf, err := readBuffer(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p, err := newConverter(c).Parse(from, buf)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				output := c.String("output")
				if output == "" {
					output = "palette.png"
					if c.Bool("tiles") {
						output = "palette.bin"
					}
				}

				f, err := create(output)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if c.Bool("tiles") {
					err = swatch.EncodeTiles(f, p)
				} else {
					err = swatch.Encode(f, p)
				}
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "extract",
			Usage:       "Extract a 16 color palette from an image",
			Description: "GIF, JPEG and PNG images are supported; swatches written by the swatch command are read back exactly",
			ArgsUsage:   "IMAGE",
			Flags: []cli.Flag{
				outputFlag,
				&cli.StringFlag{
					Name:    "to",
					Aliases: []string{"t"},
					EnvVars: []string{"PALCONV_TO"},
					Value:   palconv.RGB24.String(),
					Usage:   "output " + schemeUsage,
				},
			},
			Action: func(c *cli.Context) error {
				requireFile(c)

				to, err := scheme(c, "to")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				m, format, err := image.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				p := swatch.Extract(m)
				if len(p) == 0 {
					return cli.NewExitError(palconv.ErrNoColors, 1)
				}
				logger := newLogger(c)
				logger.Printf("Extracted %d colors from %s image\n", len(p), format)

				switch output := c.String("output"); output {
				case "":
				case "-":
					if err := tpl.Encode(os.Stdout, p); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				default:
					if err := palconv.New(logger, palconv.Options{}).Save(output, p); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				out, err := palconv.Encode(to, p)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				printBuffer(c.App.Writer, out)

				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Show a palette in the terminal",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{fromFlag, auxFlag, normalizeFlag},
			Action: func(c *cli.Context) error {
				requireFile(c)

				from, err := scheme(c, "from")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				buf, err := readBuffer(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p, err := newConverter(c).Palette(from, buf)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				s, err := tcell.NewScreen()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()

				if err := preview.Show(ctx, s, from.String(), p); err != nil && err != context.Canceled {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Find and print every Tile Layer Pro file under a directory",
			Description: "Hidden files and directories are skipped",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "to",
					Aliases: []string{"t"},
					EnvVars: []string{"PALCONV_TO"},
					Value:   palconv.RGB24.String(),
					Usage:   "output " + schemeUsage,
				},
			},
			Action: func(c *cli.Context) error {
				requireFile(c)

				to, err := scheme(c, "to")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := newConverter(c).Scan(c.Args().First(), func(path string, p palette.Palette) error {
					out, err := palconv.Encode(to, p)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "%s:\n", path)
					printBuffer(c.App.Writer, out)
					return nil
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "examples",
			Usage: "Print the example palette for each encoding",
			Action: func(c *cli.Context) error {
				for _, s := range palconv.Schemes() {
					fmt.Fprintf(c.App.Writer, "%s:\n", s)
					printBuffer(c.App.Writer, palconv.Examples[s])
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
