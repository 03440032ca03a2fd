package palconv

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/bodgit/palconv/palette"
	"github.com/bodgit/palconv/tpl"
)

// ErrFilename is returned when importing a file without the .tpl extension
var ErrFilename = errors.New("palconv: not a " + tpl.Extension + " file")

// Export decodes buf according to s and writes it to w as a TPL file. The
// sixteen colors written are returned.
func (c *Converter) Export(w io.Writer, s Scheme, buf EncodedBuffer) (palette.Palette, error) {
	p, err := c.Parse(s, buf)
	if err != nil {
		return nil, err
	}
	p = palette.Normalize(p)

	if err := tpl.Encode(w, p); err != nil {
		return nil, err
	}
	c.logger.Printf("Exported %d colors from %s\n", len(p), s)
	return p, nil
}

// ExportFile is like Export but writes to a new file in dir named after the
// time t. The path of the file is returned.
func (c *Converter) ExportFile(dir string, t time.Time, s Scheme, buf EncodedBuffer) (string, error) {
	file := filepath.Join(dir, tpl.Filename(t))
	if _, err := c.ExportTo(file, s, buf); err != nil {
		return "", err
	}
	return file, nil
}

// ExportTo is like Export but writes to the named file, which must have the
// .tpl extension. Nothing is created unless buf holds at least one valid
// color.
func (c *Converter) ExportTo(name string, s Scheme, buf EncodedBuffer) (palette.Palette, error) {
	if !tpl.ValidFilename(name) {
		return nil, fmt.Errorf("%w: %s", ErrFilename, name)
	}

	p, err := c.Parse(s, buf)
	if err != nil {
		return nil, err
	}
	p = palette.Normalize(p)

	if err := c.Save(name, p); err != nil {
		return nil, err
	}
	c.logger.Printf("Exported %d colors from %s\n", len(p), s)
	return p, nil
}

// Save writes p to the named TPL file. ErrNoColors is returned, and no file
// created, if p is empty.
func (c *Converter) Save(name string, p palette.Palette) (err error) {
	if !tpl.ValidFilename(name) {
		return fmt.Errorf("%w: %s", ErrFilename, name)
	}
	if len(p) == 0 {
		return ErrNoColors
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return tpl.Encode(f, p)
}

// Import reads a TPL file from r. The name is checked for the .tpl
// extension before anything is read.
func (c *Converter) Import(name string, r io.Reader) (palette.Palette, error) {
	if !tpl.ValidFilename(name) {
		return nil, fmt.Errorf("%w: %s", ErrFilename, name)
	}

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p, err := tpl.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	c.logger.Printf("Imported %s\n", name)
	c.logPalette(RGB24, p)
	return p, nil
}

// ImportFile opens and imports the TPL file at path
func (c *Converter) ImportFile(path string) (palette.Palette, error) {
	if !tpl.ValidFilename(path) {
		return nil, fmt.Errorf("%w: %s", ErrFilename, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.Import(filepath.Base(path), f)
}
