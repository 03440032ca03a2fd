package palconv

import (
	"os"
	"path/filepath"

	"github.com/bodgit/palconv/palette"
	"github.com/bodgit/palconv/tpl"
)

// ScanFunc is called by Scan for each palette file found
type ScanFunc func(path string, p palette.Palette) error

// Scan walks the directory tree rooted at base and imports every TPL file
// found, calling fn for each one in lexical order. Hidden files and
// directories are skipped. A file that fails to import is logged and
// skipped; an error from fn stops the walk.
func (c *Converter) Scan(base string, fn ScanFunc) error {
	return filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden entries such as .git or editor backups
		if info.Name()[0] == '.' && file != base {
			if info.Mode().IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Ignore anything that isn't a normal TPL file
		if !info.Mode().IsRegular() || !tpl.ValidFilename(file) {
			return nil
		}

		p, err := c.ImportFile(file)
		if err != nil {
			c.logger.Printf("Skipping \"%s\": %s\n", file, err)
			return nil
		}

		return fn(file, p)
	})
}
