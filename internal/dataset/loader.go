package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Options controls dataset loading.
type Options struct {
	// Delimiter for CSV. If 0, sniffed from the file extension.
	Delimiter rune
	// SheetName selects an XLSX sheet by name.
	SheetName string
	// SheetIndex selects an XLSX sheet by 1-based index when SheetName is
	// empty. 0 means the first sheet.
	SheetIndex int
}

// Loader loads one tabular file format into a Dataset.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string, opt Options) (*Dataset, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// Load selects a loader by filename and returns the loaded Dataset.
// Extensions with no registered loader fail with UnsupportedFormatError.
func Load(path string, opt Options) (*Dataset, error) {
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path, opt)
		}
	}
	return nil, &UnsupportedFormatError{Path: path, Ext: strings.ToLower(filepath.Ext(path))}
}

// UnsupportedFormatError reports a file whose extension has no registered
// loader.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file extension %q for %s (supported: .csv, .tsv, .xlsx)", e.Ext, e.Path)
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}
