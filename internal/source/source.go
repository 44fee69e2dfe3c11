package source

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultExtension is the file extension of scanned documents.
const DefaultExtension = ".md"

// Source yields the documents of a run and their text.
type Source interface {
	// Paths returns the document paths, relative to the root, slash-separated
	// and sorted.
	Paths() ([]string, error)

	// ReadText returns the full text of the document at path.
	ReadText(path string) (string, error)
}

// Dir is a Source backed by a directory tree.
type Dir struct {
	// fsys is the tree rooted at the scanned directory.
	fsys fs.FS

	// ext selects which files are documents.
	ext string
}

// NewDir creates a Source for the directory at root.
// It fails if root does not exist or is not a directory.
func NewDir(root string) (*Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	return NewFS(os.DirFS(root)), nil
}

// NewFS creates a Source over an existing file system.
func NewFS(fsys fs.FS) *Dir {
	return &Dir{
		fsys: fsys,
		ext:  DefaultExtension,
	}
}

// Paths walks the whole tree and returns every file with the document extension.
func (d *Dir) Paths() ([]string, error) {
	paths := make([]string, 0)

	err := fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrUnreadable, p, err)
		}
		if entry.IsDir() {
			return nil
		}
		if path.Ext(p) == d.ext {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// ReadText reads the document at p and decodes it to a string.
func (d *Dir) ReadText(p string) (string, error) {
	raw, err := fs.ReadFile(d.fsys, p)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnreadable, p, err)
	}

	text, err := decode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, p)
	}
	return text, nil
}

var (
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// decode accepts UTF-8 with or without a BOM, and UTF-16 with a BOM.
// Anything else that is not valid UTF-8 is rejected rather than repaired.
func decode(raw []byte) (string, error) {
	isUTF16 := bytes.HasPrefix(raw, utf16BEBOM) || bytes.HasPrefix(raw, utf16LEBOM)
	if !isUTF16 && !utf8.Valid(raw) {
		return "", ErrUndecodable
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUndecodable, err)
	}
	return string(decoded), nil
}
