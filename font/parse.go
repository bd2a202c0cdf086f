package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "errors"

import "golang.org/x/image/font/sfnt"

var ErrInvalidPath = errors.New("invalid font path")

// Similar to [sfnt.Parse](), but wrapping errors with some context.
// The bytes must not be modified while the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, fmt.Errorf("parse font: %w", err) }
	return newFont, nil
}

// Attempts to parse a font located at the given filepath. Supported
// formats are .ttf and .otf.
func ParseFromPath(path string) (*sfnt.Font, error) {
	if !hasValidFontExtension(path) {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for filesystems like [embed.FS].
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, error) {
	if !hasValidFontExtension(path) {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return ParseFromBytes(fontBytes)
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}
