// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/user-none/eblitui/romloader"
)

// Extensions lists the file extensions that are recognized as CHIP-8 programs,
// also inside of archives.
var Extensions = []string{".ch8", ".c8", ".rom", ".bin"}

// ErrEmptyROM is returned for ROM files without content.
var ErrEmptyROM = errors.New("empty rom")

// ROM is a program image read from disk.
type ROM struct {
	Name string // base name of the file, inside the archive for compressed files
	Data []byte
}

// Loader handles loading ROM files from disk.
type Loader struct {
	extensions []string
}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{
		extensions: Extensions,
	}
}

// Load reads a ROM from the given path. Zip, 7z, gzip and rar archives are
// extracted, files with an unknown extension are read as raw program image.
// ROMs that do not fit into the program space of the machine are rejected.
func (l *Loader) Load(path string) (ROM, error) {
	data, name, err := romloader.Load(path, l.extensions)
	if errors.Is(err, romloader.ErrUnsupportedFormat) {
		data, err = readRaw(path)
		name = filepath.Base(path)
	}
	if err != nil {
		return ROM{}, fmt.Errorf("loading ROM file %s: %w", path, err)
	}

	if len(data) == 0 {
		return ROM{}, fmt.Errorf("%w: %s", ErrEmptyROM, path)
	}
	if len(data) > chip8.MaxProgramSize {
		return ROM{}, fmt.Errorf("%w: %s has %d bytes, the program space holds %d bytes",
			chip8.ErrROMTooLarge, name, len(data), chip8.MaxProgramSize)
	}

	return ROM{
		Name: name,
		Data: data,
	}, nil
}

// readRaw reads a file that is not detected as archive, limited to one byte
// more than the program space so that oversized files are detected.
func readRaw(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}
