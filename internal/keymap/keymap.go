// Package keymap translates host keyboard characters to CHIP-8 keypad keys.
package keymap

import (
	"errors"
	"fmt"
	"slices"
	"unicode"

	"github.com/retroenv/chip8emu/internal/options"
)

// ErrUnknownLayout is returned for unsupported layout names.
var ErrUnknownLayout = errors.New("unknown keyboard layout")

// hexLayout maps the hex digit characters directly to the keys of the same value.
var hexLayout = map[rune]byte{
	'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3,
	'4': 0x4, '5': 0x5, '6': 0x6, '7': 0x7,
	'8': 0x8, '9': 0x9, 'a': 0xA, 'b': 0xB,
	'c': 0xC, 'd': 0xD, 'e': 0xE, 'f': 0xF,
}

// cosmacLayout maps the left 4x4 block of a QWERTY keyboard to the keypad
// of the COSMAC VIP:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var cosmacLayout = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Layout is a mapping of keyboard characters to keypad keys.
type Layout struct {
	name string
	keys map[rune]byte
}

// New returns the layout with the given name.
func New(name string) (*Layout, error) {
	var keys map[rune]byte
	switch name {
	case options.KeysHex:
		keys = hexLayout
	case options.KeysCosmac:
		keys = cosmacLayout
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, name)
	}

	return &Layout{
		name: name,
		keys: keys,
	}, nil
}

// Name returns the name of the layout.
func (l *Layout) Name() string {
	return l.name
}

// Key returns the keypad key for a character, ignoring the letter case.
func (l *Layout) Key(r rune) (byte, bool) {
	key, ok := l.keys[unicode.ToLower(r)]
	return key, ok
}

// Runes returns all mapped characters in ascending order.
func (l *Layout) Runes() []rune {
	runes := make([]rune, 0, len(l.keys))
	for r := range l.keys {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}
