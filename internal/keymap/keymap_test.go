package keymap

import (
	"errors"
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	layout, err := New(options.KeysHex)
	assert.NoError(t, err)
	assert.Equal(t, options.KeysHex, layout.Name())

	_, err = New("dvorak")
	assert.True(t, errors.Is(err, ErrUnknownLayout))
}

func TestLayout_Key(t *testing.T) {
	tests := []struct {
		layout string
		r      rune
		key    byte
		ok     bool
	}{
		{options.KeysHex, '0', 0x0, true},
		{options.KeysHex, '9', 0x9, true},
		{options.KeysHex, 'a', 0xA, true},
		{options.KeysHex, 'F', 0xF, true},
		{options.KeysHex, 'g', 0, false},
		{options.KeysCosmac, '4', 0xC, true},
		{options.KeysCosmac, 'x', 0x0, true},
		{options.KeysCosmac, 'V', 0xF, true},
		{options.KeysCosmac, '5', 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.layout+"_"+string(tt.r), func(t *testing.T) {
			layout, err := New(tt.layout)
			assert.NoError(t, err)

			key, ok := layout.Key(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestLayout_CoversKeypad(t *testing.T) {
	for _, name := range []string{options.KeysHex, options.KeysCosmac} {
		layout, err := New(name)
		assert.NoError(t, err)

		runes := layout.Runes()
		assert.Len(t, runes, 16)

		var seen [16]bool
		for _, r := range runes {
			key, ok := layout.Key(r)
			assert.True(t, ok)
			seen[key] = true
		}
		for key, found := range seen {
			assert.True(t, found, "key %X not mapped in layout %s", key, name)
		}
	}
}
