package chip8

import "fmt"

// Keypad holds the pressed state of the 16 hex keys.
type Keypad [KeyCount]bool

// Pressed returns whether the key with the low nibble of index is pressed.
func (k Keypad) Pressed(index byte) bool {
	return k[index&0x0F]
}

// SetKeyState updates a single key. Pressing a released key is recorded as a
// key press event that satisfies a pending key wait on the next Step.
// Hosts that use SetKeyState pass Keys() as snapshot to Step.
func (m *Machine) SetKeyState(key int, pressed bool) error {
	if key < 0 || key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	if pressed && !m.keys[key] {
		m.lastPress = key
	}
	m.keys[key] = pressed
	return nil
}

// Keys returns the current keypad state.
func (m *Machine) Keys() Keypad {
	return m.keys
}

// applyKeys replaces the keypad state with a host snapshot and records the
// highest key that changed from released to pressed.
func (m *Machine) applyKeys(keys Keypad) {
	for key, pressed := range keys {
		if pressed && !m.keys[key] {
			m.lastPress = key
		}
	}
	m.keys = keys
}
