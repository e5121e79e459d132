package chip8

// Framebuffer is the monochrome 64x32 display, indexed by row then column.
type Framebuffer [ScreenHeight][ScreenWidth]bool

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates wrap around the screen edges.
func (f Framebuffer) Pixel(x, y int) bool {
	return f[wrap(y, ScreenHeight)][wrap(x, ScreenWidth)]
}

// LitPixels returns the number of lit pixels.
func (f Framebuffer) LitPixels() int {
	count := 0
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				count++
			}
		}
	}
	return count
}

// clear turns all pixels off.
func (f *Framebuffer) clear() {
	*f = Framebuffer{}
}

// drawSprite XORs the sprite rows onto the framebuffer with its top left
// corner at x, y. Both the start position and every plotted pixel wrap around
// the screen edges. It returns whether any lit pixel was turned off.
func (f *Framebuffer) drawSprite(x, y byte, rows []byte) bool {
	collision := false
	originX := int(x) % ScreenWidth
	originY := int(y) % ScreenHeight

	for row, data := range rows {
		py := (originY + row) % ScreenHeight
		for col := range SpriteWidth {
			if data&(0x80>>col) == 0 {
				continue
			}
			px := (originX + col) % ScreenWidth
			if f[py][px] {
				collision = true
			}
			f[py][px] = !f[py][px]
		}
	}
	return collision
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
