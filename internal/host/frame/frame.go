// Package frame converts the CHIP-8 framebuffer to the pixel and text
// formats of the hosts.
package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/retroenv/chip8emu/internal/chip8"
	xdraw "golang.org/x/image/draw"
)

// Colors of the lit and unlit pixels.
var (
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Background = color.RGBA{A: 0xFF}
)

// PixelBytes is the size of the RGBA pixel buffer for one frame.
const PixelBytes = chip8.ScreenWidth * chip8.ScreenHeight * 4

// RGBA writes the framebuffer as RGBA pixels into pixels, which must hold
// at least PixelBytes bytes.
func RGBA(fb *chip8.Framebuffer, pixels []byte) {
	offset := 0
	for y := range fb {
		for x := range fb[y] {
			c := Background
			if fb[y][x] {
				c = Foreground
			}
			pixels[offset] = c.R
			pixels[offset+1] = c.G
			pixels[offset+2] = c.B
			pixels[offset+3] = c.A
			offset += 4
		}
	}
}

// Image returns the framebuffer as image scaled by the given factor.
func Image(fb *chip8.Framebuffer, scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, chip8.ScreenWidth, chip8.ScreenHeight))
	RGBA(fb, src.Pix)

	scale = max(scale, 1)
	if scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, chip8.ScreenWidth*scale, chip8.ScreenHeight*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG writes the image as PNG file.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing screenshot file: %w", err)
	}
	return nil
}

// Text renders the framebuffer with half block characters, every text line
// holds two pixel rows. Lines are separated by CR LF so that the output is
// usable on a terminal in raw mode.
func Text(fb *chip8.Framebuffer) string {
	var sb strings.Builder
	sb.Grow(chip8.ScreenHeight / 2 * (chip8.ScreenWidth*3 + 2))

	for y := 0; y < chip8.ScreenHeight; y += 2 {
		if y > 0 {
			sb.WriteString("\r\n")
		}
		for x := range chip8.ScreenWidth {
			top, bottom := fb[y][x], fb[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
