// Package render provides a software raster canvas.
// Entities paint onto it each frame through the 2D drawing context; the
// resulting pixel buffer is blitted to the window (or inspected in tests).
package render

import (
	"image"
	"image/color"
	"math"
)

// Canvas is an RGBA pixel buffer with basic drawing primitives.
type Canvas struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

// NewCanvas creates a canvas of the given size, cleared to transparent.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(col color.RGBA) {
	for i := range c.Pixels {
		c.Pixels[i] = col
	}
}

// SetPixel sets a pixel, ignoring out-of-bounds coordinates.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.Pixels[y*c.Width+x] = col
	}
}

// GetPixel returns the pixel at (x, y), or zero for out-of-bounds coordinates.
func (c *Canvas) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return color.RGBA{}
	}
	return c.Pixels[y*c.Width+x]
}

// SetPixelBlend sets a pixel with Porter-Duff source-over compositing.
func (c *Canvas) SetPixelBlend(x, y int, col color.RGBA) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	if col.A == 255 {
		c.Pixels[y*c.Width+x] = col
		return
	}

	idx := y*c.Width + x
	dst := c.Pixels[idx]

	srcA := float64(col.A) / 255.0
	dstA := float64(dst.A) / 255.0
	outA := srcA + dstA*(1-srcA)
	if outA == 0 {
		c.Pixels[idx] = color.RGBA{}
		return
	}

	outR := (float64(col.R)*srcA + float64(dst.R)*dstA*(1-srcA)) / outA
	outG := (float64(col.G)*srcA + float64(dst.G)*dstA*(1-srcA)) / outA
	outB := (float64(col.B)*srcA + float64(dst.B)*dstA*(1-srcA)) / outA

	c.Pixels[idx] = color.RGBA{
		R: uint8(math.Round(outR)),
		G: uint8(math.Round(outG)),
		B: uint8(math.Round(outB)),
		A: uint8(math.Round(outA * 255)),
	}
}

// FillRect fills a rectangle, clipped to the canvas bounds.
func (c *Canvas) FillRect(x, y, width, height int, col color.RGBA) {
	x1 := max(x, 0)
	y1 := max(y, 0)
	x2 := min(x+width, c.Width)
	y2 := min(y+height, c.Height)

	if col.A < 255 {
		for py := y1; py < y2; py++ {
			for px := x1; px < x2; px++ {
				c.SetPixelBlend(px, py, col)
			}
		}
		return
	}
	for py := y1; py < y2; py++ {
		for px := x1; px < x2; px++ {
			c.Pixels[py*c.Width+px] = col
		}
	}
}

// DrawLine draws a line from (x1, y1) to (x2, y2) using Bresenham's algorithm.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.SetPixelBlend(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// ToImage converts the canvas to an image.RGBA for display.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, c.Pixels[y*c.Width+x])
		}
	}
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
