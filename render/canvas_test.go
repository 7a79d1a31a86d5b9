package render

import (
	"image/color"
	"testing"
)

func TestSetPixelBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	red := color.RGBA{255, 0, 0, 255}

	c.SetPixel(1, 2, red)
	if got := c.GetPixel(1, 2); got != red {
		t.Errorf("GetPixel(1, 2) = %v, want %v", got, red)
	}

	// Out-of-bounds writes are ignored
	c.SetPixel(-1, 0, red)
	c.SetPixel(0, -1, red)
	c.SetPixel(4, 0, red)
	c.SetPixel(0, 4, red)
	if got := c.GetPixel(4, 0); got != (color.RGBA{}) {
		t.Errorf("out-of-bounds GetPixel = %v, want zero", got)
	}
}

func TestSetPixelBlend(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetPixel(0, 0, color.RGBA{0, 0, 0, 255})

	// 50% white over black gives mid gray
	c.SetPixelBlend(0, 0, color.RGBA{255, 255, 255, 128})
	got := c.GetPixel(0, 0)
	if got.R < 120 || got.R > 136 || got.A != 255 {
		t.Errorf("blended pixel = %v, want mid gray, opaque", got)
	}

	// Fully opaque source replaces destination
	c.SetPixelBlend(1, 0, color.RGBA{10, 20, 30, 255})
	if got := c.GetPixel(1, 0); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("opaque blend = %v, want source color", got)
	}
}

func TestFillRectClips(t *testing.T) {
	c := NewCanvas(4, 4)
	blue := color.RGBA{0, 0, 255, 255}
	c.FillRect(-2, -2, 4, 4, blue)

	if got := c.GetPixel(1, 1); got != blue {
		t.Errorf("inside pixel = %v, want %v", got, blue)
	}
	if got := c.GetPixel(2, 2); got != (color.RGBA{}) {
		t.Errorf("outside pixel = %v, want zero", got)
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(5, 5)
	white := color.RGBA{255, 255, 255, 255}
	c.DrawLine(0, 0, 4, 4, white)

	for i := 0; i < 5; i++ {
		if got := c.GetPixel(i, i); got != white {
			t.Errorf("diagonal pixel (%d, %d) = %v, want white", i, i, got)
		}
	}
}

func TestMeasureText(t *testing.T) {
	if got := MeasureText("", 10); got != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", got)
	}

	// One character at scale s is 5s wide; n characters add (n-1)s spacing.
	scale := 14.0 / 7
	if got, want := MeasureText("a", 14), 5*scale; got != want {
		t.Errorf("MeasureText(\"a\", 14) = %v, want %v", got, want)
	}
	if got, want := MeasureText("abc", 14), 3*5*scale+2*scale; got != want {
		t.Errorf("MeasureText(\"abc\", 14) = %v, want %v", got, want)
	}

	// Width scales linearly with font size
	if MeasureText("hi", 20) <= MeasureText("hi", 10) {
		t.Error("larger font should measure wider")
	}
}

func TestDrawTextPaintsPixels(t *testing.T) {
	c := NewCanvas(20, 10)
	white := color.RGBA{255, 255, 255, 255}
	c.DrawText("|", 0, 0, white, 7, false)

	// '|' is a vertical bar through column 2 of the glyph
	painted := 0
	for y := 0; y < 7; y++ {
		if c.GetPixel(2, y) == white {
			painted++
		}
	}
	if painted != 7 {
		t.Errorf("painted %d pixels of '|', want 7", painted)
	}
}

func TestToImage(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetPixel(1, 0, color.RGBA{1, 2, 3, 255})
	img := c.ToImage()
	if got := img.RGBAAt(1, 0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("ToImage pixel = %v, want {1 2 3 255}", got)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("ToImage bounds = %v, want 2x2", img.Bounds())
	}
}
