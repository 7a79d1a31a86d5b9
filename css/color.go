// Package css provides CSS color parsing and resolution.
// It is the color utility used by components that accept user-supplied
// color specs (named colors, hex, rgb()/rgba(), hsl()/hsla()).
package css

import (
	"math"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses a CSS color string and returns a Color.
// Accepted forms: named colors, #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r, g, b), rgba(r, g, b, a), hsl(h, s%, l%), hsla(h, s%, l%, a).
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))

	if s == "transparent" {
		return Color{}, true
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunction(s)
	}
	if strings.HasPrefix(s, "hsl(") || strings.HasPrefix(s, "hsla(") {
		return parseHSLFunction(s)
	}

	return Color{}, false
}

// ToRGB resolves a color spec plus an opacity strength into a display-color
// string: "rgba(r, g, b, s)" when strength < 1, otherwise "rgb(r, g, b)".
// Malformed specs are returned verbatim; the rendering surface applies its
// own fallback rules for strings it cannot interpret.
func ToRGB(spec string, strength float64) string {
	c, ok := ParseColor(spec)
	if !ok {
		return spec
	}

	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}

	r := strconv.Itoa(int(c.R))
	g := strconv.Itoa(int(c.G))
	b := strconv.Itoa(int(c.B))

	if strength < 1 {
		return "rgba(" + r + ", " + g + ", " + b + ", " +
			strconv.FormatFloat(strength, 'g', -1, 64) + ")"
	}
	if c.A < 255 {
		return "rgba(" + r + ", " + g + ", " + b + ", " +
			strconv.FormatFloat(float64(c.A)/255, 'g', 3, 64) + ")"
	}
	return "rgb(" + r + ", " + g + ", " + b + ")"
}

// String returns the hex representation of the color.
func (c Color) String() string {
	if c.A == 255 {
		return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
	}
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B) + hexByte(c.A)
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xf]})
}

// parseHexColor parses the digits of a hex color (without the leading '#').
func parseHexColor(s string) (Color, bool) {
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 4:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2], s[3], s[3]})
	}

	switch len(s) {
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	case 8:
		v, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return Color{}, false
		}
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
	}
	return Color{}, false
}

// parseRGBFunction parses rgb(r, g, b) and rgba(r, g, b, a).
func parseRGBFunction(s string) (Color, bool) {
	args, ok := functionArgs(s)
	if !ok || (len(args) != 3 && len(args) != 4) {
		return Color{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSuffix(args[i], "%"), 64)
		if err != nil {
			return Color{}, false
		}
		if strings.HasSuffix(args[i], "%") {
			v = v * 255 / 100
		}
		ch[i] = clampByte(v)
	}

	a := uint8(255)
	if len(args) == 4 {
		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, false
		}
		a = clampByte(v * 255)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

// parseHSLFunction parses hsl(h, s%, l%) and hsla(h, s%, l%, a).
func parseHSLFunction(s string) (Color, bool) {
	args, ok := functionArgs(s)
	if !ok || (len(args) != 3 && len(args) != 4) {
		return Color{}, false
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, false
	}
	sat, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil {
		return Color{}, false
	}
	light, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil {
		return Color{}, false
	}

	a := uint8(255)
	if len(args) == 4 {
		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, false
		}
		a = clampByte(v * 255)
	}

	r, g, b := hslToRGB(h, sat/100, light/100)
	return Color{R: r, G: g, B: b, A: a}, true
}

// functionArgs extracts the comma-separated arguments of a CSS
// functional notation like "rgb(1, 2, 3)".
func functionArgs(s string) ([]string, bool) {
	open := strings.Index(s, "(")
	close := strings.LastIndex(s, ")")
	if open == -1 || close == -1 || close < open {
		return nil, false
	}
	parts := strings.Split(s[open+1:close], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// hslToRGB converts hue (degrees), saturation and lightness (0-1) to RGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 360

	if s == 0 {
		v := clampByte(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)
	return clampByte(r * 255), clampByte(g * 255), clampByte(b * 255)
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
