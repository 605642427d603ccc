package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style is the visual style of a dialog box.
type Style struct {
	Fill        color.NRGBA
	Border      color.NRGBA
	Text        color.NRGBA
	Indicator   color.NRGBA
	BorderWidth float64
}

// Default returns a half-transparent white box with a black border, black
// text and a red indicator.
func Default() Style {
	return Style{
		Fill:        color.NRGBA{R: 255, G: 255, B: 255, A: 128},
		Border:      color.NRGBA{A: 255},
		Text:        color.NRGBA{A: 255},
		Indicator:   color.NRGBA{R: 255, A: 255},
		BorderWidth: 2,
	}
}

var namedColors = map[string]color.NRGBA{
	"black":          {A: 255},
	"white":          {R: 255, G: 255, B: 255, A: 255},
	"red":            {R: 255, A: 255},
	"green":          {G: 128, A: 255},
	"lime":           {G: 255, A: 255},
	"blue":           {B: 255, A: 255},
	"yellow":         {R: 255, G: 255, A: 255},
	"gray":           {R: 128, G: 128, B: 128, A: 255},
	"grey":           {R: 128, G: 128, B: 128, A: 255},
	"navy":           {B: 128, A: 255},
	"cornflowerblue": {R: 100, G: 149, B: 237, A: 255},
	"transparent":    {},
}

// ParseColor parses a CSS colour: #RGB, #RRGGBB, #RRGGBBAA, rgb(r, g, b),
// rgba(r, g, b, a) with a in [0,1], or a basic colour name.
func ParseColor(value string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(value))

	if strings.HasPrefix(v, "#") {
		if c, ok := parseHexColor(v); ok {
			return c, nil
		}
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", value)
	}

	if c, ok := namedColors[v]; ok {
		return c, nil
	}

	var r, g, b int
	var a float64
	compact := strings.ReplaceAll(v, " ", "")
	if _, err := fmt.Sscanf(compact, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err == nil {
		return color.NRGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(int(a*255 + 0.5))}, nil
	}
	if _, err := fmt.Sscanf(compact, "rgb(%d,%d,%d)", &r, &g, &b); err == nil {
		return color.NRGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: 255}, nil
	}

	return color.NRGBA{}, fmt.Errorf("unsupported colour %q", value)
}

// parseHexColor parses #RGB, #RRGGBB or #RRGGBBAA
func parseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// ParseLength parses a pixel length such as "3", "3px" or "1.5px".
func ParseLength(value string) (float64, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(value)), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", value)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative length %q", value)
	}
	return f, nil
}

func clampByte(n int) uint8 {
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}
