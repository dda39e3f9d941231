package raster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bezplot/pkg/graphics"
)

// ErrBadColor is returned by ParseColor for unrecognised input.
var ErrBadColor = errors.New("invalid color")

var namedColors = map[string]graphics.Color{
	"black": graphics.Black(),
	"white": graphics.White(),
	"green": graphics.Green(),
	"red":   graphics.NewRGB(1, 0, 0),
	"blue":  graphics.NewRGB(0, 0, 1),
	"gray":  graphics.NewGray(0.5),
	"grey":  graphics.NewGray(0.5),
}

// ParseColor reads a colour name or a "#rrggbb" / "#rgb" hex triple.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return graphics.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return graphics.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return graphics.Color{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	return graphics.NewRGB(
		float64(v>>16&0xff)/255,
		float64(v>>8&0xff)/255,
		float64(v&0xff)/255,
	), nil
}
