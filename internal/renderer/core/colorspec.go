package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor indicates a color setting that cannot be turned into SGR.
var ErrInvalidColor = errors.New("invalid color")

// namedColors maps color names to their SGR foreground parameter.
var namedColors = map[string]int{
	"black":          30,
	"red":            31,
	"green":          32,
	"yellow":         33,
	"blue":           34,
	"magenta":        35,
	"cyan":           36,
	"white":          37,
	"bright-black":   90,
	"gray":           90,
	"grey":           90,
	"bright-red":     91,
	"bright-green":   92,
	"bright-yellow":  93,
	"bright-blue":    94,
	"bright-magenta": 95,
	"bright-cyan":    96,
	"bright-white":   97,
}

// ParseColorSpec converts a color setting into SGR parameters.
//
// Accepted forms:
//
//	green, bright-cyan   named ANSI foreground colors
//	#00ff88, #0f8        true color, emitted as 38;2;r;g;b
//	1;32                 raw SGR parameters, passed through
func ParseColorSpec(spec string) (string, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidColor)
	}

	if n, ok := namedColors[spec]; ok {
		return strconv.Itoa(n), nil
	}

	if strings.HasPrefix(spec, "#") {
		c, err := colorful.Hex(spec)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrInvalidColor, spec, err)
		}
		r, g, b := c.RGB255()
		return fmt.Sprintf("38;2;%d;%d;%d", r, g, b), nil
	}

	if validSGRParams(spec) {
		return spec, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidColor, spec)
}

// validSGRParams reports whether s is a list of numbers separated by ';'.
func validSGRParams(s string) bool {
	for _, part := range strings.Split(s, ";") {
		if part == "" {
			return false
		}
		if _, err := strconv.ParseUint(part, 10, 8); err != nil {
			return false
		}
	}
	return true
}
