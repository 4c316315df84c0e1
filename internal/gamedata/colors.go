package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a colour name (e.g., "blue") or a hex code
// ("#FF0000", "FF0000" or the short "#F00") to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tcell.ColorDefault, errors.New("empty color")
	}
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return ParseHexColor(s)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000", "FF0000" or "#F00") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	// Remove leading # if present
	hex = strings.TrimPrefix(hex, "#")

	// Expand the short form: "F0A" -> "FF00AA"
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseColor converts a colour string to tcell.Color, panicking on error.
func MustParseColor(s string) tcell.Color {
	color, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return color
}
