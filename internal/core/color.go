package core

// Color represents a foreground color for a screen cell or canvas shape.
// Every color resolves to a fixed RGB triple so terminal and desktop hosts
// agree on what a widget looks like.
type Color uint8

// Basic colors used by HUD text and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange

	// Widget palette.
	ColorSunflower // #FCD748
	ColorIris      // #917FF0
	ColorAqua      // #72D2BE
	ColorCoral     // #F97F7A
	ColorSky       // #61ADEB
	ColorLeaf      // #3FAD4B
	ColorBrand     // #651FFF
	ColorViolet    // #8B5CF6
	ColorLavender  // #A78BFA
	ColorSlate     // #64748B
	ColorMist      // #A3B4D6
	ColorInk       // #111111
	ColorSnow      // #FFFFFF

	colorCount
)

// RGB is an 8-bit per channel color value.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}

var palette = [colorCount]RGB{
	ColorDefault:   {0xe5, 0xe5, 0xe5},
	ColorRed:       {0xef, 0x44, 0x44},
	ColorGreen:     {0x22, 0xc5, 0x5e},
	ColorYellow:    {0xea, 0xb3, 0x08},
	ColorBlue:      {0x3b, 0x82, 0xf6},
	ColorMagenta:   {0xd9, 0x46, 0xef},
	ColorCyan:      {0x06, 0xb6, 0xd4},
	ColorWhite:     {0xf5, 0xf5, 0xf5},
	ColorGray:      {0x8a, 0x8a, 0x8a},
	ColorOrange:    {0xf9, 0x73, 0x16},
	ColorSunflower: {0xfc, 0xd7, 0x48},
	ColorIris:      {0x91, 0x7f, 0xf0},
	ColorAqua:      {0x72, 0xd2, 0xbe},
	ColorCoral:     {0xf9, 0x7f, 0x7a},
	ColorSky:       {0x61, 0xad, 0xeb},
	ColorLeaf:      {0x3f, 0xad, 0x4b},
	ColorBrand:     {0x65, 0x1f, 0xff},
	ColorViolet:    {0x8b, 0x5c, 0xf6},
	ColorLavender:  {0xa7, 0x8b, 0xfa},
	ColorSlate:     {0x64, 0x74, 0x8b},
	ColorMist:      {0xa3, 0xb4, 0xd6},
	ColorInk:       {0x11, 0x11, 0x11},
	ColorSnow:      {0xff, 0xff, 0xff},
}

// RGB returns the color value under the given theme.
// ColorDefault follows the theme foreground; everything else is fixed.
func (c Color) RGB(t Theme) RGB {
	if c == ColorDefault {
		return t.Foreground()
	}
	if c >= colorCount {
		return t.Foreground()
	}
	return palette[c]
}

// Accents is the six-color palette shared by the bouncing balls, the
// network points and the confetti burst.
var Accents = []Color{
	ColorSunflower,
	ColorIris,
	ColorAqua,
	ColorCoral,
	ColorSky,
	ColorLeaf,
}
