package render

import (
	"fmt"
	"image/color"
)

// Class colours in partition order; grey for anything extra.
var palette = []color.RGBA{
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
}

var overallColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

func seriesColor(i int) color.RGBA {
	if i < len(palette) {
		return palette[i]
	}
	return palette[len(palette)-1]
}

func translucent(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x80}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
