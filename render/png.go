package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"roomplanner/models"
)

const margin = 20.0

// 类别颜色
var palette = map[string][3]float64{
	models.CategorySofa:      {0.36, 0.55, 0.80},
	models.CategoryCoffee:    {0.62, 0.45, 0.30},
	models.CategoryTVStand:   {0.30, 0.30, 0.35},
	models.CategoryBookshelf: {0.55, 0.70, 0.40},
	models.CategorySideTable: {0.85, 0.65, 0.35},
	models.CategoryArmchair:  {0.75, 0.40, 0.50},
}

// PNG draws the room at scale pixels per metre, Y growing downwards from the
// top wall as on screen.
func PNG(w io.Writer, result models.LayoutResult, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", scale)
	}
	room := result.Room
	width := int(math.Ceil(math.Max(room.Length, 0)*scale + 2*margin))
	height := int(math.Ceil(math.Max(room.Width, 0)*scale + 2*margin))

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(3)
	dc.DrawRectangle(margin, margin, room.Length*scale, room.Width*scale)
	dc.Stroke()

	for _, p := range result.Placed {
		x, y := margin+p.X*scale, margin+p.Y*scale
		pw, ph := p.Width*scale, p.Depth*scale

		c, ok := palette[strings.ToLower(p.Category)]
		if !ok {
			c = [3]float64{0.6, 0.6, 0.6}
		}
		dc.SetRGBA(c[0], c[1], c[2], 0.8)
		dc.DrawRectangle(x, y, pw, ph)
		dc.Fill()

		dc.SetRGB(0.1, 0.1, 0.1)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, pw, ph)
		dc.Stroke()
		dc.DrawStringAnchored(p.Name, x+pw/2, y+ph/2, 0.5, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode layout png: %w", err)
	}
	return nil
}
