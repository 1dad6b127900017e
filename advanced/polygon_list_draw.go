package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

type dbgMark struct {
	p     Vector
	color uint32
	label string
}

// CollectDebug returns a debug sink that records every annotation into the
// returned slice, for drawing with dbgDraw afterwards.
func CollectDebug() (DebugFunc, *[]dbgMark) {
	marks := &[]dbgMark{}
	return func(p Vector, color uint32, label string) {
		*marks = append(*marks, dbgMark{p, color, label})
	}, marks
}

func (pl PolygonList) dbgDraw(scale float64, marks []dbgMark) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range pl {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range pl {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, m := range marks {
		r := float64(m.color>>16&0xff) / 255
		g := float64(m.color>>8&0xff) / 255
		b := float64(m.color&0xff) / 255
		c.SetRGB(r, g, b)
		c.DrawCircle(m.p.X, m.p.Y, 3/scale)
		c.Fill()
		if m.label != "" {
			c.DrawString(m.label, m.p.X+5/scale, m.p.Y)
		}
	}

	c.SavePNG("/tmp/polygon_list.png")
	imgcat.CatFile("/tmp/polygon_list.png", os.Stdout)
}
