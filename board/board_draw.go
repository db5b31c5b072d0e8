package board

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/visigraph/dbg"
	"github.com/osuushi/visigraph/geom"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

// Render the board's polygons, their triangulation diagonals, and an
// optional path overlay, then imgcat the result in the terminal (iTerm
// only).
func (b *Board) dbgDraw(scale float64, route []geom.Point) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for poly := range b.polygons {
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
	for poly := range b.polygons {
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()

		// Diagonals, faint, so the visibility blockers are all visible
		c.SetRGB(0.3, 0.3, 0.3)
		for diag := range poly.Diagonals {
			c.DrawLine(diag.A.X, diag.A.Y, diag.B.X, diag.B.Y)
			c.Stroke()
		}
	}

	if len(route) > 0 {
		c.SetRGB(1, 0, 1)
		c.MoveTo(route[0].X, route[0].Y)
		for _, p := range route[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}

	c.SavePNG("/tmp/visigraph_board.png")
	imgcat.CatFile("/tmp/visigraph_board.png", os.Stdout)

	for poly := range b.polygons {
		fmt.Println(dbg.Name(poly), poly.Points)
	}
}

// Dump the cached visibility table, one line per node, hits in green and
// the blocked remainder counted in red.
func (b *Board) dbgDumpVisibility() {
	if b.state != cacheClean {
		fmt.Println(aurora.Red("visibility cache is dirty"))
		return
	}
	for _, node := range b.sortedNodes {
		visible := b.visible[node].Sorted()
		blocked := len(b.sortedNodes) - 1 - len(visible)
		fmt.Printf("%v: %v %s\n",
			node,
			aurora.Green(fmt.Sprint(visible)),
			aurora.Red(fmt.Sprintf("(%d blocked)", blocked)),
		)
	}
}
