package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/visigraph/board"
	"github.com/osuushi/visigraph/geom"
)

// Demo of the pathfinding engine. Input on stdin should be newline separated
// points in the form "x y", with each polygon separated by an extra newline.
// Polygons must be simple; winding is detected from the shoelace sign, so
// they may be listed in either order.

var (
	startArg = kingpin.Arg("start", `Start point, as "x,y"`).Required().String()
	goalArg  = kingpin.Arg("goal", `Goal point, as "x,y"`).Required().String()
	expandBy = kingpin.Flag("expand", "Offset every obstacle by this distance before planning (e.g. a robot radius)").Default("0").Float64()
	pngPath  = kingpin.Flag("png", "Render the board and the found path to this PNG file").String()
	scale    = kingpin.Flag("scale", "Pixels per board unit in the PNG").Default("50").Float64()
)

func main() {
	kingpin.Parse()
	start := parsePoint(*startArg)
	goal := parsePoint(*goalArg)

	b := board.New()
	for _, poly := range readPolygons(os.Stdin) {
		b.Add(poly)
	}
	fmt.Printf("Read %d polygons\n", len(b.Polygons()))

	if *expandBy != 0 {
		expanded, err := expandBoard(b, *expandBy)
		if err != nil {
			kingpin.Fatalf("expanding obstacles: %v", err)
		}
		b = expanded
	}

	route := b.ShortestPath(start, goal)
	if route == nil {
		fmt.Println(aurora.Red("unreachable"))
	} else {
		fmt.Print(aurora.Green("path:"))
		total := 0.0
		prev := start
		for _, p := range route {
			fmt.Printf(" (%g, %g)", p.X, p.Y)
			total += prev.Dist(p)
			prev = p
		}
		fmt.Printf("\ncost: %s\n", aurora.Cyan(fmt.Sprintf("%.4f", total)))
	}

	if *pngPath != "" {
		drawBoard(b, start, route, *pngPath, *scale)
		fmt.Println("wrote", *pngPath)
	}
}

func expandBoard(b *board.Board, distance float64) (result *board.Board, err error) {
	defer func() {
		recoveredErr := geom.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return b.Expanded(distance), nil
}

func readPolygons(in *os.File) []*geom.Polygon {
	var polygons []*geom.Polygon
	var points []geom.Point

	flush := func() {
		if len(points) == 0 {
			return
		}
		polygons = append(polygons, buildPolygon(points))
		points = nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty and we collected any points, this is the end of the
		// polygon
		if line == "" {
			flush()
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("invalid y value %q: %v", parts[1], err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}

	// Handle trailing polygon if any
	flush()
	return polygons
}

func buildPolygon(points []geom.Point) (result *geom.Polygon) {
	defer func() {
		if err := geom.HandleGeometryPanicRecover(recover()); err != nil {
			kingpin.Fatalf("invalid polygon %v: %v", points, err)
		}
	}()

	var doubleArea float64
	for i, p := range points {
		q := points[geom.CircularIndex(i+1, len(points))]
		doubleArea += p.X*q.Y - q.X*p.Y
	}
	return geom.NewPolygon(doubleArea > 0, points...)
}

func parsePoint(arg string) geom.Point {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		kingpin.Fatalf("invalid point %q, expected \"x,y\"", arg)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		kingpin.Fatalf("invalid point %q, expected \"x,y\"", arg)
	}
	return geom.Point{X: x, Y: y}
}

const drawPadding = 10

func drawBoard(b *board.Board, start geom.Point, route []geom.Point, path string, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p geom.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, poly := range b.Polygons() {
		for _, p := range poly.Points {
			extend(p)
		}
	}
	extend(start)
	for _, p := range route {
		extend(p)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range b.Polygons() {
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	if len(route) > 0 {
		c.SetRGB(1, 0, 1)
		c.MoveTo(start.X, start.Y)
		for _, p := range route {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}

	if err := c.SavePNG(path); err != nil {
		kingpin.Fatalf("writing %s: %v", path, err)
	}
}
