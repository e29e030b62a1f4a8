package tui

import (
	"math"
	"strings"

	"studymate/internal/domain"
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellEdge
	cellLabel
)

// renderGraph rasterizes the laid-out graph onto a width x height character
// canvas. Edges are dotted lines between node centres; every node label gets
// the same style.
func renderGraph(g domain.TermGraph, width, height int) string {
	if len(g.Nodes) == 0 {
		return "No keywords found."
	}
	if width < 8 {
		width = 8
	}
	if height < 3 {
		height = 3
	}
	runes := make([][]rune, height)
	kinds := make([][]cellKind, height)
	for y := range runes {
		runes[y] = []rune(strings.Repeat(" ", width))
		kinds[y] = make([]cellKind, width)
	}
	pos := make(map[string][2]int, len(g.Nodes))
	for _, n := range g.Nodes {
		pos[n.Word] = [2]int{scale(n.X, width), scale(n.Y, height)}
	}
	for _, e := range g.Edges {
		a, b := pos[e.From], pos[e.To]
		drawLine(a[0], a[1], b[0], b[1], func(x, y int) {
			runes[y][x] = '·'
			kinds[y][x] = cellEdge
		})
	}
	for _, n := range g.Nodes {
		label := []rune(n.Word)
		if len(label) > width {
			label = label[:width]
		}
		p := pos[n.Word]
		start := p[0] - len(label)/2
		start = max(0, min(start, width-len(label)))
		for i, r := range label {
			runes[p[1]][start+i] = r
			kinds[p[1]][start+i] = cellLabel
		}
	}
	lines := make([]string, height)
	for y := range runes {
		lines[y] = renderRow(runes[y], kinds[y])
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []rune, kinds []cellKind) string {
	var sb strings.Builder
	i := 0
	for i < len(row) {
		j := i
		for j < len(row) && kinds[j] == kinds[i] {
			j++
		}
		seg := string(row[i:j])
		switch kinds[i] {
		case cellLabel:
			sb.WriteString(nodeStyle.Render(seg))
		case cellEdge:
			sb.WriteString(edgeStyle.Render(seg))
		default:
			sb.WriteString(seg)
		}
		i = j
	}
	return sb.String()
}

func scale(v float64, size int) int {
	if math.IsNaN(v) {
		v = 0.5
	}
	p := int(math.Round(v * float64(size-1)))
	return max(0, min(p, size-1))
}

// drawLine walks the cells between two points with Bresenham's algorithm.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
