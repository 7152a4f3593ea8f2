package arena

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
)

// Grid is a dense bucket grid over the arena rectangle for radius
// queries
//
// Rebuilt from live targets once per tick; buckets are slices reused
// across rebuilds so steady-state rebuilds allocate nothing. Positions
// outside the bounds clamp into the edge cells, so a query can always
// reach every inserted entity
//
// Query order is row-major over cells and insertion order within a
// cell. Rebuild inserts targets in arena order, which makes every
// spatial query deterministic for a fixed world state
type Grid struct {
	originX, originY float64
	cellSize         float64
	cols, rows       int

	buckets [][]core.Entity // Row-major: index = row*cols + col
}

func NewGrid(bounds core.Area, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(bounds.Width/cellSize) + 1
	rows := int(bounds.Height/cellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		originX:  bounds.X,
		originY:  bounds.Y,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		buckets:  make([][]core.Entity, cols*rows),
	}
}

// cellAt maps a position to clamped grid coordinates
func (g *Grid) cellAt(x, y float64) (col, row int) {
	col = int((x - g.originX) / g.cellSize)
	row = int((y - g.originY) / g.cellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// Clear truncates every bucket, keeping capacity
func (g *Grid) Clear() {
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
}

// Insert adds an entity at a position
func (g *Grid) Insert(id core.Entity, x, y float64) {
	col, row := g.cellAt(x, y)
	idx := row*g.cols + col
	g.buckets[idx] = append(g.buckets[idx], id)
}

// QueryCircle visits every entity in cells overlapping the circle
// Coarse phase only: callers do the exact distance filter. Return false
// from visit to stop early
func (g *Grid) QueryCircle(x, y, radius float64, visit func(core.Entity) bool) {
	if radius < 0 {
		return
	}
	minCol, minRow := g.cellAt(x-radius, y-radius)
	maxCol, maxRow := g.cellAt(x+radius, y+radius)

	for row := minRow; row <= maxRow; row++ {
		base := row * g.cols
		for col := minCol; col <= maxCol; col++ {
			for _, id := range g.buckets[base+col] {
				if !visit(id) {
					return
				}
			}
		}
	}
}
