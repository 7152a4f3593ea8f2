package arena

import (
	"testing"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
)

func collectQuery(g *Grid, x, y, radius float64) []core.Entity {
	var got []core.Entity
	g.QueryCircle(x, y, radius, func(id core.Entity) bool {
		got = append(got, id)
		return true
	})
	return got
}

func TestGridRowMajorVisitOrder(t *testing.T) {
	g := NewGrid(core.Area{X: 0, Y: 0, Width: 100, Height: 100}, 10)

	// Inserted out of cell order on purpose
	g.Insert(3, 5, 15) // Cell (0, 1)
	g.Insert(2, 15, 5) // Cell (1, 0)
	g.Insert(1, 5, 5)  // Cell (0, 0)
	g.Insert(4, 6, 6)  // Cell (0, 0), after 1
	got := collectQuery(g, 10, 10, 10)

	want := []core.Entity{1, 4, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected entity %d, got %d", i, want[i], got[i])
		}
	}
}

func TestGridClampsFarPositions(t *testing.T) {
	g := NewGrid(core.Area{X: 0, Y: 0, Width: 100, Height: 100}, 10)

	g.Insert(1, -500, -500)
	g.Insert(2, 1e6, 1e6)

	if got := collectQuery(g, 0, 0, 1); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected entity 1 near origin, got %v", got)
	}
	if got := collectQuery(g, 100, 100, 5); len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected entity 2 near far corner, got %v", got)
	}
}

func TestGridEarlyStop(t *testing.T) {
	g := NewGrid(core.Area{X: 0, Y: 0, Width: 100, Height: 100}, 10)
	g.Insert(1, 5, 5)
	g.Insert(2, 5, 5)
	g.Insert(3, 5, 5)

	visits := 0
	g.QueryCircle(5, 5, 1, func(id core.Entity) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Errorf("Expected 1 visit after early stop, got %d", visits)
	}
}

func TestGridNegativeRadius(t *testing.T) {
	g := NewGrid(core.Area{X: 0, Y: 0, Width: 100, Height: 100}, 10)
	g.Insert(1, 5, 5)

	if got := collectQuery(g, 5, 5, -1); len(got) != 0 {
		t.Errorf("Expected no visits for negative radius, got %v", got)
	}
}

func TestGridClearEmptiesBuckets(t *testing.T) {
	g := NewGrid(core.Area{X: 0, Y: 0, Width: 100, Height: 100}, 10)
	g.Insert(1, 5, 5)
	g.Insert(2, 55, 55)
	g.Clear()

	if got := collectQuery(g, 50, 50, 100); len(got) != 0 {
		t.Errorf("Expected empty grid after clear, got %v", got)
	}
}
