package maze

import (
	"fmt"
	"math/rand"
)

// candidate tags an unvisited neighbor with the direction leading to it
// from the cell under consideration.
type candidate struct {
	cell *cell
	dir  Direction
}

// carve runs a randomized recursive backtracker over a freshly built grid,
// removing shared walls until the passages form a spanning tree of the
// cell-adjacency graph: every cell reachable, no cycles, and exactly
// width*height-1 wall pairs cleared. The grid must not be aliased while
// carving runs.
func carve(g *grid, rng *rand.Rand) {
	start := Location{X: rng.Intn(g.width), Y: rng.Intn(g.height)}
	path := []*cell{g.at(start)}
	unvisited := g.width*g.height - 1

	for unvisited > 0 {
		if len(path) == 0 {
			panic("maze generator: path exhausted while cells remain unvisited")
		}
		current := path[len(path)-1]
		current.visited = true

		var next []candidate
		for _, d := range Directions {
			if nbr := g.neighbor(current.location, d); nbr != nil && !nbr.visited {
				next = append(next, candidate{cell: nbr, dir: d})
			}
		}
		if len(next) == 0 {
			path = path[:len(path)-1]
			continue
		}

		chosen := next[rng.Intn(len(next))]
		openWall(current, chosen.cell, chosen.dir)
		unvisited--
		path = append(path, chosen.cell)
	}

	verify(g)
}

// openWall clears the shared wall between two adjacent cells on both
// sides. Each side must still be closed: carving an already open wall
// would mean the tree property broke somewhere upstream.
func openWall(from, to *cell, d Direction) {
	if !from.borders[d] {
		panic(fmt.Sprintf("maze generator: %s wall of %s already open", d, from.location))
	}
	if !to.borders[d.Opposite()] {
		panic(fmt.Sprintf("maze generator: %s wall of %s already open", d.Opposite(), to.location))
	}
	from.borders[d] = false
	to.borders[d.Opposite()] = false
}

// verify sweeps the carved grid and asserts the generator's
// postconditions: outward-facing borders are intact and every shared wall
// agrees on both sides. A failure here is a carve defect, never a caller
// error.
func verify(g *grid) {
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range Directions {
			nbr := g.neighbor(c.location, d)
			if nbr == nil {
				if !c.borders[d] {
					panic(fmt.Sprintf("maze generator: boundary wall %s of %s was carved", d, c.location))
				}
				continue
			}
			if c.borders[d] != nbr.borders[d.Opposite()] {
				panic(fmt.Sprintf("maze generator: mismatched wall state between %s and %s", c.location, nbr.location))
			}
		}
	}
}
