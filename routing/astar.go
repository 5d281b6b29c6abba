package routing

import "container/heap"

// astarNode is one entry in the open-set priority queue. seq records
// insertion order so that nodes with equal f-score break ties
// deterministically (spec §4.5/§9: "A*'s tie-break must be deterministic").
type astarNode struct {
	cell Cell
	f    int
	seq  int
}

type openSet []astarNode

func (s openSet) Len() int { return len(s) }
func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].seq < s[j].seq
}
func (s openSet) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s *openSet) Push(x any)        { *s = append(*s, x.(astarNode)) }
func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]
	return item
}

func manhattan(a, b Cell) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func neighbors4(c Cell, rows, cols int) []Cell {
	out := make([]Cell, 0, 4)
	if c.Row > 0 {
		out = append(out, Cell{c.Row - 1, c.Col})
	}
	if c.Row < rows-1 {
		out = append(out, Cell{c.Row + 1, c.Col})
	}
	if c.Col > 0 {
		out = append(out, Cell{c.Row, c.Col - 1})
	}
	if c.Col < cols-1 {
		out = append(out, Cell{c.Row, c.Col + 1})
	}
	return out
}

// astarPath runs 4-connected, uniform-cost A* with a Manhattan heuristic
// from start to goal. Returns the cell path (inclusive of both endpoints) or
// nil if no path exists. Blocked cells are never expanded.
func astarPath(grid *Grid, start, goal Cell) []Cell {
	if grid.getCell(start.Row, start.Col) == 1 || grid.getCell(goal.Row, goal.Col) == 1 {
		return nil
	}

	open := &openSet{}
	heap.Init(open)
	seq := 0
	heap.Push(open, astarNode{cell: start, f: manhattan(start, goal), seq: seq})
	seq++

	cameFrom := map[Cell]Cell{}
	gScore := map[Cell]int{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(astarNode).cell

		if current == goal {
			return reconstructPath(cameFrom, start, current)
		}

		for _, nb := range neighbors4(current, grid.Rows, grid.Cols) {
			if grid.getCell(nb.Row, nb.Col) == 1 {
				continue
			}
			tentative := gScore[current] + 1
			if existing, ok := gScore[nb]; !ok || tentative < existing {
				gScore[nb] = tentative
				cameFrom[nb] = current
				heap.Push(open, astarNode{cell: nb, f: tentative + manhattan(nb, goal), seq: seq})
				seq++
			}
		}
	}

	return nil
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	path := []Cell{goal}
	cur := goal
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
