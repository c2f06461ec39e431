package algorithms

// unassigned marks a vertex not yet placed in a component.
const unassigned = -1

// weakComponents labels each vertex with the id of its weakly connected
// component, following edges in both directions. Components are numbered
// in discovery order, scanning start vertices by ascending id, so the
// component containing vertex 0 is always 0.
func weakComponents(g Graph) (assignment []int, count int) {
	n := g.NumVertices()

	neighbors := make([][]int, n)
	for v := 0; v < n; v++ {
		for _, edge := range g.OutEdges(v) {
			if edge.To == v || edge.To < 0 || edge.To >= n {
				continue
			}
			neighbors[v] = append(neighbors[v], edge.To)
			neighbors[edge.To] = append(neighbors[edge.To], v)
		}
	}

	assignment = make([]int, n)
	for v := range assignment {
		assignment[v] = unassigned
	}

	stack := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if assignment[start] != unassigned {
			continue
		}

		assignment[start] = count
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range neighbors[v] {
				if assignment[w] == unassigned {
					assignment[w] = count
					stack = append(stack, w)
				}
			}
		}
		count++
	}

	return assignment, count
}

// componentTable records, row by row, which component each vertex belonged
// to after every edge removal that split the graph. Row 0 is the input
// graph. Because components are weak and edges are only ever removed, each
// row refines the previous one.
type componentTable struct {
	rows   [][]int
	counts []int
}

func newComponentTable(initial []int, count int) *componentTable {
	return &componentTable{
		rows:   [][]int{initial},
		counts: []int{count},
	}
}

// numRows returns the number of recorded rows.
func (t *componentTable) numRows() int {
	return len(t.rows)
}

// last returns the component count of the most recent row.
func (t *componentTable) last() int {
	return t.counts[len(t.counts)-1]
}

// record appends a row if it has strictly more components than the last
// one. It reports whether the row was kept.
func (t *componentTable) record(assignment []int, count int) bool {
	if count <= t.last() {
		return false
	}
	t.rows = append(t.rows, assignment)
	t.counts = append(t.counts, count)
	return true
}

// partition groups members by their component at row, ordering groups by
// their first member. Members keep their relative order inside a group.
func (t *componentTable) partition(members []int, row int) [][]int {
	assignment := t.rows[row]
	index := make(map[int]int)

	var groups [][]int
	for _, v := range members {
		c := assignment[v]
		g, ok := index[c]
		if !ok {
			g = len(groups)
			index[c] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], v)
	}
	return groups
}
