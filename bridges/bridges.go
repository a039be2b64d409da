package bridges

import (
	"github.com/katalvlaran/graphkit/core"
)

// FindBridges returns every bridge of the undirected graph g: the edges
// whose removal would increase the number of connected components.
// Disconnected inputs are fine; each component is swept independently.
func FindBridges(g *core.Graph) ([]Edge, error) {
	s, err := sweep(g)
	if err != nil {
		return nil, err
	}

	return s.bridges, nil
}

// ArticulationPoints returns every node of the undirected graph g whose
// removal (with its incident edges) would increase the number of connected
// components, in ascending id order.
func ArticulationPoints(g *core.Graph) ([]int, error) {
	s, err := sweep(g)
	if err != nil {
		return nil, err
	}

	points := make([]int, 0)
	for v, cut := range s.isCut {
		if cut {
			points = append(points, v)
		}
	}

	return points, nil
}

// frame is one explicit-stack record of the low-link DFS.
type frame struct {
	id       int
	parent   int // -1 at component roots
	nbrs     []int
	cursor   int
	children int  // tree children, for the root articulation rule
	skipped  bool // one parent-edge occurrence already excluded
}

// lowlink carries the per-run state of one sweep.
type lowlink struct {
	g       *core.Graph
	disc    []int // discovery time, -1 = unvisited
	low     []int
	clock   int
	stack   []frame
	bridges []Edge
	isCut   []bool
}

// sweep runs the low-link DFS over every component of g and accumulates
// bridges and articulation flags.
func sweep(g *core.Graph) (*lowlink, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirected
	}

	n := g.NodeCount()
	s := &lowlink{
		g:       g,
		disc:    make([]int, n),
		low:     make([]int, n),
		bridges: make([]Edge, 0),
		isCut:   make([]bool, n),
	}
	for i := range s.disc {
		s.disc[i] = -1
	}

	// root every component independently
	for v := 0; v < n; v++ {
		if s.disc[v] < 0 {
			s.component(v)
		}
	}

	return s, nil
}

// component explores one DFS tree rooted at root.
func (s *lowlink) component(root int) {
	s.push(root, -1)

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]

		if top.cursor >= len(top.nbrs) {
			s.pop()

			continue
		}
		v := top.nbrs[top.cursor]
		top.cursor++

		// exclude exactly one occurrence of the parent edge; further
		// occurrences are genuine parallel edges and count as back-edges
		if v == top.parent && !top.skipped {
			top.skipped = true

			continue
		}
		if s.disc[v] >= 0 {
			// back-edge (or self-loop): may lower low[u]
			if s.disc[v] < s.low[top.id] {
				s.low[top.id] = s.disc[v]
			}

			continue
		}
		top.children++
		s.push(v, top.id)
	}
}

// push discovers id: stamps disc/low with the clock and opens its frame.
func (s *lowlink) push(id, parent int) {
	s.disc[id] = s.clock
	s.low[id] = s.clock
	s.clock++

	deg, _ := s.g.Degree(id)
	nbrs := make([]int, 0, deg)
	for v := range s.g.Neighbors(id) {
		nbrs = append(nbrs, v)
	}
	s.stack = append(s.stack, frame{id: id, parent: parent, nbrs: nbrs})
}

// pop closes the finished frame, folding its low value into the parent and
// applying the bridge and articulation rules for the tree edge.
func (s *lowlink) pop() {
	done := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	if done.parent < 0 {
		// component root: articulation iff it branched at least twice
		s.isCut[done.id] = done.children >= 2

		return
	}

	u, v := done.parent, done.id
	if s.low[v] < s.low[u] {
		s.low[u] = s.low[v]
	}
	if s.low[v] > s.disc[u] {
		s.bridges = append(s.bridges, Edge{U: u, V: v})
	}
	if s.low[v] >= s.disc[u] && s.stack[len(s.stack)-1].parent >= 0 {
		// non-root parent with a trapped subtree
		s.isCut[u] = true
	}
}
