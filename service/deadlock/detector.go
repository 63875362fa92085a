package deadlock

import (
	"sort"

	"github.com/viant/ossim/model"
)

type nodeKind int

const (
	processNode nodeKind = iota
	resourceNode
)

type node struct {
	kind nodeKind
	id   int
}

// Cycle represents a circular wait as the ordered list of its edges.
type Cycle struct {
	Edges []*model.Edge
}

// Processes returns pids participating in the cycle, ascending.
func (c *Cycle) Processes() []int {
	if c == nil {
		return nil
	}
	seen := map[int]bool{}
	var ret []int
	for _, edge := range c.Edges {
		if edge.Kind != model.EdgeRequest || seen[edge.PID] {
			continue
		}
		seen[edge.PID] = true
		ret = append(ret, edge.PID)
	}
	sort.Ints(ret)
	return ret
}

type graph struct {
	nodes     []node
	adjacency map[node][]*model.Edge
}

func source(edge *model.Edge) node {
	if edge.Kind == model.EdgeAllocation {
		return node{kind: resourceNode, id: edge.RID}
	}
	return node{kind: processNode, id: edge.PID}
}

func target(edge *model.Edge) node {
	if edge.Kind == model.EdgeAllocation {
		return node{kind: processNode, id: edge.PID}
	}
	return node{kind: resourceNode, id: edge.RID}
}

func newGraph(edges []*model.Edge) *graph {
	ret := &graph{adjacency: map[node][]*model.Edge{}}
	seen := map[node]bool{}
	add := func(n node) {
		if !seen[n] {
			seen[n] = true
			ret.nodes = append(ret.nodes, n)
		}
	}
	for _, edge := range edges {
		from, to := source(edge), target(edge)
		add(from)
		add(to)
		duplicate := false
		for _, existing := range ret.adjacency[from] {
			if target(existing) == to {
				duplicate = true
				break
			}
		}
		if !duplicate {
			ret.adjacency[from] = append(ret.adjacency[from], edge)
		}
	}
	// processes first, then resources, each by id
	sort.Slice(ret.nodes, func(i, j int) bool {
		if ret.nodes[i].kind != ret.nodes[j].kind {
			return ret.nodes[i].kind < ret.nodes[j].kind
		}
		return ret.nodes[i].id < ret.nodes[j].id
	})
	for from, next := range ret.adjacency {
		sort.Slice(next, func(i, j int) bool {
			return target(next[i]).id < target(next[j]).id
		})
		ret.adjacency[from] = next
	}
	return ret
}

// Detect returns the first cycle found by a deterministic depth-first search
// over edges, or nil when the graph is acyclic.
func Detect(edges []*model.Edge) *Cycle {
	g := newGraph(edges)
	const (
		white = 0
		grey  = 1
		black = 2
	)
	state := map[node]int{}
	var path []*model.Edge
	var found *Cycle

	var dfs func(node) bool
	dfs = func(n node) bool {
		state[n] = grey
		for _, edge := range g.adjacency[n] {
			next := target(edge)
			switch state[next] {
			case grey:
				// back edge: the cycle starts where next was entered
				start := len(path)
				for i := len(path) - 1; i >= 0; i-- {
					if source(path[i]) == next {
						start = i
						break
					}
				}
				cycle := append([]*model.Edge(nil), path[start:]...)
				found = &Cycle{Edges: append(cycle, edge)}
				return true
			case white:
				path = append(path, edge)
				if dfs(next) {
					return true
				}
				path = path[:len(path)-1]
			}
		}
		state[n] = black
		return false
	}

	for _, n := range g.nodes {
		if state[n] == white && dfs(n) {
			return found
		}
	}
	return nil
}
