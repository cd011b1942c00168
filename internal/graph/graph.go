// Package graph connects Voronoi regions: adjacency from the Delaunay
// triangulation, a depth-first spanning tree and hop distances.
package graph

import (
	"slices"

	"continent/internal/gen/delaunay"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Adjacency lists the neighbours of each of n regions. Two regions are
// neighbours when their sites share a Delaunay edge. Lists are sorted and
// free of duplicates; indices outside [0,n) are ignored.
func Adjacency(tris []delaunay.Triangle, n int) [][]int {
	if n <= 0 {
		return nil
	}
	adj := make([][]int, n)
	link := func(u, v int) {
		if u == v || u < 0 || v < 0 || u >= n || v >= n {
			return
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for _, t := range tris {
		link(t.A, t.B)
		link(t.B, t.C)
		link(t.C, t.A)
	}
	for i := range adj {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
	}
	return adj
}

// DFSConnect walks adj depth-first from start, taking neighbours in list
// order, and returns the visited set with the tree edges in discovery order.
func DFSConnect(adj [][]int, start int) ([]bool, [][2]int) {
	visited := make([]bool, len(adj))
	if start < 0 || start >= len(adj) {
		return visited, nil
	}

	type frame struct{ node, next int }
	var tree [][2]int
	stack := []frame{{node: start}}
	visited[start] = true
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(adj[top.node]) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := adj[top.node][top.next]
		top.next++
		if v < 0 || v >= len(adj) || visited[v] {
			continue
		}
		visited[v] = true
		tree = append(tree, [2]int{top.node, v})
		stack = append(stack, frame{node: v})
	}
	return visited, tree
}

// Distances returns the hop count from the nearest source for every node,
// -1 where no source is reachable.
func Distances(adj [][]int, sources []int) []int {
	n := len(adj)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}

	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for u, ns := range adj {
		for _, v := range ns {
			if v > u && v < n {
				g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}

	// All sources hang off one virtual root so a single walk covers them.
	root := simple.Node(n)
	g.AddNode(root)
	linked := false
	for _, s := range sources {
		if s < 0 || s >= n {
			continue
		}
		g.SetEdge(simple.Edge{F: root, T: simple.Node(s)})
		linked = true
	}
	if !linked {
		return dist
	}

	var bf traverse.BreadthFirst
	bf.Walk(g, root, func(node gonum.Node, depth int) bool {
		if id := int(node.ID()); id < n {
			dist[id] = depth - 1
		}
		return false
	})
	return dist
}
