package cuckoo

import (
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo/siphash"
)

var testKeys = siphash.Keys{
	0xe4b4a751f2eac47d,
	0x3115d47edfb69267,
	0x87de84146d9d609e,
	0x7deb20eab6d976a1,
}

// testGraph returns fixed endpoints for the edges it knows and falls back to
// the siphash graph for any other edge.
type testGraph struct {
	ends     map[uint32][2]uint32
	fallback Graph
	calls    int
}

func (g *testGraph) Node(edge, uorv uint32) uint32 {
	g.calls++
	if e, ok := g.ends[edge]; ok {
		return e[uorv]
	}
	return g.fallback.Node(edge, uorv)
}

func (g *testGraph) node(edge, uorv uint32) uint32 {
	return g.ends[edge][uorv]
}

func (g *testGraph) set(edge, uorv, node uint32) {
	e := g.ends[edge]
	e[uorv] = node
	g.ends[edge] = e
}

// cycleGraph lays out disjoint cycles of the given even lengths over
// increasing edge indices. Within a cycle of length l the u endpoints of
// edges 2p and 2p+1 share a node, as do the v endpoints of edges 2p+1 and
// 2p+2 mod l. Nodes of one pair differ only in the lowest bit.
func cycleGraph(lengths ...int) (*testGraph, []uint32) {
	g := &testGraph{
		ends:     make(map[uint32][2]uint32),
		fallback: Cuckatoo31.NewGraph(&testKeys),
	}
	var edges []uint32
	pair := uint32(10)
	start := 0
	for _, l := range lengths {
		for n := 0; n < l; n++ {
			edges = append(edges, uint32(1000+7*(start+n)))
		}
		ends := make([][2]uint32, l)
		for p := 0; p < l/2; p++ {
			ends[2*p][0] = 2 * pair
			ends[2*p+1][0] = 2*pair + 1
			pair++
			ends[2*p+1][1] = 2 * pair
			ends[(2*p+2)%l][1] = 2*pair + 1
			pair++
		}
		for n := 0; n < l; n++ {
			g.ends[edges[start+n]] = ends[n]
		}
		start += l
	}
	return g, edges
}
