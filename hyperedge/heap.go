package hyperedge

import "github.com/katalvlaran/avoidroute/vgraph"

// sptfItem is one entry in the multi-source Dijkstra forest's frontier.
type sptfItem struct {
	id   vgraph.ID
	dist float64
}

// sptfQueue is a binary min-heap on dist, mirroring the lazy decrease-key
// strategy of the search package's own priorityQueue.
type sptfQueue []*sptfItem

func (q sptfQueue) Len() int            { return len(q) }
func (q sptfQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q sptfQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *sptfQueue) Push(x interface{}) { *q = append(*q, x.(*sptfItem)) }
func (q *sptfQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// BridgeCandidate is an edge discovered, during the forest sweep, to
// connect two different terminal-rooted trees (spec §4.9 "record the
// bridging edge in a candidate heap").
type BridgeCandidate struct {
	U, V vgraph.ID
	Cost float64
}

// candidateQueue is a binary min-heap on Cost, used by extendedKruskal to
// process bridges cheapest-first.
type candidateQueue []BridgeCandidate

func (q candidateQueue) Len() int            { return len(q) }
func (q candidateQueue) Less(i, j int) bool  { return q[i].Cost < q[j].Cost }
func (q candidateQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *candidateQueue) Push(x interface{}) { *q = append(*q, x.(BridgeCandidate)) }
func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
