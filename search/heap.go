package search

import "github.com/katalvlaran/avoidroute/vgraph"

// state augments a vertex with its entry direction (the vertex it was
// reached from), standing in for the dummy dimension-change vertex of spec
// §4.6 — see doc.go.
type state struct {
	cur, from vgraph.ID
}

type heapItem struct {
	st   state
	dist float64
}

// priorityQueue is a binary min-heap on dist, mirroring the lazy
// decrease-key strategy of lvlath/dijkstra: stale entries are pushed
// alongside fresh ones and skipped on pop rather than located and updated
// in place.
type priorityQueue []*heapItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*heapItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
