package search

import "errors"

// ErrNoPath indicates the search exhausted every reachable state without
// reaching the target (spec §4.6, §7).
var ErrNoPath = errors.New("search: no path found")

// ErrEmptySource / ErrEmptyTarget mirror lvlath/dijkstra's validation style.
var (
	ErrEmptySource = errors.New("search: empty source vertex")
	ErrEmptyTarget = errors.New("search: empty target vertex")
)
