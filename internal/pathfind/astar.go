// Package pathfind finds shortest unit paths across the hex grid.
package pathfind

import (
	"github.com/zyedidia/generic/heap"

	"github.com/samdwyer/hexband/internal/hex"
)

// Graph describes the cells a path may use.
type Graph interface {
	// Contains reports whether c is part of the map.
	Contains(c hex.Cell) bool
	// Blocked reports whether a unit stands on c.
	Blocked(c hex.Cell) bool
}

type node struct {
	cell     hex.Cell
	priority int
	seq      int // insertion order, breaks priority ties first-in first-out
}

// FindPath returns the shortest path from start to target as
// [start, ..., target], or nil when the target is blocked, off the map or
// unreachable. A unit standing on target blocks it even when target is start. Every step has cost 1. Equal-priority cells are expanded in
// insertion order and neighbours in direction order, so the result is
// deterministic.
func FindPath(start, target hex.Cell, g Graph) []hex.Cell {
	if !g.Contains(target) || g.Blocked(target) {
		return nil
	}
	if start == target {
		return []hex.Cell{start}
	}

	frontier := heap.New(func(a, b node) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})
	seq := 0
	frontier.Push(node{cell: start, seq: seq})

	cameFrom := map[hex.Cell]hex.Cell{}
	costSoFar := map[hex.Cell]int{start: 0}

	for frontier.Size() > 0 {
		current, _ := frontier.Pop()
		if current.cell == target {
			return reconstruct(cameFrom, start, target)
		}

		for _, next := range current.cell.Neighbours() {
			if !g.Contains(next) || g.Blocked(next) {
				continue
			}
			cost := costSoFar[current.cell] + 1
			if prev, seen := costSoFar[next]; seen && cost >= prev {
				continue
			}
			costSoFar[next] = cost
			cameFrom[next] = current.cell
			seq++
			frontier.Push(node{
				cell:     next,
				priority: cost + hex.Distance(next, target),
				seq:      seq,
			})
		}
	}

	return nil
}

func reconstruct(cameFrom map[hex.Cell]hex.Cell, start, target hex.Cell) []hex.Cell {
	path := []hex.Cell{target}
	for c := target; c != start; {
		c = cameFrom[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Steps returns the number of moves a path takes, one less than its length.
func Steps(path []hex.Cell) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
