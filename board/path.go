package board

import "github.com/osuushi/visigraph/geom"

// Per-node search record: the best known predecessor and cumulative cost,
// and whether that best has been finalized (a Dijkstra extraction fixed it
// for good).
type pathRecord struct {
	prev  geom.Point
	cost  float64
	final bool
}

// ShortestPath finds the shortest obstacle-avoiding path from start to goal
// over the visibility graph of the board's nodes. Neither endpoint needs to
// be a board node. The result lists the waypoints in travel order, ending at
// goal and excluding start; start == goal gives [start] alone, and a direct
// line of sight gives [goal]. A nil result means the goal is unreachable.
//
// The search is a label-correcting Dijkstra restricted, each round, to the
// nodes visible from the current frontier (plus the goal). Ties between
// equal-cost candidates resolve to the earliest node in sorted (X, then Y)
// order, so the result is deterministic for a fixed board.
func (b *Board) ShortestPath(start, goal geom.Point) []geom.Point {
	b.PrecalculateVisibility()

	// Handle special/common cases
	if start == goal {
		return []geom.Point{start}
	}
	if b.IsVisible(start, goal) {
		return []geom.Point{goal}
	}

	candidates := append(append([]geom.Point(nil), b.sortedNodes...), goal)
	records := make(map[geom.Point]*pathRecord, len(candidates))

	frontier := start
	frontierCost := 0.0
	for {
		visible := b.VisibleSet(frontier, goal)

		// Relax every unfinalized candidate visible from the frontier, and
		// pick the cheapest of them to finalize for the next round.
		var best *pathRecord
		var bestNode geom.Point
		for _, node := range candidates {
			rec := records[node]
			if rec != nil && rec.final {
				continue
			}
			if !visible.Has(node) {
				continue
			}
			cost := frontierCost + frontier.Dist(node)
			if rec == nil {
				rec = &pathRecord{prev: frontier, cost: cost}
				records[node] = rec
			} else if cost < rec.cost {
				rec.prev = frontier
				rec.cost = cost
			}
			if best == nil || rec.cost < best.cost {
				best = rec
				bestNode = node
			}
		}
		if best == nil {
			// Nothing else we can do
			return nil
		}

		best.final = true
		if bestNode == goal {
			break
		}
		frontier = bestNode
		frontierCost = best.cost
	}

	// Walk the predecessor links back from the goal. start terminates the
	// walk and is not part of the result.
	var path []geom.Point
	for node := goal; node != start; node = records[node].prev {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
