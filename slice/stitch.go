package slice

import (
	"math"

	"github.com/arl/goslicer"
)

// chain is a partially or fully stitched sequence of segment endpoints.
// closed reports whether the last point connects back to the first.
type chain struct {
	points []slicer.Point2
	closed bool
}

// stitchResult carries every closed ring the three-phase stitcher
// produced (chains left open are not kept), the number of chains still
// open after Phase B and the number of those Phase C closed, feeding the
// slicer's gaps_found/gaps_closed statistics, and the count of chains it
// ultimately discarded (failed to close and could not be gap-bridged).
type stitchResult struct {
	rings      [][]slicer.Point2
	gapsFound  int
	gapsClosed int
	discarded  int
}

// stitch runs the three-phase chainer over a plane's deduplicated segment
// soup: Phase A exact endpoint join, Phase B tolerant join within
// slicer.EndpointTolerance, Phase C gap closing within cfg's spatial and
// angular limits. It returns one polyline per closed ring.
func stitch(segs []segment, cfg slicer.GapClosingConfig) stitchResult {
	chains := phaseA(segs)
	chains = phaseB(chains)

	var result stitchResult
	var open []*chain
	for _, c := range chains {
		if c.closed {
			result.rings = append(result.rings, c.points)
		} else {
			open = append(open, c)
		}
	}

	closedFromGaps, discarded := phaseC(open, cfg)
	result.gapsFound = len(open)
	result.gapsClosed = len(closedFromGaps)
	result.discarded = discarded
	for _, c := range closedFromGaps {
		result.rings = append(result.rings, c.points)
	}

	return result
}

// phaseA builds a hash map from endpoint to incident segment-ends and
// greedily walks unvisited segments, following the unique unused incident
// segment at each step. A chain closes when the walk returns to its start.
func phaseA(segs []segment) []*chain {
	type end struct {
		segIdx int
		isA    bool
	}
	incident := map[slicer.Point2][]end{}
	for i, s := range segs {
		incident[s.A] = append(incident[s.A], end{i, true})
		incident[s.B] = append(incident[s.B], end{i, false})
	}

	visited := make([]bool, len(segs))
	var chains []*chain

	otherEnd := func(i int, cameFromA bool) slicer.Point2 {
		if cameFromA {
			return segs[i].B
		}
		return segs[i].A
	}

	popUnvisited := func(p slicer.Point2, excludeSeg int) (int, bool, bool) {
		for _, e := range incident[p] {
			if e.segIdx == excludeSeg || visited[e.segIdx] {
				continue
			}
			return e.segIdx, e.isA, true
		}
		return 0, false, false
	}

	for start := range segs {
		if visited[start] {
			continue
		}
		visited[start] = true
		c := &chain{points: []slicer.Point2{segs[start].A, segs[start].B}}
		cur := segs[start].B
		lastSeg := start

		for {
			nextIdx, isA, ok := popUnvisited(cur, lastSeg)
			if !ok {
				break
			}
			visited[nextIdx] = true
			to := otherEnd(nextIdx, isA)
			c.points = append(c.points, to)
			cur = to
			lastSeg = nextIdx
			if cur == c.points[0] {
				c.closed = true
				c.points = c.points[:len(c.points)-1]
				break
			}
		}
		chains = append(chains, c)
	}

	return chains
}

// phaseB attempts to join any still-open chain's tail to a compatible
// endpoint (its own head, or another open chain's head or tail) within
// slicer.EndpointTolerance, taking the first match found rather than the
// nearest, and repeats until no further join is made. Phase A's
// exact-join walk is not re-run over the merged chains.
func phaseB(chains []*chain) []*chain {
	var open []*chain
	var closed []*chain
	for _, c := range chains {
		if c.closed {
			closed = append(closed, c)
		} else {
			open = append(open, c)
		}
	}

	merged := true
	for merged {
		merged = false
		for i := 0; i < len(open); i++ {
			ci := open[i]
			if len(ci.points) == 0 {
				continue
			}
			tail := ci.points[len(ci.points)-1]
			head := ci.points[0]

			if tail.DistanceTo(head) <= slicer.EndpointTolerance {
				ci.closed = true
				closed = append(closed, ci)
				open = append(open[:i], open[i+1:]...)
				merged = true
				break
			}

			for j := 0; j < len(open); j++ {
				if i == j {
					continue
				}
				cj := open[j]
				if len(cj.points) == 0 {
					continue
				}
				jHead := cj.points[0]
				jTail := cj.points[len(cj.points)-1]

				switch {
				case tail.DistanceTo(jHead) <= slicer.EndpointTolerance:
					ci.points = append(ci.points, cj.points...)
				case tail.DistanceTo(jTail) <= slicer.EndpointTolerance:
					ci.points = append(ci.points, reversed(cj.points)...)
				default:
					continue
				}
				open = append(open[:j], open[j+1:]...)
				merged = true
				break
			}
			if merged {
				break
			}
		}
	}

	return append(closed, open...)
}

func reversed(pts []slicer.Point2) []slicer.Point2 {
	out := make([]slicer.Point2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// phaseC attempts to bridge each remaining open chain's two ends within
// cfg's MaxGapMM and MaxAngleDeg limits. Chains
// that close are returned; chains that cannot be bridged within limits
// are discarded and counted.
func phaseC(open []*chain, cfg slicer.GapClosingConfig) (closedChains []*chain, discarded int) {
	if !cfg.Enable {
		return nil, len(open)
	}

	maxGap := cfg.MaxGapCoord()
	maxAngle := float64(cfg.MaxAngleDeg) * math.Pi / 180

	for _, c := range open {
		if len(c.points) < 2 {
			discarded++
			continue
		}
		head := c.points[0]
		tail := c.points[len(c.points)-1]
		gap := head.DistanceTo(tail)
		if gap > maxGap {
			discarded++
			continue
		}

		if !withinAngleLimit(c.points, maxAngle) {
			discarded++
			continue
		}

		c.closed = true
		closedChains = append(closedChains, c)
	}

	return closedChains, discarded
}

// withinAngleLimit reports whether bridging the chain's tail back to its
// head introduces an angular deflection, at both the head and the tail,
// no larger than maxAngle radians relative to the chain's approach
// direction there.
func withinAngleLimit(pts []slicer.Point2, maxAngle float64) bool {
	n := len(pts)
	if n < 3 {
		return true
	}
	deflection := func(prev, cur, next slicer.Point2) float64 {
		v1x, v1y := float64(int64(cur.X)-int64(prev.X)), float64(int64(cur.Y)-int64(prev.Y))
		v2x, v2y := float64(int64(next.X)-int64(cur.X)), float64(int64(next.Y)-int64(cur.Y))
		l1 := math.Hypot(v1x, v1y)
		l2 := math.Hypot(v2x, v2y)
		if l1 == 0 || l2 == 0 {
			return 0
		}
		cosTheta := (v1x*v2x + v1y*v2y) / (l1 * l2)
		if cosTheta > 1 {
			cosTheta = 1
		}
		if cosTheta < -1 {
			cosTheta = -1
		}
		return math.Acos(cosTheta)
	}

	atHead := deflection(pts[n-1], pts[0], pts[1])
	atTail := deflection(pts[n-2], pts[n-1], pts[0])
	return atHead <= maxAngle && atTail <= maxAngle
}
