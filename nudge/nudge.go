package nudge

import (
	"sort"

	"github.com/katalvlaran/avoidroute/crossing"
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/solver"
)

// Weight constants for the solver Variables nudging constructs (spec
// §4.8.5): free segments may move almost freely, structural (s/z-bend)
// segments resist a little more since moving one arm shifts a whole
// corridor, and fixed segments are effectively pinned.
const (
	weightFree       = 1e-5
	weightStructural = 1e-3
	weightFixed      = 1e5
)

// Options configures a Nudge call.
type Options struct {
	NudgeDistance float64
	OrderX        *crossing.PartialOrder
	OrderY        *crossing.PartialOrder
	// NudgeTerminalSegments allows a route's terminal shift segments (the
	// ones touching its source or target endpoint) to move at all (spec
	// §4.8.1 "Terminal segments may be optionally nudged within a bounded
	// buffer"). When false, every terminal segment is anchored at its
	// current position, the same as a Fixed one, so a connector's actual
	// endpoint never drifts off its anchored position. When true, a
	// terminal segment may still only move within NudgeDistance of its
	// current position, not the full region limit.
	NudgeTerminalSegments bool
}

// segRef ties one NudgingShiftSegment back to the route and point indices
// it was built from, so the write-back step (step 7) knows where to write.
type segRef struct {
	routeIdx int
	seg      NudgingShiftSegment
}

// Nudge runs the two-pass, two-dimension nudging pipeline of spec §4.8
// over routes, using obstacles for limit computation, and returns routes
// with points shifted in place. Segments of Fixed routes take part in their
// region's solve as pinned segments; they are not used for limit
// computation and are never written back.
func Nudge(routes []Route, obstacles []Rect, opts Options) ([]Route, error) {
	out := make([]Route, len(routes))
	copy(out, routes)
	for i := range out {
		if len(out[i].Points) < 2 {
			return nil, ErrDegenerateRoute
		}
		pts := make([]geom.Point, len(out[i].Points))
		copy(pts, out[i].Points)
		out[i].Points = pts
	}

	for _, dim := range []Dimension{DimX, DimY} {
		order := opts.OrderX
		if dim == DimY {
			order = opts.OrderY
		}
		// Pass 1: pure centring (spec §4.8.8, the unifying preprocessing step).
		if err := nudgeDimension(out, obstacles, dim, nil, opts); err != nil {
			return nil, err
		}
		// Pass 2: ordered.
		if err := nudgeDimension(out, obstacles, dim, order, opts); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// nudgeDimension performs steps 1-7 of spec §4.8 for one dimension and one
// ordering pass, mutating routes' Points in place.
func nudgeDimension(routes []Route, obstacles []Rect, dim Dimension, order *crossing.PartialOrder, opts Options) error {
	var refs []*segRef
	for ri := range routes {
		for _, s := range BuildShiftSegments(routes[ri], dim) {
			refs = append(refs, &segRef{routeIdx: ri, seg: s})
		}
	}
	if len(refs) == 0 {
		return nil
	}

	flat := make([]NudgingShiftSegment, len(refs))
	for i, r := range refs {
		flat[i] = r.seg
	}
	ComputeLimits(flat, obstacles)
	for i := range refs {
		refs[i].seg.MinLimit = flat[i].MinLimit
		refs[i].seg.MaxLimit = flat[i].MaxLimit

		if !refs[i].seg.Terminal {
			continue
		}
		if !opts.NudgeTerminalSegments {
			// Anchor: a terminal segment shares its fixed coordinate with
			// the connector's actual source/target point, so unless the
			// caller opted in, it must never move (spec §4.8.1).
			refs[i].seg.Fixed = true
			continue
		}
		// Opted in: still only move within a bounded buffer around the
		// segment's current position, not the full region/obstacle limit.
		if lo := refs[i].seg.pos - opts.NudgeDistance; refs[i].seg.MinLimit < lo {
			refs[i].seg.MinLimit = lo
		}
		if hi := refs[i].seg.pos + opts.NudgeDistance; refs[i].seg.MaxLimit > hi {
			refs[i].seg.MaxLimit = hi
		}
	}

	for _, region := range groupRefRegions(refs) {
		orderRegion(region, routes, order)
		if err := solveRegion(region, opts.NudgeDistance); err != nil {
			return err
		}
	}

	for _, r := range refs {
		if r.seg.Fixed {
			continue
		}
		rt := &routes[r.routeIdx]
		setFixedCoord(&rt.Points[r.seg.Low], dim, r.seg.pos)
		setFixedCoord(&rt.Points[r.seg.High], dim, r.seg.pos)
	}
	return nil
}

// groupRefRegions is GroupRegions lifted to operate on *segRef, via the
// shared groupIndices primitive in region.go, so the caller's route/index
// association survives the partitioning.
func groupRefRegions(refs []*segRef) [][]*segRef {
	groups := groupIndices(len(refs),
		func(i int) float64 { return refs[i].seg.varLo },
		func(i int) float64 { return refs[i].seg.varHi })
	if groups == nil {
		return nil
	}
	out := make([][]*segRef, len(groups))
	for gi, idxs := range groups {
		g := make([]*segRef, len(idxs))
		for k, idx := range idxs {
			g[k] = refs[idx]
		}
		out[gi] = g
	}
	return out
}

// orderRegion sorts region in place: by explicit partial-order index when
// order is non-nil and a segment's low corner resolves to a PointRep
// position (spec §4.8.4's "explicit index from PtOrder.positionFor"),
// otherwise by current fixed coordinate. Segments absent from order are
// left where the stable sort's fallback comparator puts them — an
// insertion-sort-with-deferral that never invents a constraint between
// genuinely incomparable segments.
func orderRegion(region []*segRef, routes []Route, order *crossing.PartialOrder) {
	posFor := func(r *segRef) (int, bool) {
		if order == nil {
			return 0, false
		}
		pt := routes[r.routeIdx].Points[r.seg.Low]
		return order.PositionFor(crossing.PointRep{Pt: pt, RunID: r.routeIdx})
	}
	sort.SliceStable(region, func(i, j int) bool {
		pi, iok := posFor(region[i])
		pj, jok := posFor(region[j])
		if iok && jok {
			return pi < pj
		}
		return region[i].seg.pos < region[j].seg.pos
	})
}

// solveRegion builds Variables/Constraints for one region's segments
// (spec §4.8.5) and calls the separation solver, retrying with a halved
// separation on infeasibility (spec §4.8.6) and writing results back onto
// each segment's pos field.
func solveRegion(region []*segRef, nudgeDist float64) error {
	if len(region) == 0 {
		return nil
	}
	sep := nudgeDist
	if sep <= 0 {
		sep = 1
	}

	for {
		minLimit, maxLimit := unbounded, -unbounded
		for _, r := range region {
			if r.seg.MinLimit > -unbounded && r.seg.MinLimit < minLimit {
				minLimit = r.seg.MinLimit
			}
			if r.seg.MaxLimit < unbounded && r.seg.MaxLimit > maxLimit {
				maxLimit = r.seg.MaxLimit
			}
		}
		if minLimit >= unbounded {
			minLimit = region[0].seg.pos - sep*float64(len(region)+1)
		}
		if maxLimit <= -unbounded {
			maxLimit = region[len(region)-1].seg.pos + sep*float64(len(region)+1)
		}

		const anchorMin, anchorMax = -1, -2
		vars := make([]solver.Variable, 0, len(region)+2)
		vars = append(vars, solver.Variable{ID: anchorMin, DesiredPos: minLimit, Weight: weightFixed})
		vars = append(vars, solver.Variable{ID: anchorMax, DesiredPos: maxLimit, Weight: weightFixed})

		for i, r := range region {
			w := weightFree
			if r.seg.Fixed {
				w = weightFixed
			} else if r.seg.Bend == BendS {
				w = weightStructural
			}
			desired := r.seg.pos
			if r.seg.Bend == BendS && r.seg.MinLimit > -unbounded && r.seg.MaxLimit < unbounded {
				desired = (r.seg.MinLimit + r.seg.MaxLimit) / 2
			}
			vars = append(vars, solver.Variable{ID: i, DesiredPos: desired, Weight: w})
		}

		cons := make([]solver.Constraint, 0, len(region)+1)
		cons = append(cons, solver.Constraint{Left: anchorMin, Right: 0, Gap: 0})
		for i := 0; i < len(region)-1; i++ {
			cons = append(cons, solver.Constraint{Left: i, Right: i + 1, Gap: sep})
		}
		cons = append(cons, solver.Constraint{Left: len(region) - 1, Right: anchorMax, Gap: 0})

		pos, err := solver.Solve(vars, cons)
		if err != nil {
			return err
		}
		idx := make(map[int]int, len(vars))
		for i, v := range vars {
			idx[v.ID] = i
		}

		feasible := true
		for i, r := range region {
			if r.seg.Fixed && abs64(pos[idx[i]]-r.seg.pos) > 0.01 {
				feasible = false
				break
			}
		}
		if feasible || sep < 1e-4 {
			for i, r := range region {
				r.seg.pos = pos[idx[i]]
			}
			return nil
		}
		sep /= 2
	}
}

func setFixedCoord(pt *geom.Point, dim Dimension, v float64) {
	if dim == DimX {
		pt.X = v
	} else {
		pt.Y = v
	}
}

func abs64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
