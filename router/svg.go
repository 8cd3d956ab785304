package router

import (
	"fmt"
	"io"

	"github.com/katalvlaran/avoidroute/geom"
)

// WriteSVG writes an <svg> debug dump of the router's current obstacles and
// connector display routes to w, labelled with stage (spec §6 "Persisted
// state (optional SVG debug dump)"), grounded on
// original_source/cola/libavoid/debug.h's toString()-style dumps.
func (r *Router) WriteSVG(w io.Writer, stage string) error {
	bounds, ok := r.svgBounds()
	if !ok {
		bounds = geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 100, Y: 100}}
	}
	pad := 20.0

	if _, err := fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		bounds.Min.X-pad, bounds.Min.Y-pad, bounds.Width()+2*pad, bounds.Height()+2*pad); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<!-- stage: %s -->\n", stage); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<g class=\"shapes\">\n"); err != nil {
		return err
	}
	for _, s := range r.registry.Shapes() {
		if err := writePolygon(w, s.Polygon(), "fill:#ddd;stroke:#333"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "</g>\n<g class=\"junctions\">\n"); err != nil {
		return err
	}
	for _, j := range r.registry.Junctions() {
		if _, err := fmt.Fprintf(w, "<circle cx=\"%g\" cy=\"%g\" r=\"3\" style=\"fill:#06c\"/>\n", j.Position.X, j.Position.Y); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "</g>\n<g class=\"routes\">\n"); err != nil {
		return err
	}
	for _, id := range r.order {
		c := r.connectors[id]
		if c == nil || len(c.display.Points) < 2 {
			continue
		}
		if err := writePolyline(w, c.display.Points, "fill:none;stroke:#c30"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "</g>\n</svg>\n"); err != nil {
		return err
	}
	return nil
}

func (r *Router) svgBounds() (geom.Rect, bool) {
	have := false
	var b geom.Rect
	for _, s := range r.registry.Shapes() {
		if !have {
			b, have = s.Bounds(), true
			continue
		}
		b = b.Union(s.Bounds())
	}
	for _, id := range r.order {
		c := r.connectors[id]
		if c == nil {
			continue
		}
		for _, p := range c.display.Points {
			pb := geom.Rect{Min: p, Max: p}
			if !have {
				b, have = pb, true
				continue
			}
			b = b.Union(pb)
		}
	}
	return b, have
}

func writePolygon(w io.Writer, poly geom.Polygon, style string) error {
	if len(poly.Points) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "<polygon points=\""); err != nil {
		return err
	}
	for i, p := range poly.Points {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%g,%g", sep, p.X, p.Y); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\" style=\"%s\"/>\n", style)
	return err
}

func writePolyline(w io.Writer, pts []geom.Point, style string) error {
	if _, err := fmt.Fprintf(w, "<polyline points=\""); err != nil {
		return err
	}
	for i, p := range pts {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%g,%g", sep, p.X, p.Y); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\" style=\"%s\"/>\n", style)
	return err
}
