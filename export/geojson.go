// Package export converts terrains and flight paths to GeoJSON.
//
// Grid cell (x,y) maps to the planar point [x, y]; no projection is
// applied. The feature collection holds:
//
//   - "start" and "goal" Points (when set);
//   - one "obstacles" MultiPoint (when any exist);
//   - one LineString per run that found a path, with the run's metrics as
//     properties.
package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/skyroute/report"
	"github.com/katalvlaran/skyroute/terrain"
)

// Feature "kind" property values.
const (
	KindStart     = "start"
	KindGoal      = "goal"
	KindObstacles = "obstacles"
	KindPath      = "path"
)

// Point converts a cell to an orb.Point.
func Point(c terrain.Cell) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

// LineString converts a path to an orb.LineString.
func LineString(path []terrain.Cell) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = Point(c)
	}
	return ls
}

// FeatureCollection builds the GeoJSON view of m and the given runs.
func FeatureCollection(m *terrain.Map, runs ...report.Run) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if s, ok := m.Start(); ok {
		f := geojson.NewFeature(Point(s))
		f.Properties["kind"] = KindStart
		fc.Append(f)
	}
	if g, ok := m.Goal(); ok {
		f := geojson.NewFeature(Point(g))
		f.Properties["kind"] = KindGoal
		fc.Append(f)
	}

	var blocked orb.MultiPoint
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsObstacle(x, y) {
				blocked = append(blocked, orb.Point{float64(x), float64(y)})
			}
		}
	}
	if len(blocked) > 0 {
		f := geojson.NewFeature(blocked)
		f.Properties["kind"] = KindObstacles
		fc.Append(f)
	}

	for _, r := range runs {
		if !r.Result.Found() {
			continue
		}
		f := geojson.NewFeature(LineString(r.Result.Path))
		f.Properties["kind"] = KindPath
		f.Properties["strategy"] = r.Name
		f.Properties["steps"] = r.Result.Steps()
		f.Properties["visited"] = r.Result.Visited
		f.Properties["cost"] = r.Result.Cost
		f.Properties["elapsed_ms"] = r.Result.ElapsedMillis()
		fc.Append(f)
	}

	return fc
}

// Marshal encodes FeatureCollection(m, runs...) as JSON.
func Marshal(m *terrain.Map, runs ...report.Run) ([]byte, error) {
	return FeatureCollection(m, runs...).MarshalJSON()
}
