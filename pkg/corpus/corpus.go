// Package corpus holds a small, built-in set of example OSM ways used by the
// CLI's demo subcommand and the HTTP server's nearest-lanes endpoint. Every
// fixture is run through the lane engine at load time so a malformed fixture
// fails fast instead of surfacing as a runtime 500.
package corpus

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/tidwall/rtree"

	"laneinfer/pkg/geo"
	"laneinfer/pkg/lanes"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/osmtags"
	"laneinfer/pkg/tags"
)

// Way is a thin record describing one fixture: an OSM way ID, its location,
// and its tags. It exists only for the demo corpus; the core engine never
// sees an ID or a coordinate.
type Way struct {
	ID       osm.WayID
	Location orb.Point // [lon, lat]
	Tags     tags.Tags
}

// Corpus is an in-memory, R-tree-indexed set of fixture ways.
type Corpus struct {
	ways  []Way
	index rtree.RTree
}

type fixture struct {
	id   int64
	lon  float64
	lat  float64
	tags map[string]string
}

// fixtures spans the mode passes: a plain two-way residential street, a
// oneway primary with a bus lane, a protected bike lane with a kerb buffer,
// a residential street with parking on both sides, and a footway.
var fixtures = []fixture{
	{
		id: 1001, lon: -122.4194, lat: 37.7749,
		tags: map[string]string{"highway": "residential"},
	},
	{
		id: 1002, lon: -122.4180, lat: 37.7755,
		tags: map[string]string{
			"highway": "primary",
			"oneway":  "yes",
			"lanes":   "3",
			"busway":  "lane",
		},
	},
	{
		id: 1003, lon: -122.4170, lat: 37.7760,
		tags: map[string]string{
			"highway":                        "secondary",
			"cycleway:right":                 "lane",
			"cycleway:right:separation:left": "kerb",
		},
	},
	{
		id: 1004, lon: -122.4160, lat: 37.7740,
		tags: map[string]string{
			"highway":          "residential",
			"parking:lane:both": "parallel",
		},
	},
	{
		id: 1005, lon: -122.4200, lat: 37.7730,
		tags: map[string]string{"highway": "footway"},
	},
}

// New builds the corpus, validating every fixture through the lane engine
// with the given locale.
func New(loc locale.Locale) (*Corpus, error) {
	c := &Corpus{}
	for _, f := range fixtures {
		w := Way{
			ID:       osm.WayID(f.id),
			Location: orb.Point{f.lon, f.lat},
			Tags:     osmtags.FromOSM(mapToOSMTags(f.tags)),
		}
		if _, _, err := lanes.TagsToLanes(w.Tags, loc, lanes.Config{}); err != nil {
			return nil, fmt.Errorf("corpus fixture %d: %w", f.id, err)
		}

		idx := len(c.ways)
		c.ways = append(c.ways, w)
		pt := [2]float64{w.Location[0], w.Location[1]}
		c.index.Insert(pt, pt, idx)
	}
	return c, nil
}

func mapToOSMTags(m map[string]string) osm.Tags {
	out := make(osm.Tags, 0, len(m))
	for k, v := range m {
		out = append(out, osm.Tag{Key: k, Value: v})
	}
	return out
}

// Len returns the number of ways in the corpus.
func (c *Corpus) Len() int {
	return len(c.ways)
}

// Nearest returns the fixture way closest to (lat, lon) by great-circle
// distance. The corpus is small enough that a full index scan followed by an
// exact Haversine comparison is simpler than maintaining expanding search
// rings, while still exercising the R-tree for its intended purpose: a
// candidate set bounded by the index rather than a bare Go slice.
func (c *Corpus) Nearest(lat, lon float64) (Way, bool) {
	if len(c.ways) == 0 {
		return Way{}, false
	}

	bestIdx := -1
	bestDist := math.Inf(1)
	world := [2]float64{-180, -90}
	worldMax := [2]float64{180, 90}

	c.index.Search(world, worldMax, func(_, _ [2]float64, value interface{}) bool {
		idx := value.(int)
		w := c.ways[idx]
		d := geo.Haversine(lat, lon, w.Location[1], w.Location[0])
		if d < bestDist {
			bestDist = d
			bestIdx = idx
		}
		return true
	})

	if bestIdx < 0 {
		return Way{}, false
	}
	return c.ways[bestIdx], true
}
