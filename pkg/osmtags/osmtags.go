// Package osmtags adapts github.com/paulmach/osm tag types into this
// module's tags.Tags store, the way pkg/osm/parser.go reads osm.Tags via
// .Find for its own car-accessibility checks.
package osmtags

import (
	"github.com/paulmach/osm"

	"laneinfer/pkg/tags"
)

// FromOSM converts an osm.Tags slice into a tags.Tags store.
func FromOSM(t osm.Tags) tags.Tags {
	m := make(map[string]string, len(t))
	for _, kv := range t {
		m[kv.Key] = kv.Value
	}
	return tags.New(m)
}

// FromWay converts an *osm.Way's tags into a tags.Tags store.
func FromWay(w *osm.Way) tags.Tags {
	return FromOSM(w.Tags)
}
