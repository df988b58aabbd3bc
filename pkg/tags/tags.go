// Package tags implements the read-only hierarchical key/value store that
// carries OSM way tags through the lane inference pipeline.
package tags

import "strings"

// Key is a colon-separated tag key path, e.g. "cycleway:left:separation:right".
// Keys are plain strings; composition is plain concatenation so callers
// control whether a separator is needed.
type Key string

// Append concatenates suffix onto k, e.g. Key("cycleway").Append(":left").
func (k Key) Append(suffix string) Key {
	return Key(string(k) + suffix)
}

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

// Tags is an immutable snapshot of a way's tags.
type Tags struct {
	m map[string]string
}

// New builds a Tags store from a plain string map. The map is copied so the
// caller's map can be mutated afterwards without affecting the store.
func New(m map[string]string) Tags {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Tags{m: cp}
}

// Get returns the value for key, if present.
func (t Tags) Get(key Key) (string, bool) {
	v, ok := t.m[string(key)]
	return v, ok
}

// Is reports whether key is present and equal to value.
func (t Tags) Is(key Key, value string) bool {
	v, ok := t.m[string(key)]
	return ok && v == value
}

// IsAny reports whether key is present and its value is one of values.
func (t Tags) IsAny(key Key, values ...string) bool {
	v, ok := t.m[string(key)]
	if !ok {
		return false
	}
	for _, want := range values {
		if v == want {
			return true
		}
	}
	return false
}

// Has reports whether key is present at all, regardless of value.
func (t Tags) Has(key Key) bool {
	_, ok := t.m[string(key)]
	return ok
}

// Len returns the number of tags in the store.
func (t Tags) Len() int {
	return len(t.m)
}

// Subset returns a filtered view containing only the listed keys that are
// actually present. Used to attach minimal context to warnings and errors.
func (t Tags) Subset(keys ...Key) Tags {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := t.m[string(k)]; ok {
			out[string(k)] = v
		}
	}
	return Tags{m: out}
}

// SubsetPrefix returns a filtered view containing every key equal to prefix
// or nested under it (prefix + ":" + ...).
func (t Tags) SubsetPrefix(prefix Key) Tags {
	p := string(prefix)
	out := make(map[string]string)
	for k, v := range t.m {
		if k == p || strings.HasPrefix(k, p+":") {
			out[k] = v
		}
	}
	return Tags{m: out}
}

// Keys returns the set of keys present, in no particular order.
func (t Tags) Keys() []string {
	out := make([]string, 0, len(t.m))
	for k := range t.m {
		out = append(out, k)
	}
	return out
}

// Map returns a defensive copy of the underlying key/value map, for callers
// that need to range over everything (e.g. diagnostic rendering).
func (t Tags) Map() map[string]string {
	cp := make(map[string]string, len(t.m))
	for k, v := range t.m {
		cp[k] = v
	}
	return cp
}

// Tree returns a Tree view rooted at the store, for prefix-existence queries.
func (t Tags) Tree() Tree {
	return Tree{tags: t}
}

// Tree supports "does any key under this prefix exist" queries, used to pick
// which mutually-exclusive tagging scheme is in effect (e.g. busway vs.
// bus:lanes vs. lanes:bus).
type Tree struct {
	tags Tags
}

// Get returns the Subtree rooted at prefix and whether any key exists there
// (either exactly equal to prefix, or nested under it).
func (tr Tree) Get(prefix Key) (Subtree, bool) {
	p := string(prefix)
	any := false
	if _, ok := tr.tags.m[p]; ok {
		any = true
	}
	if !any {
		for k := range tr.tags.m {
			if strings.HasPrefix(k, p+":") {
				any = true
				break
			}
		}
	}
	return Subtree{tags: tr.tags, prefix: prefix}, any
}

// Subtree is a prefix-scoped view over a Tags store.
type Subtree struct {
	tags   Tags
	prefix Key
}

// Get returns the value at prefix + suffix (suffix must include its own
// leading ":" if one is needed), e.g. sub.Get(":left").
func (s Subtree) Get(suffix string) (string, bool) {
	return s.tags.Get(s.prefix.Append(suffix))
}

// Root returns the value at the subtree's own prefix key, with no suffix.
func (s Subtree) Root() (string, bool) {
	return s.tags.Get(s.prefix)
}
