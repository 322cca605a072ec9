package jsonval

import "strings"

// DropSet is a set of object keys to omit during stripping. Matching is
// case-insensitive; the set is built once per invocation and read-only
// afterwards.
type DropSet map[string]struct{}

// NewDropSet builds a DropSet from keys, folding them to lower case.
func NewDropSet(keys ...string) DropSet {
	set := make(DropSet, len(keys))
	for _, k := range keys {
		set[strings.ToLower(k)] = struct{}{}
	}
	return set
}

// Has reports whether key is in the set, ignoring case.
func (s DropSet) Has(key string) bool {
	_, ok := s[strings.ToLower(key)]
	return ok
}

// Keys returns the folded keys in the set, in no particular order.
func (s DropSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Strip returns a copy of v with every object member whose key is in
// drop removed, at any nesting depth. Arrays keep their length and
// order; scalars pass through unchanged. The input is never mutated.
func Strip(v Value, drop DropSet) Value {
	switch val := v.(type) {
	case *Object:
		out := &Object{Members: make([]Member, 0, len(val.Members))}
		for _, m := range val.Members {
			if drop.Has(m.Key) {
				continue
			}
			out.Members = append(out.Members, Member{Key: m.Key, Value: Strip(m.Value, drop)})
		}
		return out
	case Array:
		out := make(Array, len(val))
		for i, elem := range val {
			out[i] = Strip(elem, drop)
		}
		return out
	default:
		return v
	}
}
