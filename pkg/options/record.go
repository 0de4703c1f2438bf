// Package options holds the Record type that every resolution stage reads and
// writes. A Record maps option names to canonical values: string, bool, or
// []string. Normalized records may also hold nil for explicit null selections.
package options

import "sort"

// Record is a partially or fully populated set of option values keyed by
// option name.
type Record map[string]any

// Has reports whether name is present, including keys holding nil.
func (r Record) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r[name]
	return ok
}

// String returns the value at name when it is a string.
func (r Record) String(name string) (string, bool) {
	v, ok := r[name].(string)
	return v, ok
}

// Keys returns the record keys sorted lexically.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy so callers can hand the result to later stages
// without sharing slices or nested maps with the source.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = deepCopy(v)
	}
	return out
}

// AddMissing copies every key of src that r does not hold yet and returns the
// names it added. Keys already present in r are never replaced.
func (r Record) AddMissing(src Record) []string {
	var added []string
	for _, k := range src.Keys() {
		if _, exists := r[k]; exists {
			continue
		}
		r[k] = deepCopy(src[k])
		added = append(added, k)
	}
	return added
}

// Overlay writes every key of src into r, replacing existing values, and
// returns the names that were already present before the write.
func (r Record) Overlay(src Record) []string {
	var replaced []string
	for _, k := range src.Keys() {
		if _, exists := r[k]; exists {
			replaced = append(replaced, k)
		}
		r[k] = deepCopy(src[k])
	}
	return replaced
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case []string:
		if typed == nil {
			return []string(nil)
		}
		return append([]string{}, typed...)
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v)
		}
		return clone
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = deepCopy(v)
		}
		return clone
	case Record:
		return typed.Clone()
	default:
		return typed
	}
}
