package designspace

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Location binds axis names to design-space coordinates.
type Location map[string]float64

// Clone returns a copy of l. The copy of a nil location is an empty location.
func (l Location) Clone() Location {
	c := make(Location, len(l))
	for k, v := range l {
		c[k] = v
	}
	return c
}

// Equal is true if l and other bind exactly the same axis names to exactly
// the same values. There is no tolerance for floating point values.
func (l Location) Equal(other Location) bool {
	if len(l) != len(other) {
		return false
	}
	for k, v := range l {
		w, ok := other[k]
		if !ok || w != v {
			return false
		}
	}
	return true
}

// Merge returns a new location with the bindings of l, overridden by the
// bindings of each of others in turn.
func (l Location) Merge(others ...Location) Location {
	m := l.Clone()
	for _, o := range others {
		for k, v := range o {
			m[k] = v
		}
	}
	return m
}

// Matches is true if every binding of sub is present in l with the same value.
func (l Location) Matches(sub Location) bool {
	for k, v := range sub {
		if w, ok := l[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// Without returns a copy of l with the bindings for names removed.
func (l Location) Without(names ...string) Location {
	c := l.Clone()
	for _, n := range names {
		delete(c, n)
	}
	return c
}

// Names returns the axis names bound by l, sorted.
func (l Location) Names() []string {
	names := make([]string, 0, len(l))
	for k := range l {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Label returns a multi-line text "axis: value", one line per binding,
// sorted by axis name.
func (l Location) Label() string {
	var b strings.Builder
	for i, k := range l.Names() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(formatCoordinate(l[k]))
	}
	return b.String()
}

func (l Location) String() string {
	parts := make([]string, 0, len(l))
	for _, k := range l.Names() {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatCoordinate(l[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Key returns a canonical string for l, usable as a map key.
func (l Location) Key() string {
	var b strings.Builder
	for _, k := range l.Names() {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(l[k], 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ContainsLocation is true if locs contains a location equal to l.
func ContainsLocation(locs []Location, l Location) bool {
	for _, x := range locs {
		if x.Equal(l) {
			return true
		}
	}
	return false
}
