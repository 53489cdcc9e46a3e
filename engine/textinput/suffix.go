package textinput

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Suffix modes.
const (
	SuffixNone = "_none_" // leave glyph names as they are
	SuffixAuto = "_auto_" // use the suffix of the current glyph
)

// Names is a set of glyph names, as implemented by gods' hashset.Set.
type Names interface {
	Contains(items ...interface{}) bool
}

// SplitSuffix returns the part of a glyph name after its first dot. Names
// without a dot, names starting with a dot and names with an empty suffix
// have no suffix.
func SplitSuffix(glyphName string) (string, bool) {
	if strings.HasPrefix(glyphName, ".") {
		return "", false
	}
	_, suffix, found := strings.Cut(glyphName, ".")
	if !found {
		return "", false
	}
	suffix = strings.TrimSpace(suffix)
	return suffix, suffix != ""
}

// Suffixes returns the distinct suffixes of glyphNames, sorted.
func Suffixes(glyphNames []string) []string {
	set := treeset.NewWithStringComparator()
	for _, name := range glyphNames {
		if suffix, ok := SplitSuffix(name); ok {
			set.Add(suffix)
		}
	}
	suffixes := make([]string, 0, set.Size())
	for _, s := range set.Values() {
		suffixes = append(suffixes, s.(string))
	}
	return suffixes
}

// Process resolves placeholders and suffixes in a sequence of glyph names.
//
// Placeholders are replaced by current; without a current glyph they are
// dropped. suffixMode is one of SuffixNone, SuffixAuto, or a suffix. A
// suffix is appended to a name if the font, represented by available,
// contains the suffixed name.
func Process(glyphNames []string, current string, suffixMode string, available Names) []string {
	suffix, apply := "", false
	switch suffixMode {
	case SuffixNone, "":
	case SuffixAuto:
		suffix, apply = SplitSuffix(current)
	default:
		suffix, apply = suffixMode, true
	}
	names := make([]string, 0, len(glyphNames))
	for _, name := range glyphNames {
		if name == Placeholder {
			if current == "" {
				continue
			}
			name = current
		}
		if apply && available != nil {
			if s := name + "." + suffix; available.Contains(s) {
				name = s
			}
		}
		names = append(names, name)
	}
	return names
}
