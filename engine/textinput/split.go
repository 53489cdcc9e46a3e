package textinput

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

// Placeholder stands for the current glyph.
const Placeholder = "/?"

var setupGraphemes sync.Once

// Split converts text to a sequence of glyph names. Characters are looked up
// in cmap by the first code point of their grapheme cluster; characters
// without an entry are kept as they are and will usually fail to resolve
// later on. Invalid UTF-8 is replaced by U+FFFD, one replacement per run
// of bad bytes.
func Split(text string, cmap map[rune]string) []string {
	if text == "" {
		return []string{}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	text = norm.NFC.String(strings.ToValidUTF8(text, "\uFFFD"))
	gstr := grapheme.StringFromString(text)
	n := gstr.Len()
	if n == 0 {
		return []string{}
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		g := gstr.Nth(i)
		if g != "/" {
			names = append(names, character(g, cmap))
			continue
		}
		if i+1 < n && gstr.Nth(i+1) == "/" {
			names = append(names, character("/", cmap))
			i++
			continue
		}
		if i+1 < n && gstr.Nth(i+1) == "?" {
			names = append(names, Placeholder)
			i++
			if i+1 < n && isSpace(gstr.Nth(i+1)) {
				i++
			}
			continue
		}
		var b strings.Builder
		j := i + 1
		for ; j < n; j++ {
			c := gstr.Nth(j)
			if c == "/" {
				break
			}
			if isSpace(c) {
				j++
				break
			}
			b.WriteString(c)
		}
		i = j - 1
		if name := b.String(); name != "" {
			names = append(names, name)
		}
	}
	tracer().Debugf("split %q into %d glyph names", text, len(names))
	return names
}

func character(g string, cmap map[rune]string) string {
	r := []rune(g)[0]
	if name, ok := cmap[r]; ok {
		return name
	}
	return g
}

func isSpace(g string) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
