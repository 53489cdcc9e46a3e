package textinput

import (
	"testing"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var cmap = map[rune]string{
	'H': "H", 'a': "a", 'b': "b", '/': "slash", ' ': "space", 'é': "eacute",
}

func TestSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.textinput")
	defer teardown()
	//
	for _, tc := range []struct {
		text  string
		names []string
	}{
		{"", []string{}},
		{"Hab", []string{"H", "a", "b"}},
		{"a b", []string{"a", "space", "b"}},
		{"Ha/b.alt /?//", []string{"H", "a", "b.alt", "/?", "slash"}},
		{"/a/b", []string{"a", "b"}},
		{"/a  b", []string{"a", "space", "b"}},
		{"é", []string{"eacute"}},
		{"xy", []string{"x", "y"}},
		{"a/", []string{"a"}},
		{"/?H", []string{"/?", "H"}},
		{"/? a", []string{"/?", "a"}},
		{"\xff", []string{"\uFFFD"}},
		{"H\xffa", []string{"H", "\uFFFD", "a"}},
		{"H\xff\xfea", []string{"H", "\uFFFD", "a"}},
	} {
		assert.Equal(t, tc.names, Split(tc.text, cmap), "text %q", tc.text)
	}
}

func TestSplitSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.textinput")
	defer teardown()
	//
	s, ok := SplitSuffix("a.sc")
	assert.True(t, ok)
	assert.Equal(t, "sc", s)
	s, ok = SplitSuffix("f_i.liga.alt")
	assert.True(t, ok)
	assert.Equal(t, "liga.alt", s)
	for _, name := range []string{"a", ".notdef", "a.", "a. "} {
		_, ok = SplitSuffix(name)
		assert.False(t, ok, name)
	}
	assert.Equal(t, []string{"alt", "sc"}, Suffixes([]string{"a", "a.sc", "b.alt", "b.sc", ".notdef"}))
}

func TestProcess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.textinput")
	defer teardown()
	//
	font := hashset.New("a", "b", "a.sc", "b.alt", "c")
	names := []string{"a", Placeholder, "b"}
	assert.Equal(t, []string{"a", "c", "b"}, Process(names, "c", SuffixNone, font))
	assert.Equal(t, []string{"a", "b"}, Process(names, "", SuffixNone, font))
	assert.Equal(t, []string{"a.sc", "b.sc", "b"}, Process(names, "b.sc", SuffixAuto, font))
	assert.Equal(t, []string{"a", "b.alt", "b.alt"}, Process(names, "b", "alt", font))
	assert.Equal(t, []string{"a", "c", "b"}, Process(names, "c", SuffixAuto, font), "current glyph without suffix")
}
