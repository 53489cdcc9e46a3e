package main

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// completer completes commands, setting keys and glyph names for readline.
type completer struct {
	commands *trie.Trie
	keys     *trie.Trie
	glyphs   *trie.Trie
}

func newCompleter(keys []string) *completer {
	c := &completer{
		commands: trie.New(),
		keys:     trie.New(),
		glyphs:   trie.New(),
	}
	for name := range commandNames {
		c.commands.Add(name, nil)
	}
	for _, k := range keys {
		c.keys.Add(k, nil)
	}
	return c
}

func (c *completer) setGlyphs(names []string) {
	c.glyphs = trie.New()
	for _, n := range names {
		c.glyphs.Add(n, nil)
	}
}

// candidates returns the sorted completions for prefix.
func candidates(t *trie.Trie, prefix string) []string {
	found := t.PrefixSearch(prefix)
	sort.Strings(found)
	return found
}

// Do implements readline.AutoCompleter. It completes the word left of pos:
// the first word is a command, the word after 'set' a setting key. Other
// words complete to glyph names, where a leading slash is kept.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	head := string(line[:pos])
	words := strings.Fields(head)
	word := ""
	if len(words) > 0 && !strings.HasSuffix(head, " ") {
		word = words[len(words)-1]
		words = words[:len(words)-1]
	}
	var found []string
	prefix := word
	switch {
	case len(words) == 0:
		found = candidates(c.commands, word)
	case len(words) == 1 && words[0] == "set":
		found = candidates(c.keys, word)
	default:
		if i := strings.LastIndex(word, "/"); i >= 0 {
			prefix = word[i+1:]
		}
		found = candidates(c.glyphs, prefix)
	}
	completions := make([][]rune, len(found))
	for i, f := range found {
		completions[i] = []rune(f[len(prefix):] + " ")
	}
	return completions, len([]rune(prefix))
}
