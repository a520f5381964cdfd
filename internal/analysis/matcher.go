package analysis

import (
	"strings"

	"github-skill-analyzer/internal/model"
)

// haystack builds the case-folded free text of a repository: topics,
// description and name separated by spaces.
func haystack(repo model.Repository) string {
	parts := []string{strings.Join(repo.Topics, " "), repo.Description, repo.Name}
	return strings.ToLower(strings.Join(parts, " "))
}

// containsAny reports whether any keyword is a substring of text. Partial
// words match on purpose ("node" matches "nodes").
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// detect returns the names of the lexicon entries present in text, in
// lexicon order.
func detect(text string, lexicon []keywordEntry) []string {
	var found []string
	for _, entry := range lexicon {
		if containsAny(text, entry.Aliases) {
			found = append(found, entry.Name)
		}
	}
	return found
}

// fuzzyContains is the symmetric, case-insensitive containment used for
// archetype components: either string may contain the other.
func fuzzyContains(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// orderedSet is an insertion-ordered set of strings.
type orderedSet struct {
	items []string
	index map[string]struct{}
}

func newOrderedSet(items ...string) *orderedSet {
	s := &orderedSet{index: make(map[string]struct{})}
	s.add(items...)
	return s
}

func (s *orderedSet) add(items ...string) {
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.items = append(s.items, item)
	}
}

func (s *orderedSet) has(item string) bool {
	_, ok := s.index[item]
	return ok
}

func (s *orderedSet) len() int { return len(s.items) }

// list returns the members in insertion order. It never returns nil.
func (s *orderedSet) list() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// dedupe removes repeated entries keeping first occurrences.
func dedupe(items []string) []string {
	return newOrderedSet(items...).list()
}
