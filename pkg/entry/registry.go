package entry

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/r3d91ll/clihelp/pkg/errors"
)

// node is one registered entry in the command forest.
type node struct {
	entry  Entry
	parent int // index of the parent node, -1 for roots and orphans
}

// tree is the resolved forest, rebuilt after every Add.
type tree struct {
	nodes    []node
	byPath   map[string][]int // command and alias paths to node indexes
	children map[string][]int // parent command path to child node indexes
}

// Registry holds the entries of a CLI and answers path lookups.
// Registry is not safe for concurrent use.
type Registry struct {
	entries []Entry
	cached  *tree
}

// NewRegistry creates a registry holding entries. It fails on the first
// invalid entry.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{}
	if err := r.Add(entries...); err != nil {
		return nil, err
	}
	return r, nil
}

// Add validates and registers entries. Command and alias paths are
// normalized. Nothing is registered if any entry is invalid.
func (r *Registry) Add(entries ...Entry) error {
	normalized := make([]Entry, 0, len(entries))
	for _, e := range entries {
		n, err := normalize(e)
		if err != nil {
			return err
		}
		normalized = append(normalized, n)
	}
	r.entries = append(r.entries, normalized...)
	r.cached = nil
	return nil
}

func normalize(e Entry) (Entry, error) {
	e.Command = NormalizePath(e.Command)
	aliases := make([]string, len(e.Aliases))
	for i, a := range e.Aliases {
		aliases[i] = NormalizePath(a)
		if aliases[i] == "" {
			return Entry{}, errors.EntryInvalid(e.Command, "alias must not be empty")
		}
	}
	e.Aliases = aliases
	for _, o := range e.Options {
		if len(o.Keys) == 0 {
			return Entry{}, errors.EntryInvalid(e.Command, "option without keys")
		}
		for _, k := range o.Keys {
			if strings.TrimSpace(k) == "" {
				return Entry{}, errors.EntryInvalid(e.Command, "option key must not be empty")
			}
		}
	}
	for _, a := range e.Args {
		if strings.TrimSpace(a.Name) == "" {
			return Entry{}, errors.EntryInvalid(e.Command, "argument name must not be empty")
		}
	}
	return e, nil
}

func (r *Registry) tree() *tree {
	if r.cached != nil {
		return r.cached
	}

	t := &tree{
		nodes:    make([]node, len(r.entries)),
		byPath:   make(map[string][]int),
		children: make(map[string][]int),
	}
	for i, e := range r.entries {
		t.nodes[i] = node{entry: e, parent: -1}
		for _, p := range e.Paths() {
			t.byPath[p] = append(t.byPath[p], i)
		}
	}
	for i, e := range r.entries {
		m := EvalMatch(e)
		if !m.HasParent {
			continue
		}
		t.children[m.Parent] = append(t.children[m.Parent], i)
		if parents := t.byPath[m.Parent]; len(parents) > 0 {
			t.nodes[i].parent = parents[0]
		}
	}
	for parent, kids := range t.children {
		sort.SliceStable(kids, func(a, b int) bool {
			return Less(t.nodes[kids[a]].entry, t.nodes[kids[b]].entry)
		})
		t.children[parent] = kids
	}

	r.cached = t
	return t
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup returns the entries registered under path, as a command or alias,
// in registration order.
func (r *Registry) Lookup(path string) []Entry {
	t := r.tree()
	idx := t.byPath[NormalizePath(path)]
	if len(idx) == 0 {
		return nil
	}
	result := make([]Entry, len(idx))
	for i, n := range idx {
		result[i] = t.nodes[n].entry
	}
	return result
}

// Children returns the direct children of e's command in specificity order.
func (r *Registry) Children(e Entry) []Entry {
	t := r.tree()
	var result []Entry
	for _, n := range t.children[NormalizePath(e.Command)] {
		result = append(result, t.nodes[n].entry)
	}
	return result
}

// Parent returns the registered entry one level above e.
func (r *Registry) Parent(e Entry) (Entry, bool) {
	t := r.tree()
	for _, n := range t.byPath[NormalizePath(e.Command)] {
		if p := t.nodes[n].parent; p >= 0 {
			return t.nodes[p].entry, true
		}
	}
	return Entry{}, false
}

// Paths returns every registered command and alias path, sorted.
func (r *Registry) Paths() []string {
	t := r.tree()
	paths := make([]string, 0, len(t.byPath))
	for p := range t.byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Entries returns all entries in specificity order.
func (r *Registry) Entries() []Entry {
	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	sort.SliceStable(result, func(i, j int) bool {
		return Less(result[i], result[j])
	})
	return result
}

// maxSuggestions caps the candidates returned by Suggest.
const maxSuggestions = 3

// Suggest returns registered paths close to path: those it prefixes, then
// those within a small edit distance, nearest first.
func (r *Registry) Suggest(path string) []string {
	path = NormalizePath(path)
	if path == "" {
		return nil
	}
	limit := len(path) / 3
	if limit < 2 {
		limit = 2
	}

	type candidate struct {
		path string
		dist int
	}
	var candidates []candidate
	for _, p := range r.Paths() {
		if p == "" || p == path {
			continue
		}
		if strings.HasPrefix(p, path) {
			candidates = append(candidates, candidate{p, 0})
			continue
		}
		if d := levenshtein.ComputeDistance(path, p); d <= limit {
			candidates = append(candidates, candidate{p, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	var result []string
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		result = append(result, candidates[i].path)
	}
	return result
}
