// Package merge consolidates several independently produced ontology graphs
// into one. Duplicate classes and properties are grouped by normalized name,
// one canonical survivor is chosen per group, every statement is rewritten
// onto the survivors, and property pairs whose names follow a
// forward/backward convention are recorded as inverses.
package merge

import (
	"log"

	"github.com/agenthands/ontomerge/internal/core/match"
	"github.com/agenthands/ontomerge/internal/core/model"
)

// Options control a single merge call.
type Options struct {
	// Strategy selects how the canonical node of a duplicate group is
	// chosen. The zero value is the richness score.
	Strategy Strategy

	// Preferences pins a canonical node identity per group key (the
	// normalized display name). A preference whose identity is not in the
	// group is ignored with a warning.
	Preferences map[string]string
}

// Result is the outcome of one merge call. The caller owns the graph; the
// engine retains nothing between calls.
type Result struct {
	Graph *model.Graph

	// Mapping sends every merged-away node to its canonical survivor.
	// Canonical nodes are absent, so applying it twice equals applying it
	// once.
	Mapping map[model.Node]model.Node

	// Inverses are the recorded inverse pairs after mapping, one direction
	// per pair.
	Inverses []match.InversePair

	// RestrictionCandidates are anonymous restriction nodes that may have
	// become redundant after inverse recording. They are reported, not
	// removed; see the restriction normalizer.
	RestrictionCandidates []model.Node

	Stats Statistics
}

// Engine runs the consolidation pipeline. It is stateless across calls:
// everything a merge accumulates lives in a per-call context.
type Engine struct {
	matcher *match.Matcher
}

func NewEngine(normalizer match.NameNormalizer) *Engine {
	return &Engine{matcher: match.NewMatcher(normalizer)}
}

// Merge consolidates the source graphs into a fresh merged graph. It never
// fails: an empty source list yields an empty graph, and every recoverable
// oddity is logged and worked around.
func (e *Engine) Merge(sources []*model.Graph, opts Options) *Result {
	classGroups := e.matcher.FindDuplicateClasses(sources)
	propGroups := e.matcher.FindDuplicateProperties(sources)
	candidates := e.matcher.FindInverseCandidates(sources)

	mapping := make(map[model.Node]model.Node)
	classMappings := buildMapping(classGroups, sources, opts, mapping)
	propertyMappings := buildMapping(propGroups, sources, opts, mapping)
	compressMapping(mapping)

	merged := model.NewGraph()
	for _, g := range sources {
		for _, p := range g.Prefixes() {
			merged.Bind(p.Name, p.Namespace)
		}
	}
	rewrite(sources, mapping, merged)

	inverses := recordInverses(merged, candidates, mapping)
	restrictions := findRestrictionCandidates(merged)

	stats := Collect(merged)
	stats.ClassMappings = classMappings
	stats.PropertyMappings = propertyMappings
	stats.RestrictionCandidates = len(restrictions)

	return &Result{
		Graph:                 merged,
		Mapping:               mapping,
		Inverses:              inverses,
		RestrictionCandidates: restrictions,
		Stats:                 stats,
	}
}

// buildMapping picks a canonical node per group and maps the rest onto it.
// Returns the number of nodes merged away.
func buildMapping(groups []match.Group, sources []*model.Graph, opts Options, mapping map[model.Node]model.Node) int {
	merged := 0
	for _, group := range groups {
		canonical := selectCanonical(group, sources, opts)
		for _, n := range group.Members {
			if n == canonical {
				continue
			}
			// A node whose display name differs across sources sits in
			// more than one group; the first group's verdict stands.
			if _, done := mapping[n]; done {
				continue
			}
			mapping[n] = canonical
			merged++
			log.Printf("Mapping %s -> %s (group %q)", n.ID, canonical.ID, group.Key)
		}
	}
	return merged
}

// compressMapping resolves chained targets. A node merged away in one group
// can still be chosen canonical in another, producing entries like
// Z -> X -> Y; every target is walked to its final survivor so that no
// canonical node remains a mapping key. Walks are bounded by a seen set, and
// an entry that resolves onto itself is dropped.
func compressMapping(mapping map[model.Node]model.Node) {
	for n, target := range mapping {
		seen := map[model.Node]struct{}{n: {}}
		for {
			next, ok := mapping[target]
			if !ok {
				break
			}
			if _, cycle := seen[target]; cycle {
				break
			}
			seen[target] = struct{}{}
			target = next
		}
		if target == n {
			delete(mapping, n)
			continue
		}
		mapping[n] = target
	}
}
