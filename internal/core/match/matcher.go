// Package match groups nodes across source graphs that likely denote the
// same entity, and scans property names for forward/backward pairs that look
// like mutual inverses.
package match

import (
	"strings"

	"github.com/agenthands/ontomerge/internal/core/model"
)

// inversePatterns are the forward/backward naming tokens an object property
// pair must exhibit to be proposed as inverses.
var inversePatterns = [][2]string{
	{"has", "isOf"},
	{"detects", "detectedBy"},
	{"observes", "observedBy"},
	{"activates", "activatedBy"},
	{"responds", "respondsTo"},
	{"signals", "signaledBy"},
	{"indicates", "indicatedBy"},
	{"classifies", "classifiedBy"},
	{"analyzes", "analyzedBy"},
}

// Group is a set of nodes from possibly different source graphs that share a
// normalized name. Members keep first-seen order.
type Group struct {
	Key     string
	Members []model.Node
}

// InversePair is a candidate inverse relationship between two object
// properties, found by name pattern alone. It is directional: Property is the
// one whose name matched first, Inverse the property it points at.
type InversePair struct {
	Property model.Node
	Inverse  model.Node
}

type Matcher struct {
	Normalizer NameNormalizer
}

func NewMatcher(normalizer NameNormalizer) *Matcher {
	if normalizer == nil {
		normalizer = StopTokenNormalizer{}
	}
	return &Matcher{Normalizer: normalizer}
}

// DisplayName resolves the human-facing name of a node: its label if it has
// one, otherwise the last path segment of its identity.
func DisplayName(g *model.Graph, n model.Node) string {
	if label, ok := g.Label(n); ok {
		return label.Value
	}
	return n.LocalName()
}

// FindDuplicateClasses groups classes across the sources by normalized name,
// keeping only groups with at least two members.
func (m *Matcher) FindDuplicateClasses(sources []*model.Graph) []Group {
	return m.groupByName(sources, func(g *model.Graph) []model.Node {
		return g.NodesOfKind(model.KindClass)
	})
}

// FindDuplicateProperties groups object and datatype properties across the
// sources by normalized name, keeping only groups with at least two members.
func (m *Matcher) FindDuplicateProperties(sources []*model.Graph) []Group {
	return m.groupByName(sources, func(g *model.Graph) []model.Node {
		props := g.NodesOfKind(model.KindObjectProperty)
		return append(props, g.NodesOfKind(model.KindDatatypeProperty)...)
	})
}

func (m *Matcher) groupByName(sources []*model.Graph, pick func(*model.Graph) []model.Node) []Group {
	byKey := make(map[string]*Group)
	var order []string
	for _, g := range sources {
		for _, n := range pick(g) {
			if n.Anon {
				continue
			}
			key := m.Normalizer.Normalize(DisplayName(g, n))
			if key == "" {
				continue
			}
			grp, ok := byKey[key]
			if !ok {
				grp = &Group{Key: key}
				byKey[key] = grp
				order = append(order, key)
			}
			if !containsNode(grp.Members, n) {
				grp.Members = append(grp.Members, n)
			}
		}
	}

	var out []Group
	for _, key := range order {
		if grp := byKey[key]; len(grp.Members) >= 2 {
			out = append(out, *grp)
		}
	}
	return out
}

// FindInverseCandidates scans object property names for the forward/backward
// token table. A later match for the same property replaces an earlier one,
// so each property proposes at most one inverse.
func (m *Matcher) FindInverseCandidates(sources []*model.Graph) []InversePair {
	type named struct {
		node model.Node
		name string
	}
	var props []named
	seen := make(map[model.Node]struct{})
	for _, g := range sources {
		for _, n := range g.NodesOfKind(model.KindObjectProperty) {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			props = append(props, named{node: n, name: strings.ToLower(DisplayName(g, n))})
		}
	}

	inverseOf := make(map[model.Node]model.Node)
	var order []model.Node
	record := func(prop, inv model.Node) {
		if prop == inv {
			return
		}
		if _, ok := inverseOf[prop]; !ok {
			order = append(order, prop)
		}
		inverseOf[prop] = inv
	}

	for _, p := range props {
		for _, pattern := range inversePatterns {
			forward := strings.ToLower(pattern[0])
			backward := strings.ToLower(pattern[1])
			switch {
			case strings.Contains(p.name, forward):
				want := strings.ReplaceAll(p.name, forward, backward)
				for _, q := range props {
					if q.node != p.node && strings.Contains(q.name, want) {
						record(p.node, q.node)
					}
				}
			case strings.Contains(p.name, backward):
				want := strings.ReplaceAll(p.name, backward, forward)
				for _, q := range props {
					if q.node != p.node && strings.Contains(q.name, want) {
						record(p.node, q.node)
					}
				}
			}
		}
	}

	out := make([]InversePair, 0, len(order))
	for _, prop := range order {
		out = append(out, InversePair{Property: prop, Inverse: inverseOf[prop]})
	}
	return out
}

func containsNode(nodes []model.Node, n model.Node) bool {
	for _, m := range nodes {
		if m == n {
			return true
		}
	}
	return false
}
