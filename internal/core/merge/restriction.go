package merge

import "github.com/agenthands/ontomerge/internal/core/model"

// findRestrictionCandidates scans the merged graph for anonymous restriction
// nodes sitting in rdfs:subClassOf position. These are the restrictions an
// inverse-property declaration might have made redundant.
//
// Candidates are reported, never removed. There is no agreed rule yet for
// when a someValuesFrom restriction is actually implied by an inverse
// declaration, and dropping axioms on a guess would silently weaken the
// ontology. Callers wanting cleanup can act on the reported nodes.
func findRestrictionCandidates(merged *model.Graph) []model.Node {
	seen := make(map[model.Node]struct{})
	var out []model.Node
	for _, st := range merged.Statements() {
		if st.Predicate.ID != model.RDFSSubClassOf {
			continue
		}
		obj, ok := st.Object.(model.Node)
		if !ok || !obj.Anon {
			continue
		}
		if _, dup := seen[obj]; dup {
			continue
		}
		if !isRestriction(merged, obj) {
			continue
		}
		seen[obj] = struct{}{}
		out = append(out, obj)
	}
	return out
}

func isRestriction(g *model.Graph, n model.Node) bool {
	for _, term := range g.Objects(n, model.RDFType) {
		if obj, ok := term.(model.Node); ok && obj.ID == model.OWLRestriction {
			return true
		}
	}
	return false
}
