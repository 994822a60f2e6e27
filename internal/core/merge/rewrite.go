package merge

import "github.com/agenthands/ontomerge/internal/core/model"

// rewrite copies every statement from every source into the merged graph,
// substituting duplicate nodes with their canonical survivor in subject,
// predicate, and node-valued object positions. Literals pass through
// untouched and exact repeats collapse on the merged graph's set semantics.
func rewrite(sources []*model.Graph, mapping map[model.Node]model.Node, merged *model.Graph) {
	for _, g := range sources {
		for _, st := range g.Statements() {
			subject := apply(mapping, st.Subject)
			predicate := apply(mapping, st.Predicate)
			object := st.Object
			if n, ok := object.(model.Node); ok {
				object = apply(mapping, n)
			}
			merged.AddTriple(subject, predicate, object)
		}
	}
}

func apply(mapping map[model.Node]model.Node, n model.Node) model.Node {
	if canonical, ok := mapping[n]; ok {
		return canonical
	}
	return n
}
