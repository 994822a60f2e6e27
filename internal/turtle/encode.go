package turtle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agenthands/ontomerge/internal/core/model"
)

// Encode serializes a graph as Turtle, grouping statements by subject with
// rdf:type rendered as 'a' and bound prefixes applied. Statement order
// follows the graph's insertion order, so output is deterministic.
func Encode(g *model.Graph) (string, error) {
	prefixes := g.Prefixes()
	var sb strings.Builder
	for _, p := range prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p.Name, p.Namespace)
	}
	if len(prefixes) > 0 {
		sb.WriteString("\n")
	}

	type subjectBlock struct {
		subject model.Node
		// predicate -> objects, preserving first-seen predicate order
		order   []model.Node
		objects map[model.Node][]model.Term
	}
	blocks := make(map[model.Node]*subjectBlock)
	var blockOrder []model.Node

	for _, st := range g.Statements() {
		if st.Subject.ID == "" || st.Predicate.ID == "" {
			return "", fmt.Errorf("statement with empty term: %s", st)
		}
		b, ok := blocks[st.Subject]
		if !ok {
			b = &subjectBlock{subject: st.Subject, objects: make(map[model.Node][]model.Term)}
			blocks[st.Subject] = b
			blockOrder = append(blockOrder, st.Subject)
		}
		if _, seen := b.objects[st.Predicate]; !seen {
			b.order = append(b.order, st.Predicate)
		}
		b.objects[st.Predicate] = append(b.objects[st.Predicate], st.Object)
	}

	for _, subj := range blockOrder {
		b := blocks[subj]
		fmt.Fprintf(&sb, "%s", renderNode(subj, prefixes))
		for i, pred := range b.order {
			sep := " ;\n   "
			if i == 0 {
				sep = ""
			}
			objs := make([]string, 0, len(b.objects[pred]))
			for _, o := range b.objects[pred] {
				objs = append(objs, renderTerm(o, prefixes))
			}
			fmt.Fprintf(&sb, "%s %s %s", sep, renderPredicate(pred, prefixes), strings.Join(objs, " , "))
		}
		sb.WriteString(" .\n\n")
	}
	return sb.String(), nil
}

// EncodeFallback renders the graph one statement per line in expanded form.
// It cannot fail, which makes it the degraded output path when structured
// encoding does: every statement stands alone, so one bad statement cannot
// take the rest of the document with it.
func EncodeFallback(g *model.Graph) string {
	var lines []string
	for _, p := range g.Prefixes() {
		lines = append(lines, fmt.Sprintf("@prefix %s: <%s> .", p.Name, p.Namespace))
	}
	header := len(lines)

	stmts := make([]string, 0, g.Len())
	for _, st := range g.Statements() {
		stmts = append(stmts, st.String())
	}
	sort.Strings(stmts)

	if header > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, stmts...)
	return strings.Join(lines, "\n") + "\n"
}

func renderNode(n model.Node, prefixes []model.Prefix) string {
	if n.Anon {
		return "_:" + n.ID
	}
	if short, ok := shorten(n.ID, prefixes); ok {
		return short
	}
	return "<" + n.ID + ">"
}

func renderPredicate(n model.Node, prefixes []model.Prefix) string {
	if n.ID == model.RDFType {
		return "a"
	}
	return renderNode(n, prefixes)
}

func renderTerm(t model.Term, prefixes []model.Prefix) string {
	switch v := t.(type) {
	case model.Node:
		return renderNode(v, prefixes)
	case model.Literal:
		if v.Datatype != "" {
			if short, ok := shorten(v.Datatype, prefixes); ok {
				quoted := model.Literal{Value: v.Value}.String()
				return quoted + "^^" + short
			}
		}
		return v.String()
	default:
		return t.String()
	}
}

// shorten rewrites an IRI as prefix:local against the longest matching bound
// namespace, provided the remainder is a plain name.
func shorten(iri string, prefixes []model.Prefix) (string, bool) {
	best := -1
	bestLen := 0
	for i, p := range prefixes {
		if strings.HasPrefix(iri, p.Namespace) && len(p.Namespace) > bestLen {
			best, bestLen = i, len(p.Namespace)
		}
	}
	if best < 0 {
		return "", false
	}
	local := iri[bestLen:]
	for i := 0; i < len(local); i++ {
		if !isNameChar(local[i]) {
			return "", false
		}
	}
	if local == "" {
		return "", false
	}
	return prefixes[best].Name + ":" + local, true
}
