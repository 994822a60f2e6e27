package model

// Graph is an in-memory statement set with per-node kind metadata. Statements
// keep their insertion order so every pass over a graph is deterministic;
// inserting an existing statement is a no-op.
type Graph struct {
	statements []Statement
	index      map[Statement]struct{}
	kinds      map[Node]NodeKind
	kindOrder  []Node
	prefixes   map[string]string
	prefixOrd  []string
}

func NewGraph() *Graph {
	return &Graph{
		index:    make(map[Statement]struct{}),
		kinds:    make(map[Node]NodeKind),
		prefixes: make(map[string]string),
	}
}

// Bind associates a prefix with a namespace for serialization. Rebinding an
// existing prefix overwrites it.
func (g *Graph) Bind(prefix, namespace string) {
	if _, ok := g.prefixes[prefix]; !ok {
		g.prefixOrd = append(g.prefixOrd, prefix)
	}
	g.prefixes[prefix] = namespace
}

// Prefixes returns the bound prefixes in binding order.
func (g *Graph) Prefixes() []Prefix {
	out := make([]Prefix, 0, len(g.prefixOrd))
	for _, p := range g.prefixOrd {
		out = append(out, Prefix{Name: p, Namespace: g.prefixes[p]})
	}
	return out
}

type Prefix struct {
	Name      string
	Namespace string
}

// Add inserts a statement, returning false if it was already present. Type
// statements classify their subject as a side effect so the kind is recorded
// once at load time.
func (g *Graph) Add(st Statement) bool {
	if _, ok := g.index[st]; ok {
		return false
	}
	g.index[st] = struct{}{}
	g.statements = append(g.statements, st)
	g.observe(st.Subject)
	g.observe(st.Predicate)
	if n, ok := st.Object.(Node); ok {
		g.observe(n)
	}
	g.classify(st)
	return true
}

func (g *Graph) AddTriple(subject, predicate Node, object Term) bool {
	return g.Add(Statement{Subject: subject, Predicate: predicate, Object: object})
}

func (g *Graph) Has(st Statement) bool {
	_, ok := g.index[st]
	return ok
}

func (g *Graph) Len() int {
	return len(g.statements)
}

// Statements returns the statements in insertion order. The slice is shared;
// callers must not mutate it.
func (g *Graph) Statements() []Statement {
	return g.statements
}

func (g *Graph) observe(n Node) {
	if _, ok := g.kinds[n]; ok {
		return
	}
	kind := KindUnclassified
	if n.Anon {
		kind = KindAnonymous
	}
	g.kinds[n] = kind
	g.kindOrder = append(g.kindOrder, n)
}

func (g *Graph) classify(st Statement) {
	if st.Predicate.ID != RDFType {
		return
	}
	obj, ok := st.Object.(Node)
	if !ok {
		return
	}
	var kind NodeKind
	switch obj.ID {
	case OWLClass:
		kind = KindClass
	case OWLObjectProperty:
		kind = KindObjectProperty
	case OWLDatatypeProperty:
		kind = KindDatatypeProperty
	case OWLNamedIndividual:
		kind = KindIndividual
	default:
		return
	}
	if st.Subject.Anon {
		// Blank nodes stay anonymous regardless of declared types.
		return
	}
	g.kinds[st.Subject] = kind
}

// Kind reports the recorded kind of a node.
func (g *Graph) Kind(n Node) NodeKind {
	return g.kinds[n]
}

// NodesOfKind returns all nodes of the given kind in first-seen order.
func (g *Graph) NodesOfKind(kind NodeKind) []Node {
	var out []Node
	for _, n := range g.kindOrder {
		if g.kinds[n] == kind {
			out = append(out, n)
		}
	}
	return out
}

// Label returns the first rdfs:label literal attached to the node.
func (g *Graph) Label(n Node) (Literal, bool) {
	return g.annotation(n, RDFSLabel)
}

// Comment returns the first rdfs:comment literal attached to the node.
func (g *Graph) Comment(n Node) (Literal, bool) {
	return g.annotation(n, RDFSComment)
}

func (g *Graph) annotation(n Node, predicate string) (Literal, bool) {
	for _, st := range g.statements {
		if st.Subject == n && st.Predicate.ID == predicate {
			if lit, ok := st.Object.(Literal); ok {
				return lit, true
			}
		}
	}
	return Literal{}, false
}

// SubjectCount counts statements with the node in subject position.
func (g *Graph) SubjectCount(n Node) int {
	count := 0
	for _, st := range g.statements {
		if st.Subject == n {
			count++
		}
	}
	return count
}

// ObjectCount counts statements with the node in object position.
func (g *Graph) ObjectCount(n Node) int {
	count := 0
	for _, st := range g.statements {
		if obj, ok := st.Object.(Node); ok && obj == n {
			count++
		}
	}
	return count
}

// Objects returns every object term of statements matching subject and
// predicate IRI, in insertion order.
func (g *Graph) Objects(subject Node, predicate string) []Term {
	var out []Term
	for _, st := range g.statements {
		if st.Subject == subject && st.Predicate.ID == predicate {
			out = append(out, st.Object)
		}
	}
	return out
}

// SubjectsOfType returns the distinct subjects declared with rdf:type equal
// to the given IRI, in first-seen order.
func (g *Graph) SubjectsOfType(typeIRI string) []Node {
	seen := make(map[Node]struct{})
	var out []Node
	for _, st := range g.statements {
		if st.Predicate.ID != RDFType {
			continue
		}
		obj, ok := st.Object.(Node)
		if !ok || obj.ID != typeIRI {
			continue
		}
		if _, dup := seen[st.Subject]; dup {
			continue
		}
		seen[st.Subject] = struct{}{}
		out = append(out, st.Subject)
	}
	return out
}

// DistinctSubjectsOf returns the distinct subjects of statements carrying the
// given predicate IRI, in first-seen order.
func (g *Graph) DistinctSubjectsOf(predicate string) []Node {
	seen := make(map[Node]struct{})
	var out []Node
	for _, st := range g.statements {
		if st.Predicate.ID != predicate {
			continue
		}
		if _, dup := seen[st.Subject]; dup {
			continue
		}
		seen[st.Subject] = struct{}{}
		out = append(out, st.Subject)
	}
	return out
}
