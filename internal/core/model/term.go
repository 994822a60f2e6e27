package model

import (
	"fmt"
	"strings"
)

// NodeKind classifies a node once at load time so later passes never have to
// re-scan type statements to find out what a node is.
type NodeKind int

const (
	KindUnclassified NodeKind = iota
	KindClass
	KindObjectProperty
	KindDatatypeProperty
	KindIndividual
	KindAnonymous
)

func (k NodeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindObjectProperty:
		return "object_property"
	case KindDatatypeProperty:
		return "datatype_property"
	case KindIndividual:
		return "individual"
	case KindAnonymous:
		return "anonymous"
	default:
		return "unclassified"
	}
}

// Term is either a Node identity or a Literal value. Only these two types
// implement it.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Node is an identity-bearing graph element: an IRI, or a blank node
// identifier when Anon is set.
type Node struct {
	ID   string `json:"id"`
	Anon bool   `json:"anon,omitempty"`
}

func IRI(id string) Node {
	return Node{ID: id}
}

func Blank(id string) Node {
	return Node{ID: id, Anon: true}
}

func (n Node) isTerm() {}

func (n Node) String() string {
	if n.Anon {
		return "_:" + n.ID
	}
	return "<" + n.ID + ">"
}

// LocalName returns the last path segment of the identity, the part after
// the final '#' or '/'.
func (n Node) LocalName() string {
	id := n.ID
	if i := strings.LastIndexAny(id, "#/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// Literal is a scalar value with an optional language tag or datatype IRI.
// Literals have no identity and are never merged.
type Literal struct {
	Value    string `json:"value"`
	Lang     string `json:"lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

func LangLiteral(value, lang string) Literal {
	return Literal{Value: value, Lang: lang}
}

func TypedLiteral(value, datatype string) Literal {
	return Literal{Value: value, Datatype: datatype}
}

func (l Literal) isTerm() {}

func (l Literal) String() string {
	s := `"` + escapeLiteral(l.Value) + `"`
	if l.Lang != "" {
		return s + "@" + l.Lang
	}
	if l.Datatype != "" {
		return s + "^^<" + l.Datatype + ">"
	}
	return s
}

func escapeLiteral(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return r.Replace(s)
}

// Statement is a subject-predicate-object fact. The object may be a Node or
// a Literal; subject and predicate are always Nodes. Statements are value
// types and compare by their contents.
type Statement struct {
	Subject   Node
	Predicate Node
	Object    Term
}

func (st Statement) String() string {
	return st.Subject.String() + " " + st.Predicate.String() + " " + st.Object.String() + " ."
}
