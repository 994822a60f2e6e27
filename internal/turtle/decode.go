// Package turtle reads and writes the Turtle subset the generation layer
// produces: prefix declarations, predicate and object lists, typed and
// language-tagged literals, blank nodes, bracketed anonymous nodes, and
// collections. It is not a full Turtle implementation.
package turtle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/agenthands/ontomerge/internal/core/model"
)

// Decode parses a Turtle document into a graph. Prefixes declared in the
// document are bound on the graph alongside the standard RDF/RDFS/OWL/XSD
// set.
func Decode(input string) (*model.Graph, error) {
	p := &parser{
		lex:      newLexer(input),
		graph:    model.NewGraph(),
		prefixes: make(map[string]string),
	}
	for name, ns := range model.StandardPrefixes {
		p.prefixes[name] = ns
	}
	p.graph.Bind("rdf", model.StandardPrefixes["rdf"])
	p.graph.Bind("rdfs", model.StandardPrefixes["rdfs"])
	p.graph.Bind("owl", model.StandardPrefixes["owl"])
	p.graph.Bind("xsd", model.StandardPrefixes["xsd"])

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.graph, nil
}

type parser struct {
	lex      *lexer
	peeked   *token
	graph    *model.Graph
	prefixes map[string]string
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, nil
	}
	return p.lex.next()
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *parser) run() error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokEOF:
			return nil
		case tokPrefixDecl:
			if err := p.parsePrefix(); err != nil {
				return err
			}
		default:
			if err := p.parseTriples(); err != nil {
				return err
			}
		}
	}
}

func (p *parser) parsePrefix() error {
	if _, err := p.next(); err != nil { // consume the prefix keyword
		return err
	}
	name, err := p.next()
	if err != nil {
		return err
	}
	if name.kind != tokPName || !strings.HasSuffix(name.value, ":") {
		return fmt.Errorf("line %d: expected prefix name, got %q", name.line, name.value)
	}
	iri, err := p.next()
	if err != nil {
		return err
	}
	if iri.kind != tokIRI {
		return fmt.Errorf("line %d: expected namespace IRI in prefix declaration", iri.line)
	}
	prefix := strings.TrimSuffix(name.value, ":")
	p.prefixes[prefix] = iri.value
	p.graph.Bind(prefix, iri.value)

	// @prefix ends with a dot; SPARQL-style PREFIX does not.
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.kind == tokDot {
		_, err = p.next()
	}
	return err
}

func (p *parser) parseTriples() error {
	subject, err := p.parseNodeTerm()
	if err != nil {
		return err
	}
	if err := p.parsePredicateObjectList(subject); err != nil {
		return err
	}
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.kind != tokDot {
		return fmt.Errorf("line %d: expected '.' after statement", tok.line)
	}
	return nil
}

func (p *parser) parseNodeTerm() (model.Node, error) {
	tok, err := p.next()
	if err != nil {
		return model.Node{}, err
	}
	switch tok.kind {
	case tokIRI:
		return model.IRI(tok.value), nil
	case tokPName:
		iri, err := p.expandPName(tok)
		if err != nil {
			return model.Node{}, err
		}
		return model.IRI(iri), nil
	case tokBlank:
		return model.Blank(tok.value), nil
	case tokLBracket:
		return p.parseAnon()
	default:
		return model.Node{}, fmt.Errorf("line %d: expected subject term", tok.line)
	}
}

// parseAnon handles a bracketed anonymous node, typically a restriction.
// The opening bracket has already been consumed.
func (p *parser) parseAnon() (model.Node, error) {
	node := mintBlank()
	tok, err := p.peek()
	if err != nil {
		return model.Node{}, err
	}
	if tok.kind != tokRBracket {
		if err := p.parsePredicateObjectList(node); err != nil {
			return model.Node{}, err
		}
	}
	closing, err := p.next()
	if err != nil {
		return model.Node{}, err
	}
	if closing.kind != tokRBracket {
		return model.Node{}, fmt.Errorf("line %d: expected ']'", closing.line)
	}
	return node, nil
}

func (p *parser) parsePredicateObjectList(subject model.Node) error {
	for {
		predicate, err := p.parsePredicate()
		if err != nil {
			return err
		}
		if err := p.parseObjectList(subject, predicate); err != nil {
			return err
		}

		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.kind != tokSemicolon {
			return nil
		}
		for tok.kind == tokSemicolon {
			if _, err := p.next(); err != nil {
				return err
			}
			if tok, err = p.peek(); err != nil {
				return err
			}
		}
		// Trailing semicolon before the statement terminator is legal.
		if tok.kind == tokDot || tok.kind == tokRBracket || tok.kind == tokEOF {
			return nil
		}
	}
}

func (p *parser) parsePredicate() (model.Node, error) {
	tok, err := p.next()
	if err != nil {
		return model.Node{}, err
	}
	switch tok.kind {
	case tokA:
		return model.IRI(model.RDFType), nil
	case tokIRI:
		return model.IRI(tok.value), nil
	case tokPName:
		iri, err := p.expandPName(tok)
		if err != nil {
			return model.Node{}, err
		}
		return model.IRI(iri), nil
	default:
		return model.Node{}, fmt.Errorf("line %d: expected predicate", tok.line)
	}
}

func (p *parser) parseObjectList(subject, predicate model.Node) error {
	for {
		object, err := p.parseObjectTerm()
		if err != nil {
			return err
		}
		p.graph.AddTriple(subject, predicate, object)

		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.kind != tokComma {
			return nil
		}
		if _, err := p.next(); err != nil {
			return err
		}
	}
}

func (p *parser) parseObjectTerm() (model.Term, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokIRI:
		return model.IRI(tok.value), nil
	case tokPName:
		iri, err := p.expandPName(tok)
		if err != nil {
			return nil, err
		}
		return model.IRI(iri), nil
	case tokBlank:
		return model.Blank(tok.value), nil
	case tokLBracket:
		return p.parseAnon()
	case tokLParen:
		return p.parseCollection()
	case tokString:
		return p.parseLiteralTail(tok.value)
	case tokNumber:
		datatype := model.XSDInteger
		if strings.ContainsAny(tok.value, ".eE") {
			datatype = model.XSDDecimal
		}
		return model.TypedLiteral(tok.value, datatype), nil
	case tokBoolean:
		return model.TypedLiteral(tok.value, model.XSDBoolean), nil
	default:
		return nil, fmt.Errorf("line %d: expected object term", tok.line)
	}
}

func (p *parser) parseLiteralTail(value string) (model.Term, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokLangTag:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		return model.LangLiteral(value, tok.value), nil
	case tokDatatypeSep:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		dt, err := p.next()
		if err != nil {
			return nil, err
		}
		switch dt.kind {
		case tokIRI:
			return model.TypedLiteral(value, dt.value), nil
		case tokPName:
			iri, err := p.expandPName(dt)
			if err != nil {
				return nil, err
			}
			return model.TypedLiteral(value, iri), nil
		default:
			return nil, fmt.Errorf("line %d: expected datatype IRI", dt.line)
		}
	default:
		return model.NewLiteral(value), nil
	}
}

// parseCollection reads an RDF collection into a first/rest chain and
// returns its head. The opening paren has already been consumed.
func (p *parser) parseCollection() (model.Node, error) {
	var items []model.Term
	for {
		tok, err := p.peek()
		if err != nil {
			return model.Node{}, err
		}
		if tok.kind == tokRParen {
			if _, err := p.next(); err != nil {
				return model.Node{}, err
			}
			break
		}
		item, err := p.parseObjectTerm()
		if err != nil {
			return model.Node{}, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return model.IRI(model.RDFNil), nil
	}
	head := mintBlank()
	current := head
	for i, item := range items {
		p.graph.AddTriple(current, model.IRI(model.RDFFirst), item)
		if i == len(items)-1 {
			p.graph.AddTriple(current, model.IRI(model.RDFRest), model.IRI(model.RDFNil))
		} else {
			next := mintBlank()
			p.graph.AddTriple(current, model.IRI(model.RDFRest), next)
			current = next
		}
	}
	return head, nil
}

func (p *parser) expandPName(tok token) (string, error) {
	i := strings.Index(tok.value, ":")
	if i < 0 {
		return "", fmt.Errorf("line %d: malformed prefixed name %q", tok.line, tok.value)
	}
	prefix, local := tok.value[:i], tok.value[i+1:]
	ns, ok := p.prefixes[prefix]
	if !ok {
		return "", fmt.Errorf("line %d: undefined prefix %q", tok.line, prefix)
	}
	return ns + local, nil
}

func mintBlank() model.Node {
	return model.Blank("b" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
