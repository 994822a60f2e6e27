package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ontomerge/internal/core/model"
)

const ns = "http://www.example.org/test#"

func TestDecodeBasicDocument(t *testing.T) {
	g, err := Decode(`@prefix : <http://www.example.org/test#> .
:Sensor a owl:Class ;
    rdfs:label "Sensor"@en ;
    rdfs:comment "A measuring device." .
:detects a owl:ObjectProperty ;
    rdfs:domain :Sensor .
`)
	require.NoError(t, err)

	sensor := model.IRI(ns + "Sensor")
	assert.Equal(t, model.KindClass, g.Kind(sensor))
	assert.Equal(t, model.KindObjectProperty, g.Kind(model.IRI(ns+"detects")))

	label, ok := g.Label(sensor)
	require.True(t, ok)
	assert.Equal(t, "Sensor", label.Value)
	assert.Equal(t, "en", label.Lang)

	comment, ok := g.Comment(sensor)
	require.True(t, ok)
	assert.Equal(t, "A measuring device.", comment.Value)

	assert.True(t, g.Has(model.Statement{
		Subject:   model.IRI(ns + "detects"),
		Predicate: model.IRI(model.RDFSDomain),
		Object:    sensor,
	}))
}

func TestDecodeObjectList(t *testing.T) {
	g, err := Decode(`@prefix : <http://www.example.org/test#> .
:Car rdfs:subClassOf :Vehicle , :Machine .
`)
	require.NoError(t, err)

	objects := g.Objects(model.IRI(ns+"Car"), model.RDFSSubClassOf)
	assert.Equal(t, []model.Term{model.IRI(ns + "Vehicle"), model.IRI(ns + "Machine")}, objects)
}

func TestDecodeLiteralForms(t *testing.T) {
	g, err := Decode(`@prefix : <http://www.example.org/test#> .
:x :count 5 ;
   :temp 36.6 ;
   :active true ;
   :code "x1"^^xsd:string .
`)
	require.NoError(t, err)

	x := model.IRI(ns + "x")
	assert.Equal(t, []model.Term{model.TypedLiteral("5", model.XSDInteger)}, g.Objects(x, ns+"count"))
	assert.Equal(t, []model.Term{model.TypedLiteral("36.6", model.XSDDecimal)}, g.Objects(x, ns+"temp"))
	assert.Equal(t, []model.Term{model.TypedLiteral("true", model.XSDBoolean)}, g.Objects(x, ns+"active"))
	assert.Equal(t, []model.Term{model.TypedLiteral("x1", model.XSDString)}, g.Objects(x, ns+"code"))
}

func TestDecodeAnonymousRestriction(t *testing.T) {
	g, err := Decode(`@prefix : <http://www.example.org/test#> .
:Sensor a owl:Class ;
    rdfs:subClassOf [ a owl:Restriction ;
        owl:onProperty :detects ;
        owl:someValuesFrom :Drowsiness ] .
`)
	require.NoError(t, err)

	objects := g.Objects(model.IRI(ns+"Sensor"), model.RDFSSubClassOf)
	require.Len(t, objects, 1)
	anon, ok := objects[0].(model.Node)
	require.True(t, ok)
	assert.True(t, anon.Anon)
	assert.Equal(t, model.KindAnonymous, g.Kind(anon))
	assert.Equal(t, []model.Term{model.IRI(ns + "detects")}, g.Objects(anon, model.OWLOnProperty))
	assert.Equal(t, []model.Term{model.IRI(ns + "Drowsiness")}, g.Objects(anon, model.OWLSomeValuesFrom))
}

func TestDecodeCollection(t *testing.T) {
	g, err := Decode(`@prefix : <http://www.example.org/test#> .
:x :members ( :a :b ) .
`)
	require.NoError(t, err)

	heads := g.Objects(model.IRI(ns+"x"), ns+"members")
	require.Len(t, heads, 1)
	head := heads[0].(model.Node)
	require.True(t, head.Anon)
	assert.Equal(t, []model.Term{model.IRI(ns + "a")}, g.Objects(head, model.RDFFirst))

	rest := g.Objects(head, model.RDFRest)
	require.Len(t, rest, 1)
	second := rest[0].(model.Node)
	assert.Equal(t, []model.Term{model.IRI(ns + "b")}, g.Objects(second, model.RDFFirst))
	assert.Equal(t, []model.Term{model.IRI(model.RDFNil)}, g.Objects(second, model.RDFRest))
}

func TestDecodeSparqlPrefixForm(t *testing.T) {
	g, err := Decode(`PREFIX ex: <http://example.com/>
ex:a a owl:Class .
`)
	require.NoError(t, err)
	assert.Equal(t, model.KindClass, g.Kind(model.IRI("http://example.com/a")))
}

func TestDecodeTrailingSemicolon(t *testing.T) {
	g, err := Decode(`@prefix : <http://www.example.org/test#> .
:Sensor a owl:Class ; .
`)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
}

func TestDecodeLabeledBlankNode(t *testing.T) {
	g, err := Decode(`@prefix : <http://www.example.org/test#> .
_:n1 a owl:Class .
`)
	require.NoError(t, err)
	assert.Equal(t, model.KindAnonymous, g.Kind(model.Blank("n1")))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(`:Sensor a owl:Class .`)
	assert.ErrorContains(t, err, "undefined prefix")

	_, err = Decode(`@prefix : <http://www.example.org/test#> .
:Sensor a owl:Class
:Vehicle a owl:Class .
`)
	assert.ErrorContains(t, err, "expected '.'")
}
