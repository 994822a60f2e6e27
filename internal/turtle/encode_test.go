package turtle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ontomerge/internal/core/model"
)

const roundTripDoc = `@prefix : <http://www.example.org/test#> .
:Sensor a owl:Class ;
    rdfs:label "Sensor"@en .
:detects a owl:ObjectProperty ;
    rdfs:domain :Sensor ;
    rdfs:range :Drowsiness .
:threshold a owl:DatatypeProperty ;
    rdfs:range xsd:integer .
`

func TestEncodeRoundTrip(t *testing.T) {
	g, err := Decode(roundTripDoc)
	require.NoError(t, err)

	out, err := Encode(g)
	require.NoError(t, err)

	back, err := Decode(out)
	require.NoError(t, err)

	assert.Equal(t, g.Len(), back.Len())
	for _, st := range g.Statements() {
		assert.True(t, back.Has(st), "lost %s", st)
	}
}

func TestEncodeShortensAndGroups(t *testing.T) {
	g, err := Decode(roundTripDoc)
	require.NoError(t, err)

	out, err := Encode(g)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix owl: <http://www.w3.org/2002/07/owl#> .")
	assert.Contains(t, out, ":Sensor a owl:Class")
	assert.Contains(t, out, `rdfs:label "Sensor"@en`)
	assert.Contains(t, out, "rdfs:range xsd:integer")
	// three subject blocks plus the prefix header's trailing blank line
	assert.Equal(t, 4, strings.Count(out, " .\n\n"))
}

func TestEncodeObjectList(t *testing.T) {
	g := model.NewGraph()
	g.Bind("", ns)
	g.AddTriple(model.IRI(ns+"Car"), model.IRI(model.RDFSSubClassOf), model.IRI(ns+"Vehicle"))
	g.AddTriple(model.IRI(ns+"Car"), model.IRI(model.RDFSSubClassOf), model.IRI(ns+"Machine"))

	out, err := Encode(g)
	require.NoError(t, err)
	assert.Contains(t, out, ":Vehicle , :Machine")
}

func TestEncodeRejectsEmptyTerm(t *testing.T) {
	g := model.NewGraph()
	g.AddTriple(model.IRI(""), model.IRI(model.RDFType), model.IRI(model.OWLClass))

	_, err := Encode(g)
	assert.ErrorContains(t, err, "empty term")
}

func TestEncodeFallback(t *testing.T) {
	g := model.NewGraph()
	g.Bind("owl", model.StandardPrefixes["owl"])
	g.AddTriple(model.IRI(ns+"Sensor"), model.IRI(model.RDFType), model.IRI(model.OWLClass))
	g.AddTriple(model.IRI(ns+"Sensor"), model.IRI(model.RDFSLabel), model.LangLiteral("Sensor", "en"))

	out := EncodeFallback(g)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4, "prefix, separator, two statements")
	assert.Equal(t, "@prefix owl: <http://www.w3.org/2002/07/owl#> .", lines[0])
	assert.Equal(t, "", lines[1])
	// statements are expanded and sorted
	assert.Equal(t, "<http://www.example.org/test#Sensor> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .", lines[2])
	assert.Equal(t, `<http://www.example.org/test#Sensor> <http://www.w3.org/2000/01/rdf-schema#label> "Sensor"@en .`, lines[3])
}
