package model

// Vocabulary IRIs the engine needs to recognise. Everything else passes
// through the pipeline untouched.
const (
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	RDFSLabel      = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFSComment    = "http://www.w3.org/2000/01/rdf-schema#comment"
	RDFSSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
	RDFSDomain     = "http://www.w3.org/2000/01/rdf-schema#domain"
	RDFSRange      = "http://www.w3.org/2000/01/rdf-schema#range"

	OWLClass            = "http://www.w3.org/2002/07/owl#Class"
	OWLObjectProperty   = "http://www.w3.org/2002/07/owl#ObjectProperty"
	OWLDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"
	OWLNamedIndividual  = "http://www.w3.org/2002/07/owl#NamedIndividual"
	OWLOntology         = "http://www.w3.org/2002/07/owl#Ontology"
	OWLInverseOf        = "http://www.w3.org/2002/07/owl#inverseOf"
	OWLRestriction      = "http://www.w3.org/2002/07/owl#Restriction"
	OWLOnProperty       = "http://www.w3.org/2002/07/owl#onProperty"
	OWLSomeValuesFrom   = "http://www.w3.org/2002/07/owl#someValuesFrom"
	OWLAllValuesFrom    = "http://www.w3.org/2002/07/owl#allValuesFrom"

	RDFFirst = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	RDFRest  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	RDFNil   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"

	XSDString  = "http://www.w3.org/2001/XMLSchema#string"
	XSDInteger = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
)

// StandardPrefixes are bound on every graph the codec produces, matching the
// prefix set the generation prompts instruct the model to use.
var StandardPrefixes = map[string]string{
	"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
	"owl":  "http://www.w3.org/2002/07/owl#",
	"xsd":  "http://www.w3.org/2001/XMLSchema#",
}
