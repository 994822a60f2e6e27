package driver

// Consolidated graphs persist as :Resource nodes keyed by IRI, with
// node-to-node statements as :RELATES relationships carrying the predicate
// IRI and literal-valued statements folded into node properties.

const SaveResourceQuery = `
MERGE (r:Resource {iri: $iri})
SET r.kind = $kind,
    r.label = $label,
    r.comment = $comment
`

const SaveRelationshipQuery = `
MATCH (a:Resource {iri: $subject})
MATCH (b:Resource {iri: $object})
MERGE (a)-[rel:RELATES {predicate: $predicate}]->(b)
`

const SaveLiteralQuery = `
MATCH (r:Resource {iri: $subject})
SET r += $props
`

const ClearOntologyQuery = `
MATCH (r:Resource) DETACH DELETE r
`
