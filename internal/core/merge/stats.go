package merge

import "github.com/agenthands/ontomerge/internal/core/model"

// Statistics summarizes a merged graph. All counts derive from the graph
// itself except the mapping counts, which the engine fills in from the merge
// that produced it.
type Statistics struct {
	Classes               int `json:"classes"`
	ObjectProperties      int `json:"object_properties"`
	DatatypeProperties    int `json:"datatype_properties"`
	Individuals           int `json:"individuals"`
	InverseProperties     int `json:"inverse_properties"`
	ClassMappings         int `json:"class_mappings"`
	PropertyMappings      int `json:"property_mappings"`
	RestrictionCandidates int `json:"restriction_candidates"`
	TotalStatements       int `json:"total_statements"`
}

// Collect is a read-only query over a graph; it can run at any point after a
// merge completes and has no side effects.
func Collect(g *model.Graph) Statistics {
	return Statistics{
		Classes:            len(g.SubjectsOfType(model.OWLClass)),
		ObjectProperties:   len(g.SubjectsOfType(model.OWLObjectProperty)),
		DatatypeProperties: len(g.SubjectsOfType(model.OWLDatatypeProperty)),
		Individuals:        len(g.SubjectsOfType(model.OWLNamedIndividual)),
		InverseProperties:  len(g.DistinctSubjectsOf(model.OWLInverseOf)),
		TotalStatements:    g.Len(),
	}
}
