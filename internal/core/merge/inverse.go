package merge

import (
	"log"

	"github.com/agenthands/ontomerge/internal/core/match"
	"github.com/agenthands/ontomerge/internal/core/model"
)

// recordInverses declares owl:inverseOf between each candidate pair after
// mapping both sides onto their canonical properties. Pairs that collapse
// onto one property are dropped rather than recorded as self-inverses. Only
// the matched direction is declared; OWL semantics make the reverse
// direction derivable, and the statistics count one direction per pair.
func recordInverses(merged *model.Graph, candidates []match.InversePair, mapping map[model.Node]model.Node) []match.InversePair {
	var recorded []match.InversePair
	for _, pair := range candidates {
		prop := apply(mapping, pair.Property)
		inverse := apply(mapping, pair.Inverse)
		if prop == inverse {
			continue
		}
		if merged.Has(model.Statement{Subject: inverse, Predicate: model.IRI(model.OWLInverseOf), Object: prop}) {
			continue
		}
		if merged.AddTriple(prop, model.IRI(model.OWLInverseOf), inverse) {
			recorded = append(recorded, match.InversePair{Property: prop, Inverse: inverse})
			log.Printf("Added inverse property: %s owl:inverseOf %s", prop.ID, inverse.ID)
		}
	}
	return recorded
}
