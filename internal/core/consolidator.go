package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/agenthands/ontomerge/internal/config"
	"github.com/agenthands/ontomerge/internal/core/match"
	"github.com/agenthands/ontomerge/internal/core/merge"
	"github.com/agenthands/ontomerge/internal/core/model"
	"github.com/agenthands/ontomerge/internal/driver"
	"github.com/agenthands/ontomerge/internal/generate"
	"github.com/agenthands/ontomerge/internal/llm"
	"github.com/agenthands/ontomerge/internal/turtle"
)

// Consolidator wires the fragment generator, the Turtle codec, the merge
// engine, and the optional graph store into one pipeline: requirements go in,
// a consolidated ontology comes out.
type Consolidator struct {
	Driver    driver.GraphDriver
	LLM       llm.LLMClient
	Engine    *merge.Engine
	Generator *generate.Generator
	Config    *config.Config
}

func NewConsolidator(d driver.GraphDriver, llmClient llm.LLMClient, cfg *config.Config) *Consolidator {
	c := &Consolidator{
		Driver: d,
		LLM:    llmClient,
		Engine: merge.NewEngine(match.StopTokenNormalizer{}),
		Config: cfg,
	}
	if llmClient != nil {
		c.Generator = generate.NewGenerator(llmClient, cfg.Generation)
	}
	return c
}

func (c *Consolidator) BuildIndices(ctx context.Context) error {
	return c.Driver.BuildIndices(ctx)
}

// GenerateFragment produces one validated ontology fragment for a
// requirement.
func (c *Consolidator) GenerateFragment(ctx context.Context, competencyQuestion, userStory string) (string, error) {
	if c.Generator == nil {
		return "", fmt.Errorf("no LLM client configured")
	}
	return c.Generator.Generate(ctx, competencyQuestion, userStory)
}

// Consolidate parses each Turtle document and merges the resulting graphs.
// A document that fails to parse is skipped with a warning; the merge
// proceeds with whatever loaded. Zero usable documents yield an empty graph,
// not an error.
func (c *Consolidator) Consolidate(documents []string, opts merge.Options) (*merge.Result, []string) {
	var sources []*model.Graph
	var warnings []string
	for i, doc := range documents {
		g, err := turtle.Decode(turtle.Repair(doc))
		if err != nil {
			msg := fmt.Sprintf("skipping source %d: %v", i+1, err)
			log.Printf("Warning: %s", msg)
			warnings = append(warnings, msg)
			continue
		}
		sources = append(sources, g)
	}

	result := c.Engine.Merge(sources, opts)
	c.addOntologyHeader(result)
	return result, warnings
}

// addOntologyHeader declares the merged graph as an owl:Ontology when a base
// IRI is configured. Header statements count toward the reported total.
func (c *Consolidator) addOntologyHeader(result *merge.Result) {
	base := c.Config.Merge.BaseIRI
	if base == "" {
		return
	}
	g := result.Graph
	g.Bind("", base)
	ontology := model.IRI(strings.TrimSuffix(base, "#"))
	g.AddTriple(ontology, model.IRI(model.RDFType), model.IRI(model.OWLOntology))
	if label := c.Config.Merge.OntologyLabel; label != "" {
		g.AddTriple(ontology, model.IRI(model.RDFSLabel), model.LangLiteral(label, "en"))
	}
	result.Stats.TotalStatements = g.Len()
}

// Serialize renders a consolidated graph as Turtle. If structured encoding
// fails the statement-by-statement fallback is used, which degrades
// formatting but never the content.
func (c *Consolidator) Serialize(g *model.Graph) string {
	out, err := turtle.Encode(g)
	if err != nil {
		log.Printf("Warning: turtle encoding failed (%v), using fallback serialization", err)
		return turtle.EncodeFallback(g)
	}
	return out
}

// Persist writes the consolidated graph to the graph store: one :Resource
// node per named class, property, and individual, :RELATES relationships for
// node-to-node statements, and literal statements folded into node
// properties.
func (c *Consolidator) Persist(ctx context.Context, result *merge.Result) error {
	if c.Driver == nil {
		return fmt.Errorf("no graph store configured")
	}
	g := result.Graph

	persisted := make(map[model.Node]struct{})
	for _, kind := range []model.NodeKind{model.KindClass, model.KindObjectProperty, model.KindDatatypeProperty, model.KindIndividual} {
		for _, n := range g.NodesOfKind(kind) {
			label, _ := g.Label(n)
			comment, _ := g.Comment(n)
			params := map[string]interface{}{
				"iri":     n.ID,
				"kind":    kind.String(),
				"label":   label.Value,
				"comment": comment.Value,
			}
			if _, err := c.Driver.ExecuteQuery(ctx, driver.SaveResourceQuery, params); err != nil {
				return fmt.Errorf("failed to save resource %s: %w", n.ID, err)
			}
			persisted[n] = struct{}{}
		}
	}

	for _, st := range g.Statements() {
		if _, ok := persisted[st.Subject]; !ok {
			continue
		}
		switch obj := st.Object.(type) {
		case model.Node:
			if _, ok := persisted[obj]; !ok {
				continue
			}
			params := map[string]interface{}{
				"subject":   st.Subject.ID,
				"predicate": st.Predicate.ID,
				"object":    obj.ID,
			}
			if _, err := c.Driver.ExecuteQuery(ctx, driver.SaveRelationshipQuery, params); err != nil {
				return fmt.Errorf("failed to save relationship %s: %w", st.Predicate.ID, err)
			}
		case model.Literal:
			key := st.Predicate.LocalName()
			if key == "" || key == "label" || key == "comment" {
				continue
			}
			params := map[string]interface{}{
				"subject": st.Subject.ID,
				"props":   map[string]interface{}{key: obj.Value},
			}
			if _, err := c.Driver.ExecuteQuery(ctx, driver.SaveLiteralQuery, params); err != nil {
				return fmt.Errorf("failed to save literal %s: %w", key, err)
			}
		}
	}
	return nil
}
