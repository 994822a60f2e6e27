// Package generate turns natural-language requirements into OWL ontology
// fragments using an LLM, repairing and validating the returned Turtle
// before handing it to the merge pipeline.
package generate

import (
	"context"
	"fmt"
	"log"

	"github.com/agenthands/ontomerge/internal/config"
	"github.com/agenthands/ontomerge/internal/llm"
	"github.com/agenthands/ontomerge/internal/turtle"
)

const defaultPrompt = `You are an ontology engineer. Produce an OWL ontology fragment in Turtle format that answers the competency question below, informed by the user story.

Competency question: %s

User story: %s

Rules:
1. Output ONLY Turtle, no explanations and no markdown fences.
2. Declare every class as owl:Class and every property as owl:ObjectProperty or owl:DatatypeProperty.
3. Give each class and property an rdfs:label and an rdfs:comment.
4. Declare rdfs:domain and rdfs:range for every property.
5. Use camelCase for property names and UpperCamelCase for class names.
6. Use these prefixes and no others:
@prefix : <http://www.example.org/test#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .`

type Generator struct {
	LLM        llm.LLMClient
	Prompt     string
	MaxRetries int
}

func NewGenerator(llmClient llm.LLMClient, prompts config.GenerationPrompts) *Generator {
	prompt := prompts.Ontology
	if prompt == "" {
		prompt = defaultPrompt
	}
	retries := prompts.MaxRetries
	if retries <= 0 {
		retries = 3
	}
	return &Generator{
		LLM:        llmClient,
		Prompt:     prompt,
		MaxRetries: retries,
	}
}

// Generate asks the LLM for an ontology fragment and returns repaired Turtle
// that is known to parse. Each attempt re-prompts from scratch; responses
// that still fail to parse after repair are discarded.
func (g *Generator) Generate(ctx context.Context, competencyQuestion, userStory string) (string, error) {
	prompt := fmt.Sprintf(g.Prompt, competencyQuestion, userStory)

	var lastErr error
	for attempt := 1; attempt <= g.MaxRetries; attempt++ {
		response, err := g.LLM.Generate(ctx, prompt)
		if err != nil {
			lastErr = fmt.Errorf("failed to generate ontology fragment: %w", err)
			log.Printf("Generation attempt %d/%d failed: %v", attempt, g.MaxRetries, err)
			continue
		}

		repaired := turtle.Repair(response)
		if _, err := turtle.Decode(repaired); err != nil {
			lastErr = fmt.Errorf("generated fragment does not parse: %w", err)
			log.Printf("Generation attempt %d/%d produced invalid Turtle: %v", attempt, g.MaxRetries, err)
			continue
		}

		return repaired, nil
	}
	return "", lastErr
}
