package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ontomerge/internal/config"
	"github.com/agenthands/ontomerge/internal/turtle"
)

const validFragment = `@prefix : <http://www.example.org/test#> .
:Sensor a owl:Class ;
    rdfs:label "Sensor"@en .
`

func TestGenerateRepairsResponse(t *testing.T) {
	mock := &MockLLM{Response: "Here you go:\n```turtle\n" + validFragment + "```\n"}
	g := NewGenerator(mock, config.GenerationPrompts{})

	out, err := g.Generate(context.Background(), "What does a sensor detect?", "As a driver I want to be warned.")
	require.NoError(t, err)

	assert.NotContains(t, out, "```")
	_, err = turtle.Decode(out)
	assert.NoError(t, err)

	require.Len(t, mock.Prompts, 1)
	assert.Contains(t, mock.Prompts[0], "What does a sensor detect?")
	assert.Contains(t, mock.Prompts[0], "As a driver I want to be warned.")
}

func TestGenerateRetriesOnInvalidTurtle(t *testing.T) {
	mock := &MockLLM{ResponseQueue: []string{"sorry, I cannot do that", validFragment}}
	g := NewGenerator(mock, config.GenerationPrompts{})

	out, err := g.Generate(context.Background(), "cq", "story")
	require.NoError(t, err)

	assert.Len(t, mock.Prompts, 2)
	_, err = turtle.Decode(out)
	assert.NoError(t, err)
}

func TestGenerateGivesUpAfterMaxRetries(t *testing.T) {
	mock := &MockLLM{Response: "still not turtle"}
	g := NewGenerator(mock, config.GenerationPrompts{MaxRetries: 2})

	_, err := g.Generate(context.Background(), "cq", "story")
	require.Error(t, err)
	assert.ErrorContains(t, err, "does not parse")
	assert.Len(t, mock.Prompts, 2)
}

func TestGenerateWrapsClientError(t *testing.T) {
	cause := errors.New("connection refused")
	mock := &MockLLM{Err: cause}
	g := NewGenerator(mock, config.GenerationPrompts{MaxRetries: 1})

	_, err := g.Generate(context.Background(), "cq", "story")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "failed to generate ontology fragment")
}

func TestNewGeneratorDefaults(t *testing.T) {
	g := NewGenerator(&MockLLM{}, config.GenerationPrompts{})

	assert.Equal(t, defaultPrompt, g.Prompt)
	assert.Equal(t, 3, g.MaxRetries)
}
