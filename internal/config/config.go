package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type MergeConfig struct {
	// Strategy is one of "richest", "first", "most_connected",
	// "most_properties". Empty selects "richest".
	Strategy string `toml:"strategy"`

	// BaseIRI and OntologyLabel, when set, produce an owl:Ontology
	// declaration header on every consolidated graph.
	BaseIRI       string `toml:"base_iri"`
	OntologyLabel string `toml:"ontology_label"`

	// Preferences pins canonical identities per normalized display name.
	Preferences map[string]string `toml:"preferences"`
}

type GenerationPrompts struct {
	// Ontology is the fragment-generation prompt template. It receives the
	// competency question and the user story, in that order.
	Ontology   string `toml:"ontology"`
	MaxRetries int    `toml:"max_retries"`
}

type Config struct {
	LLM        LLMConfig         `toml:"llm"`
	Memgraph   MemgraphConfig    `toml:"memgraph"`
	Merge      MergeConfig       `toml:"merge"`
	Generation GenerationPrompts `toml:"generation"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}
