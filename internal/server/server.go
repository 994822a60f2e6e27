package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/ontomerge/internal/config"
	"github.com/agenthands/ontomerge/internal/core"
	"github.com/agenthands/ontomerge/internal/core/merge"
	"github.com/agenthands/ontomerge/internal/driver"
	"github.com/agenthands/ontomerge/internal/llm"
)

type Server struct {
	Consolidator *core.Consolidator
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Starting with defaults", cfgPath, err)
		cfg = &config.Config{}
	}

	// Env overrides
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Memgraph.Password = v
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	var d driver.GraphDriver
	if cfg.Memgraph.URI != "" {
		md, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		d = md
	} else {
		log.Println("No Memgraph URI configured, persistence disabled")
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	return &Server{
		Consolidator: core.NewConsolidator(d, llmClient, cfg),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/merge", s.Merge)
	r.POST("/generate", s.Generate)
	r.POST("/pipeline", s.Pipeline)
	r.GET("/health", s.Health)

	return r
}

type MergeRequest struct {
	Documents   []string          `json:"documents"`
	Strategy    string            `json:"strategy"`
	Preferences map[string]string `json:"preferences"`
	Persist     bool              `json:"persist"`
}

func (s *Server) Merge(c *gin.Context) {
	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	opts, err := s.mergeOptions(req.Strategy, req.Preferences)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, warnings := s.Consolidator.Consolidate(req.Documents, opts)

	if req.Persist {
		if err := s.Consolidator.Persist(c.Request.Context(), result); err != nil {
			log.Printf("Failed to persist merged ontology: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist merged ontology"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ontology":   s.Consolidator.Serialize(result.Graph),
		"statistics": result.Stats,
		"warnings":   warnings,
	})
}

type GenerateRequest struct {
	CompetencyQuestion string `json:"competency_question"`
	UserStory          string `json:"user_story"`
}

func (s *Server) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fragment, err := s.Consolidator.GenerateFragment(c.Request.Context(), req.CompetencyQuestion, req.UserStory)
	if err != nil {
		log.Printf("Failed to generate fragment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ontology fragment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ontology": fragment})
}

type PipelineRequest struct {
	Requirements []GenerateRequest `json:"requirements"`
	Strategy     string            `json:"strategy"`
	Persist      bool              `json:"persist"`
}

// Pipeline generates one fragment per requirement and consolidates them in a
// single pass. Requirements whose generation fails are skipped with a
// warning, mirroring how unparseable documents are handled.
func (s *Server) Pipeline(c *gin.Context) {
	var req PipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	opts, err := s.mergeOptions(req.Strategy, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var documents []string
	var warnings []string
	for i, r := range req.Requirements {
		fragment, err := s.Consolidator.GenerateFragment(c.Request.Context(), r.CompetencyQuestion, r.UserStory)
		if err != nil {
			log.Printf("Failed to generate fragment %d: %v", i+1, err)
			warnings = append(warnings, err.Error())
			continue
		}
		documents = append(documents, fragment)
	}

	result, mergeWarnings := s.Consolidator.Consolidate(documents, opts)
	warnings = append(warnings, mergeWarnings...)

	if req.Persist {
		if err := s.Consolidator.Persist(c.Request.Context(), result); err != nil {
			log.Printf("Failed to persist merged ontology: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist merged ontology"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ontology":   s.Consolidator.Serialize(result.Graph),
		"statistics": result.Stats,
		"fragments":  len(documents),
		"warnings":   warnings,
	})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) mergeOptions(strategy string, preferences map[string]string) (merge.Options, error) {
	cfg := s.Consolidator.Config
	if strategy == "" {
		strategy = cfg.Merge.Strategy
	}
	parsed, err := merge.ParseStrategy(strategy)
	if err != nil {
		return merge.Options{}, err
	}

	merged := make(map[string]string)
	for k, v := range cfg.Merge.Preferences {
		merged[k] = v
	}
	for k, v := range preferences {
		merged[k] = v
	}

	return merge.Options{Strategy: parsed, Preferences: merged}, nil
}
