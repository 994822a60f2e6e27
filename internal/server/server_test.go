package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ontomerge/internal/config"
	"github.com/agenthands/ontomerge/internal/core"
	"github.com/agenthands/ontomerge/internal/core/merge"
	"github.com/agenthands/ontomerge/internal/llm"
)

const docA = `@prefix : <http://www.example.org/test#> .
:DrowsinessState a owl:Class .
`

const docB = `@prefix : <http://www.example.org/test#> .
:Drowsiness a owl:Class ;
    rdfs:label "Drowsiness"@en ;
    rdfs:comment "Reduced alertness of the driver."@en .
`

type MockLLM struct {
	Response string
	Err      error
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func newTestServer(llmClient llm.LLMClient, cfg *config.Config) *Server {
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Server{Consolidator: core.NewConsolidator(nil, llmClient, cfg)}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(nil, nil).SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMergeEndpoint(t *testing.T) {
	router := newTestServer(nil, nil).SetupRouter()

	w := postJSON(t, router, "/merge", MergeRequest{Documents: []string{docA, docB}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ontology   string           `json:"ontology"`
		Statistics merge.Statistics `json:"statistics"`
		Warnings   []string         `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Empty(t, resp.Warnings)
	assert.Equal(t, 1, resp.Statistics.Classes)
	assert.Equal(t, 1, resp.Statistics.ClassMappings)
	assert.Contains(t, resp.Ontology, ":Drowsiness a owl:Class")
	assert.NotContains(t, resp.Ontology, "DrowsinessState")
}

func TestMergeEndpointUnknownStrategy(t *testing.T) {
	router := newTestServer(nil, nil).SetupRouter()

	w := postJSON(t, router, "/merge", MergeRequest{Documents: []string{docA}, Strategy: "fanciest"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown merge strategy")
}

func TestMergeEndpointInvalidBody(t *testing.T) {
	router := newTestServer(nil, nil).SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/merge", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMergeEndpointPreferencesOverrideConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Merge.Preferences = map[string]string{"drowsiness": "http://www.example.org/test#Drowsiness"}
	router := newTestServer(nil, cfg).SetupRouter()

	w := postJSON(t, router, "/merge", MergeRequest{
		Documents:   []string{docA, docB},
		Preferences: map[string]string{"drowsiness": "http://www.example.org/test#DrowsinessState"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ontology string `json:"ontology"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Ontology, ":DrowsinessState a owl:Class")
}

func TestGenerateEndpoint(t *testing.T) {
	mock := &MockLLM{Response: docB}
	router := newTestServer(mock, nil).SetupRouter()

	w := postJSON(t, router, "/generate", GenerateRequest{
		CompetencyQuestion: "What is drowsiness?",
		UserStory:          "As a driver I want to be warned.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ontology string `json:"ontology"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Ontology, ":Drowsiness a owl:Class")
}

func TestGenerateEndpointWithoutLLM(t *testing.T) {
	router := newTestServer(nil, nil).SetupRouter()

	w := postJSON(t, router, "/generate", GenerateRequest{CompetencyQuestion: "cq"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPipelineEndpoint(t *testing.T) {
	mock := &MockLLM{Response: docB}
	router := newTestServer(mock, nil).SetupRouter()

	w := postJSON(t, router, "/pipeline", PipelineRequest{
		Requirements: []GenerateRequest{
			{CompetencyQuestion: "cq1", UserStory: "s1"},
			{CompetencyQuestion: "cq2", UserStory: "s2"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Fragments  int              `json:"fragments"`
		Statistics merge.Statistics `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Fragments)
	assert.Equal(t, 1, resp.Statistics.Classes)
}
