package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/llm"
	"github.com/alexanderramin/studypal/internal/responder"
)

func ollamaStub(t *testing.T, handler func(w http.ResponseWriter)) llm.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(w)
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	cfg.Tasks[llm.TaskCoachReply] = llm.TaskConfig{Temperature: 0.7, MaxTokens: 128, TimeoutMs: 100}
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func TestCoachService_HTTP_FencedReply(t *testing.T) {
	client := ollamaStub(t, func(w http.ResponseWriter) {
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "llama3.2",
			"response": "```json\n{\"message\":\"Essay first, snacks later.\"}\n```",
		})
	})
	svc := NewCoachService(client, testRules(), nil)

	reply, err := svc.Reply(context.Background(), responder.ResponseProcrastinationHelp, domain.PersonalityLevel{Fierceness: 5, Style: 2}, essayContext)

	require.NoError(t, err)
	assert.Equal(t, SourceLLM, reply.Source)
	assert.Equal(t, "Essay first, snacks later.", reply.Text)
}

func TestCoachService_HTTP_SlowServerFallsBack(t *testing.T) {
	client := ollamaStub(t, func(w http.ResponseWriter) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})
	svc := NewCoachService(client, testRules(), nil)

	reply, err := svc.Reply(context.Background(), responder.ResponseMotivation, domain.PersonalityLevel{Fierceness: 3, Style: 0}, essayContext)

	require.NoError(t, err)
	assert.Equal(t, SourceRules, reply.Source)
	assert.Contains(t, reply.Text, "50%")
}
