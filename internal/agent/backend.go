package agent

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Iron-Ham/sixgun/internal/config"
	"github.com/Iron-Ham/sixgun/internal/errors"
)

// BackendName identifies a supported decision backend.
type BackendName string

const (
	BackendGemini   BackendName = "gemini"
	BackendScripted BackendName = "scripted"
)

// NewFromConfig builds an Agent for one player descriptor. The player's
// script lines are only meaningful for the scripted backend.
func NewFromConfig(ctx context.Context, player config.PlayerConfig, cfg config.AgentConfig) (Agent, error) {
	switch strings.ToLower(player.Backend) {
	case string(BackendGemini), "":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, errors.NewAgentError("GEMINI_API_KEY is not set", nil).WithBackend(string(BackendGemini))
		}
		return NewGemini(ctx, apiKey, cfg.Model)
	case string(BackendScripted):
		return NewScripted(player.Name, player.Script), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownBackend, player.Backend)
	}
}

// Gemini is an Agent backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini agent. Close releases the underlying client.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.NewAgentError("create client", err).WithBackend(string(BackendGemini))
	}
	if model == "" {
		model = "gemini-2.5-pro"
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Name() string { return string(BackendGemini) }

func (g *Gemini) Respond(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.NewAgentError("generate content", err).WithBackend(string(BackendGemini))
	}
	text := responseText(resp)
	if text == "" {
		return "", errors.NewAgentError("empty response", nil).WithBackend(string(BackendGemini))
	}
	return text, nil
}

// Close releases the API client.
func (g *Gemini) Close() error { return g.client.Close() }

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}

// Scripted is an Agent that replays a fixed list of responses in order.
// It backs offline play and tests. Once the script runs out it keeps
// returning the final line, so a short script yields a stable endgame.
type Scripted struct {
	mu        sync.Mutex
	name      string
	responses []string
	next      int
}

// NewScripted creates a scripted agent. An empty script responds with an
// empty string, which the tolerant parser resolves to the default
// decision (no item, silent, fire opponent).
func NewScripted(name string, responses []string) *Scripted {
	return &Scripted{name: name, responses: responses}
}

func (s *Scripted) Name() string { return string(BackendScripted) }

func (s *Scripted) Respond(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.responses) == 0 {
		return "", nil
	}
	resp := s.responses[s.next]
	if s.next < len(s.responses)-1 {
		s.next++
	}
	return resp, nil
}
