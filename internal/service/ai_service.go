package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"aluno_ai_backend/internal/config"
)

const defaultAIModel = "gpt-4o-mini"

// AIService is a thin client for any OpenAI-compatible chat completion
// endpoint. The API key is resolved per request: the config file wins, then
// the OPENAI_API_KEY environment variable, then a key set at runtime by an
// admin. Config can be swapped at runtime by the config watcher.
type AIService struct {
	mu         sync.RWMutex
	config     config.AIConfig
	runtimeKey string

	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Stream      bool            `json:"stream,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
		Delta   AIChatMessage `json:"delta"` // streaming responses
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// UpdateConfig replaces the endpoint configuration, used for hot reload.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

// SetRuntimeKey stores an API key supplied through the settings endpoint.
func (s *AIService) SetRuntimeKey(key string) {
	s.mu.Lock()
	s.runtimeKey = strings.TrimSpace(key)
	s.mu.Unlock()
}

// ClearRuntimeKey removes the runtime key.
func (s *AIService) ClearRuntimeKey() {
	s.mu.Lock()
	s.runtimeKey = ""
	s.mu.Unlock()
}

// resolveKey picks the API key by priority: config file, environment,
// runtime-supplied.
func (s *AIService) resolveKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config.APIKey != "" {
		return s.config.APIKey
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return s.runtimeKey
}

// Available reports whether a key is configured through any source.
func (s *AIService) Available() bool {
	return s.resolveKey() != ""
}

func (s *AIService) endpoint() (baseURL, model string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	model = s.config.Model
	if model == "" {
		model = defaultAIModel
	}
	return s.config.BaseURL, model
}

// Chat performs one blocking completion call.
func (s *AIService) Chat(ctx context.Context, system string, messages []AIChatMessage, temperature float64, maxTokens int) (string, error) {
	baseURL, model := s.endpoint()

	reqBody := ChatCompletionRequest{
		Model:       model,
		Messages:    append([]AIChatMessage{{Role: "system", Content: system}}, messages...),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.resolveKey())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// ChatStream performs a streaming completion call, sending content deltas on
// the returned channel.
func (s *AIService) ChatStream(ctx context.Context, system string, messages []AIChatMessage, temperature float64, maxTokens int) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	baseURL, model := s.endpoint()
	reqBody := ChatCompletionRequest{
		Model:       model,
		Messages:    append([]AIChatMessage{{Role: "system", Content: system}}, messages...),
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      true,
	}
	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
		if err != nil {
			errChan <- err
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.resolveKey())

		resp, err := s.client.Do(req)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp ChatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				content := streamResp.Choices[0].Delta.Content
				if content != "" {
					out <- content
				}
			}
		}
	}()

	return out, errChan
}
