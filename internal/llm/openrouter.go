package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	openrouterChatURL      = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel = "google/gemini-flash-1.5"
)

// shared HTTP client for OpenRouter API calls
// reuses connection pool and timeout configuration
var openrouterHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// instruction prefix per paraphrasing mode
var modeInstructions = map[string]string{
	ModeStandard: "Paraphrase the following text while keeping its meaning intact.",
	ModeFormal:   "Paraphrase the following text in a formal, professional tone.",
	ModeCasual:   "Paraphrase the following text in a casual, conversational tone.",
	ModeAcademic: "Paraphrase the following text in an academic style with precise wording.",
	ModeCreative: "Paraphrase the following text creatively, varying sentence structure and word choice.",
	ModeSimplify: "Paraphrase the following text in simpler words that are easy to understand.",
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// calls the OpenRouter chat completions API
type OpenRouterClient struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewOpenRouterClient(config Config) *OpenRouterClient {
	if config.Model == "" {
		config.Model = defaultOpenRouterModel
	}

	return &OpenRouterClient{
		config:     config,
		httpClient: openrouterHTTPClient,
		// keep outbound traffic under the provider's rate limits
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// rewrites text in the requested mode; unknown modes fall back to
// standard paraphrasing
func (c *OpenRouterClient) Paraphrase(ctx context.Context, text, mode string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	instruction, ok := modeInstructions[mode]
	if !ok {
		instruction = modeInstructions[ModeStandard]
	}

	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: instruction + " Reply with the paraphrased text only."},
			{Role: "user", Content: text},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openrouterChatURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
}
