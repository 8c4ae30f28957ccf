// Package generator produces flashcards and quiz questions from note text
// using an OpenAI-compatible chat completions API (OpenRouter by default).
//
// Generation never fails loudly: any network, API or parse error is logged
// and an empty slice is returned, which callers treat as "no result".
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/andrewpaige1/flashlearn-api/models"
)

const (
	DefaultEndpoint = "https://openrouter.ai/api/v1"
	DefaultModel    = "openai/gpt-3.5-turbo"
	DefaultTimeout  = 60 * time.Second
)

// Config holds generation service settings.
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// Client talks to the chat completions endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a Client, filling unset fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateFlashcards asks for five flashcards covering noteContent.
func (c *Client) GenerateFlashcards(ctx context.Context, noteContent string) []models.Card {
	content, err := c.complete(ctx, []message{
		{
			Role: "system",
			Content: "You are a helpful assistant that generates flashcards for studying. " +
				"Format your response as a JSON array of objects with 'front' and 'back' properties.",
		},
		{
			Role:    "user",
			Content: "Generate 5 flashcards from the following note: " + PlainText(noteContent),
		},
	})
	if err != nil {
		log.Printf("GenerateFlashcards: %v", err)
		return []models.Card{}
	}

	cards, err := parseArray[models.Card](content, fencedJSON, bareArray, wholeBody)
	if err != nil {
		log.Printf("GenerateFlashcards: unable to parse flashcards from API response: %v", err)
		return []models.Card{}
	}
	return cards
}

// GenerateQuiz asks for five four-option multiple-choice questions.
func (c *Client) GenerateQuiz(ctx context.Context, noteContent string) []models.QuizQuestion {
	content, err := c.complete(ctx, []message{
		{
			Role:    "system",
			Content: "You are a helpful assistant that creates quiz questions from study notes.",
		},
		{
			Role: "user",
			Content: "Generate 5 multiple-choice quiz questions with 4 options each from these notes: " +
				PlainText(noteContent) +
				". Return them in a JSON array of objects with fields: question, options (array of strings), " +
				"and correctAnswer (0-indexed number). Only return valid JSON, nothing else.",
		},
	})
	if err != nil {
		log.Printf("GenerateQuiz: %v", err)
		return []models.QuizQuestion{}
	}

	questions, err := parseArray[models.QuizQuestion](strings.TrimSpace(content), wholeBody, fencedAny)
	if err != nil {
		log.Printf("GenerateQuiz: failed to parse quiz questions from API response: %v", err)
		return []models.QuizQuestion{}
	}
	return questions
}

func (c *Client) complete(ctx context.Context, messages []message) (string, error) {
	body, err := json.Marshal(chatRequest{Model: c.config.Model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}
