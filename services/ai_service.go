// services/ai_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

// ErrAINotConfigured is returned when no API key is set; the UI hides the
// generation buttons in that case.
var ErrAINotConfigured = errors.New("AI API key not configured")

// Generation modes for GenerateTranslation.
const (
	TranslationModeNormal  = "normal"  // source language -> Chinese
	TranslationModeReverse = "reverse" // Chinese -> English
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// AIService wraps an OpenAI-compatible chat-completions endpoint.
type AIService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewAIService() *AIService {
	baseURL := os.Getenv("AI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.poe.com/v1"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "Claude-Haiku-4.5"
	}
	return &AIService{
		apiKey:  os.Getenv("AI_API_KEY"),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateSample produces one simple sentence using the word verbatim.
func (s *AIService) GenerateSample(ctx context.Context, word, model string) (string, error) {
	prompt := fmt.Sprintf(`Create a simple, natural English sentence that uses the EXACT word or phrase "%s" (including all words as shown). You must use "%s" exactly as written, not variations or partial matches. Use simple language and vocabulary suitable for a high school student. Keep the sentence short and easy to understand. Only output the sentence, nothing else.`, word, word)
	return s.complete(ctx, model, prompt)
}

// GenerateTranslation produces the two most common translations of a word,
// Chinese by default, or English when mode is reverse.
func (s *AIService) GenerateTranslation(ctx context.Context, word, model, mode string) (string, error) {
	var prompt string
	if mode == TranslationModeReverse {
		prompt = fmt.Sprintf("What is the English translation for the Chinese word '%s'? Only list the 2 most common English words or short phrases. Separate them with a Chinese comma (，). Do not include any other explanations. Ensure both words begin with lowercase letters.", word)
	} else {
		prompt = fmt.Sprintf("What's the Chinese translation of '%s'? Only list the 2 most common translations and ignore others. Separate them with a Chinese comma (，). Only list the translations in Chinese characters, no other explanations or phonetics are needed.", word)
	}
	return s.complete(ctx, model, prompt)
}

func (s *AIService) complete(ctx context.Context, model, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", ErrAINotConfigured
	}
	if model == "" {
		model = s.model
	}

	body, _ := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI endpoint returned status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", errors.New("AI returned empty response")
	}

	return CleanModelOutput(out.Choices[0].Message.Content), nil
}

var thinkingHeader = regexp.MustCompile(`(?i)^[\s*]*Thinking\.\.\.[\s*]*$`)

// CleanModelOutput strips "Thinking..." preambles some reasoning models
// emit: everything up to the last markdown blockquote line, plus a bare
// Thinking... header line if one leads the remainder.
func CleanModelOutput(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")

	lastQuote := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			lastQuote = i
		}
	}
	if lastQuote != -1 {
		lines = lines[lastQuote+1:]
	}

	if len(lines) > 0 && thinkingHeader.MatchString(strings.TrimSpace(lines[0])) {
		lines = lines[1:]
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
