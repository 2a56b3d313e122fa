package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCleanModelOutput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "The apple is red.", "The apple is red."},
		{"empty", "   \n  ", ""},
		{
			"blockquote preamble",
			"> Let me think about this.\n> The user wants a sentence.\n\nThe apple is red.",
			"The apple is red.",
		},
		{
			"thinking header",
			"*Thinking...*\n\nThe apple is red.",
			"The apple is red.",
		},
		{
			"both",
			"Thinking...\n> working through the request\nThe apple is red.",
			"The apple is red.",
		},
		{
			"quote inside answer survives trailing text",
			"> preamble\nShe said \"apple\".",
			"She said \"apple\".",
		},
	}
	for _, c := range cases {
		if got := CleanModelOutput(c.in); got != c.want {
			t.Errorf("%s: CleanModelOutput(%q) = %q, want %q", c.name, c.in, got, c.want)
		}
	}
}

func TestAIServiceNotConfigured(t *testing.T) {
	svc := &AIService{client: http.DefaultClient}
	if _, err := svc.GenerateSample(context.Background(), "apple", ""); !errors.Is(err, ErrAINotConfigured) {
		t.Fatalf("err = %v, want ErrAINotConfigured", err)
	}
}

func TestAIServiceComplete(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(chatResponse{Choices: []struct {
			Message chatMessage `json:"message"`
		}{{Message: chatMessage{Role: "assistant", Content: "> thinking\nThe apple is red."}}}})
	}))
	defer server.Close()

	svc := &AIService{
		apiKey:  "test-key",
		baseURL: server.URL,
		model:   "default-model",
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	out, err := svc.GenerateSample(context.Background(), "apple", "")
	if err != nil {
		t.Fatalf("GenerateSample: %v", err)
	}
	if out != "The apple is red." {
		t.Fatalf("output = %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotReq.Model != "default-model" {
		t.Fatalf("model = %q, empty request model must fall back to the default", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || !strings.Contains(gotReq.Messages[0].Content, `"apple"`) {
		t.Fatalf("prompt = %+v", gotReq.Messages)
	}
}

func TestAIServiceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream failure", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := &AIService{
		apiKey:  "test-key",
		baseURL: server.URL,
		model:   "m",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	if _, err := svc.GenerateTranslation(context.Background(), "apple", "", TranslationModeNormal); err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
}

func TestAIServiceEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer server.Close()

	svc := &AIService{
		apiKey:  "test-key",
		baseURL: server.URL,
		model:   "m",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	if _, err := svc.GenerateSample(context.Background(), "apple", ""); err == nil {
		t.Fatal("expected an error for an empty choices list")
	}
}
