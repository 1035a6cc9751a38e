package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/inference"

	"github.com/go-playground/assert/v2"
)

type capturedRequest struct {
	Path          string
	Authorization string
	Body          map[string]any
}

func newStubServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if captured != nil {
			captured.Path = r.URL.Path
			captured.Authorization = r.Header.Get("Authorization")
			_ = json.Unmarshal(raw, &captured.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatCompletion_Success(t *testing.T) {
	var captured capturedRequest
	srv := newStubServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "test-model",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": "A post about Go."}, "finish_reason": "stop"}
		]
	}`, &captured)

	client := NewChat("hf_test", srv.URL, inference.Params{
		Model:       "test-model",
		MaxTokens:   1024,
		Temperature: 0.7,
	})

	text, err := client.ChatCompletion(context.Background(), "Write about Go")

	assert.Equal(t, nil, err)
	assert.Equal(t, "A post about Go.", text)
	assert.Equal(t, "/chat/completions", captured.Path)
	assert.Equal(t, "Bearer hf_test", captured.Authorization)
	assert.Equal(t, "test-model", captured.Body["model"])
	assert.Equal(t, float64(1024), captured.Body["max_tokens"])
}

func TestChatCompletion_NoChoices(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{
		"id": "chatcmpl-2",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "test-model",
		"choices": []
	}`, nil)

	client := NewChat("hf_test", srv.URL, inference.Params{Model: "test-model"})

	_, err := client.ChatCompletion(context.Background(), "Write about Go")

	assert.Equal(t, true, errors.Is(err, inference.ErrNoContent))
}

func TestChatCompletion_APIError(t *testing.T) {
	srv := newStubServer(t, http.StatusUnauthorized, `{
		"error": {"message": "invalid token", "type": "invalid_request_error"}
	}`, nil)

	client := NewChat("bad", srv.URL, inference.Params{Model: "test-model"})

	_, err := client.ChatCompletion(context.Background(), "Write about Go")

	if err == nil {
		t.Fatal("expected error from unauthorized response")
	}
	assert.Equal(t, false, errors.Is(err, inference.ErrNoContent))
}
