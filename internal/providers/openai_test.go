package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calcbot/calcbot/internal/schema"
)

// chatServer returns an httptest server answering /chat/completions with the
// given content, recording the request bodies it sees.
func chatServer(t *testing.T, content string, requests *[]map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if requests != nil {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			*requests = append(*requests, body)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{
					"message":       map[string]any{"content": content},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestChat_ParsesResponse(t *testing.T) {
	var requests []map[string]any
	srv := chatServer(t, `{"name": "multiply", "arguments": {"x": 5, "y": 3}}`, &requests)
	defer srv.Close()

	c := NewClient(srv.URL, "", "phi")
	resp, err := c.Chat(context.Background(),
		[]schema.Message{schema.NewSystemMessage("sys"), schema.NewUserMessage("what's 5 times 3")},
		schema.NewChatOptions("phi", 512, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `{"name": "multiply", "arguments": {"x": 5, "y": 3}}` {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("unexpected finish reason: %q", resp.FinishReason)
	}
	if resp.Usage["total_tokens"] != 15 {
		t.Errorf("unexpected usage: %v", resp.Usage)
	}

	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0]["model"] != "phi" {
		t.Errorf("unexpected model in request: %v", requests[0]["model"])
	}
	msgs, _ := requests[0]["messages"].([]any)
	if len(msgs) != 2 {
		t.Errorf("expected 2 messages, got %d", len(msgs))
	}
}

func TestChat_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "phi")
	_, err := c.Chat(context.Background(),
		[]schema.Message{schema.NewUserMessage("hi")},
		schema.NewChatOptions("phi", 0, 0))
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestChat_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "phi")
	_, err := c.Chat(context.Background(),
		[]schema.Message{schema.NewUserMessage("hi")},
		schema.NewChatOptions("phi", 0, 0))
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestProbe_Success(t *testing.T) {
	srv := chatServer(t, "ok", nil)
	defer srv.Close()

	c := NewClient(srv.URL, "", "phi")
	if err := c.Probe(context.Background()); err != nil {
		t.Fatalf("unexpected probe error: %v", err)
	}
}

func TestProbe_Unreachable(t *testing.T) {
	// Port 1 is never listening.
	c := NewClient("http://127.0.0.1:1", "", "phi")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Probe(ctx); err == nil {
		t.Fatal("expected probe failure against closed port")
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "phi"}, {"id": "llama3.2"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "phi")
	ids, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "phi" || ids[1] != "llama3.2" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestConnect_SucceedsFirstAttempt(t *testing.T) {
	srv := chatServer(t, "ok", nil)
	defer srv.Close()

	var slept []time.Duration
	policy := RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second, Sleep: func(d time.Duration) { slept = append(slept, d) }}

	c, err := Connect(context.Background(), srv.URL, "", "phi", policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil {
		t.Fatal("expected client")
	}
	if len(slept) != 0 {
		t.Errorf("expected no sleeps on first-attempt success, got %d", len(slept))
	}
}

func TestConnect_ExhaustsRetries(t *testing.T) {
	var slept []time.Duration
	policy := RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second, Sleep: func(d time.Duration) { slept = append(slept, d) }}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Connect(ctx, "http://127.0.0.1:1", "", "phi", policy)
	if err == nil {
		t.Fatal("expected terminal error")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *InitError, got %T: %v", err, err)
	}
	if initErr.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", initErr.Attempts)
	}
	// Sleeps happen between attempts, not after the last one.
	if len(slept) != 2 {
		t.Errorf("expected 2 sleeps, got %d", len(slept))
	}
	for _, d := range slept {
		if d != 2*time.Second {
			t.Errorf("expected 2s delay, got %v", d)
		}
	}
}

func TestConnect_RecoversOnLaterAttempt(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}, "finish_reason": "stop"}},
		})
	}))
	defer srv.Close()

	policy := RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond, Sleep: func(time.Duration) {}}
	c, err := Connect(context.Background(), srv.URL, "", "phi", policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil {
		t.Fatal("expected client after recovery")
	}
	if calls != 3 {
		t.Errorf("expected 3 probe calls, got %d", calls)
	}
}
