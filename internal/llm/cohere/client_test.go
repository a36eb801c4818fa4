package cohere

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aspirebot-backend/internal/llm"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "command-r-plus")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = server.URL
	return client
}

func TestGenerateReturnsText(t *testing.T) {
	var gotReq chatRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(chatResponse{Text: "Career Paths:\n1. Data Scientist"})
	})

	text, err := client.Generate(context.Background(), "advise me")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Career Paths:\n1. Data Scientist" {
		t.Fatalf("unexpected text %q", text)
	}
	if gotReq.Model != "command-r-plus" || gotReq.Message != "advise me" {
		t.Fatalf("unexpected request %+v", gotReq)
	}
	if gotReq.Temperature != 0.7 || gotReq.MaxTokens != 500 {
		t.Fatalf("unexpected sampling config %+v", gotReq)
	}
}

func TestGenerateMapsErrorStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(chatResponse{Message: "quota exceeded"})
	})

	_, err := client.Generate(context.Background(), "advise me")
	if err == nil {
		t.Fatalf("expected error")
	}
	var callErr *llm.ProviderCallError
	if !errors.As(err, &callErr) {
		t.Fatalf("expected ProviderCallError, got %T", err)
	}
	if callErr.Provider != "cohere" {
		t.Fatalf("expected provider cohere, got %q", callErr.Provider)
	}
}

func TestGenerateRejectsEmptyText(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse{Text: "   "})
	})

	var callErr *llm.ProviderCallError
	if _, err := client.Generate(context.Background(), "advise me"); !errors.As(err, &callErr) {
		t.Fatalf("expected ProviderCallError for empty text, got %v", err)
	}
}

func TestNewClientRequiresConfig(t *testing.T) {
	if _, err := NewClient("", "command-r-plus"); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
