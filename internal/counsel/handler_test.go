package counsel

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"aspirebot-backend/internal/llm"
)

func newTestRouter(providers ...llm.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(providers, time.Second))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postCounsel(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/counsel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

var counselPayload = gin.H{
	"interests":       "machine learning",
	"skills_to_learn": "Python",
	"career_goals":    "become a data scientist",
}

func TestCounselEndpointReturnsBothProviders(t *testing.T) {
	router := newTestRouter(
		&fakeGenerator{name: "cohere", text: sampleReply},
		&fakeGenerator{name: "gemini", text: "Skills to Learn:\n- Go"},
	)

	resp := postCounsel(t, router, counselPayload)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Cohere Recommendation `json:"cohere_recommendation"`
		Gemini Recommendation `json:"gemini_recommendation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Cohere.CareerPaths) != 1 || body.Cohere.CareerPaths[0] != "Data Scientist: builds models" {
		t.Errorf("cohere career paths = %v", body.Cohere.CareerPaths)
	}
	if len(body.Gemini.Skills) != 1 || body.Gemini.Skills[0] != "Go" {
		t.Errorf("gemini skills = %v", body.Gemini.Skills)
	}
	if body.Gemini.CareerPaths[0] != "No career paths provided" {
		t.Errorf("gemini career paths = %v", body.Gemini.CareerPaths)
	}
}

func TestCounselEndpointRejectsMissingFields(t *testing.T) {
	router := newTestRouter(&fakeGenerator{name: "cohere", text: sampleReply})

	resp := postCounsel(t, router, gin.H{"interests": "ml"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCounselEndpointRejectsInvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeGenerator{name: "cohere", text: sampleReply})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/counsel", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCounselEndpointMarksFailedProvider(t *testing.T) {
	router := newTestRouter(
		&fakeGenerator{name: "cohere", err: errors.New("api error 401")},
		&fakeGenerator{name: "gemini", text: "Career Paths:\n1. Engineer"},
	)

	resp := postCounsel(t, router, counselPayload)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	var failed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body["cohere_recommendation"], &failed); err != nil {
		t.Fatalf("decode cohere entry: %v", err)
	}
	if failed.Error != "Failed to generate cohere recommendation." {
		t.Fatalf("unexpected failure message %q", failed.Error)
	}

	var ok Recommendation
	if err := json.Unmarshal(body["gemini_recommendation"], &ok); err != nil {
		t.Fatalf("decode gemini entry: %v", err)
	}
	if ok.CareerPaths[0] != "Engineer" {
		t.Fatalf("gemini record = %+v", ok)
	}
}

func TestCounselEndpointAllProvidersFailed(t *testing.T) {
	router := newTestRouter(
		&fakeGenerator{name: "cohere", err: errors.New("api error 401")},
		&fakeGenerator{name: "gemini", err: errors.New("api error 403")},
	)

	resp := postCounsel(t, router, counselPayload)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}
