package aiservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateQuestions(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"questions":{"technical_questions":["T1","T2"],"behavioral_questions":["B1"]}}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL+"/", nil)
	set, err := client.GenerateQuestions(context.Background(), "Backend Engineer", "Build APIs")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotPath != "/api/interview/generate_questions" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["role"] != "Backend Engineer" || gotBody["job_description"] != "Build APIs" {
		t.Fatalf("unexpected request body %v", gotBody)
	}
	if len(set.TechnicalQuestions) != 2 || len(set.BehavioralQuestions) != 1 {
		t.Fatalf("unexpected question set %+v", set)
	}
}

func TestGenerateQuestions_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, nil)
	_, err := client.GenerateQuestions(context.Background(), "Backend Engineer", "Build APIs")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("expected upstream message to surface, got %v", err)
	}
}
