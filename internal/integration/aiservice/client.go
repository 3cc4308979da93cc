// Package aiservice is a typed client for the external AI service that
// generates interview questions and scores resumes. The service is an
// opaque collaborator; this client only shapes requests and responses.
package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hirepulse/internal/app"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: trimmed, httpClient: httpClient}
}

type generateQuestionsRequest struct {
	Role           string `json:"role"`
	JobDescription string `json:"job_description"`
}

type generateQuestionsResponse struct {
	Questions app.QuestionSet `json:"questions"`
}

func (c *Client) GenerateQuestions(ctx context.Context, role, jobDescription string) (*app.QuestionSet, error) {
	payload := generateQuestionsRequest{Role: role, JobDescription: jobDescription}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode questions request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/interview/generate_questions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create questions request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send questions request: %w", err)
	}
	defer resp.Body.Close()
	payloadBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read questions response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		message := strings.TrimSpace(string(payloadBytes))
		if message == "" {
			message = resp.Status
		}
		return nil, fmt.Errorf("ai service error: %s", message)
	}
	var parsed generateQuestionsResponse
	if err := json.Unmarshal(payloadBytes, &parsed); err != nil {
		return nil, fmt.Errorf("decode questions response: %w", err)
	}
	return &parsed.Questions, nil
}
