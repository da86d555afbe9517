package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// JudgeClient talks to the external code-execution API. The backend never
// runs user code itself.
type JudgeClient struct {
	BaseURL string
	APIKey  string
	DryRun  bool
	client  *http.Client
}

type JudgeRequest struct {
	Language   string `json:"language"`
	SourceCode string `json:"source_code"`
	Stdin      string `json:"stdin"`
}

type JudgeResponse struct {
	Status string `json:"status"`
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

func NewJudgeClient(baseURL, apiKey string, dryRun bool) *JudgeClient {
	return &JudgeClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		DryRun:  dryRun,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Run executes one source against one stdin and returns (status, stdout).
func (c *JudgeClient) Run(language, sourceCode, stdin string) (string, string, error) {
	resp, err := c.Execute(JudgeRequest{Language: language, SourceCode: sourceCode, Stdin: stdin})
	if err != nil {
		return "", "", err
	}
	return resp.Status, resp.Stdout, nil
}

// Execute runs one source against one stdin. In dry-run mode (or with no
// API key configured) no HTTP request is made and the run is accepted.
func (c *JudgeClient) Execute(req JudgeRequest) (*JudgeResponse, error) {
	if c.DryRun || c.APIKey == "" {
		fmt.Printf("[judge][dry-run] lang=%s src_len=%d\n", req.Language, len(req.SourceCode))
		return &JudgeResponse{Status: "Accepted"}, nil
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal judge request: %w", err)
	}
	httpReq, err := http.NewRequest(http.MethodPost, c.BaseURL+"/submissions?wait=true", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build judge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Auth-Token", c.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("judge request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("judge returned status %d: %s", resp.StatusCode, string(body))
	}

	var result JudgeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse judge response: %w", err)
	}
	return &result, nil
}
