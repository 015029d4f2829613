// Package llm 提供了调用外部生成式 AI 服务（Gemini）的客户端。
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-solution-go/internal/config"
)

// Client 定义了生成式 AI 客户端的接口。
// 对上层而言它是一个黑盒：输入提示词，返回生成文本或错误。
type Client interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type geminiClient struct {
	cfg    config.GeminiConfig
	client *http.Client
}

// NewClient 根据配置创建一个新的 Gemini 客户端。
func NewClient(cfg config.GeminiConfig) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &geminiClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate 调用 Gemini 的 generateContent 接口并返回生成的文本。
// 上游偶发失败时最多重试一次（共两次尝试），属于加固行为。
func (c *geminiClient) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	attempts := c.cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 2
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := c.generateOnce(ctx, systemPrompt, userMessage)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt < attempts {
			time.Sleep(500 * time.Millisecond)
		}
	}
	return "", lastErr
}

func (c *geminiClient) generateOnce(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	reqBody := generateRequest{
		Contents: []generateContent{
			{Role: "user", Parts: []generatePart{{Text: userMessage}}},
		},
	}
	if systemPrompt != "" {
		reqBody.SystemInstruction = &generateContent{Parts: []generatePart{{Text: systemPrompt}}}
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini api returned non-200 status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini api returned no candidates")
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
