package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"exam-article-api/pkg/errors"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider 基于 Google Gemini SDK 的提供商适配器
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider 创建 Gemini 提供商
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (*Result, error) {
	config := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}

	// Gemini 的系统指令单独下发，不混入对话内容
	var contents []*genai.Content
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			config.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: m.Content}},
			}
			continue
		}
		role := genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	start := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	latency := time.Since(start)
	if err != nil {
		return nil, errors.NewProviderCallFailed(p.Name(), err)
	}

	res := &Result{
		Content:  strings.TrimSpace(result.Text()),
		Model:    p.model,
		Provider: p.Name(),
		Latency:  latency,
	}

	// Gemini 可能不返回用量统计，此时保持零值
	if result.UsageMetadata != nil {
		res.Usage = Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return res, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}
