// Package gemini はGoogle Gemini APIを使用したテキスト生成クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"alphadesk/internal/feature/insight/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiGenerator はGoogle Gemini APIを使用して市場解説テキストを生成します。
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// GeminiGeneratorがTextGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator はAPIキー認証でGeminiGeneratorの新しいインスタンスを生成します。
// apiKeyが空でもクライアント生成は許可し、呼び出し時に認証エラーとして失敗させます。
// modelが空の場合はDefaultModelを使用します。
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate はプロンプトからテキストを生成して返します。
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
