// Package gemini implements llm.Client on Google Gemini via the
// generative-ai-go SDK.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"content-optimizer/internal/llm"
)

const defaultModel = "gemini-2.0-flash-exp"

// Client implements llm.Client using Gemini.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client. Model falls back to the default
// flash model when empty.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Rewrite generates a markdown rewrite addressing the improvements and
// target parameters.
func (c *Client) Rewrite(ctx context.Context, input llm.RewriteInput) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)
	model.SetTopP(0.8)
	model.SetTopK(40)
	model.SetMaxOutputTokens(2048)

	resp, err := model.GenerateContent(ctx, genai.Text(buildRewritePrompt(input)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrRewriteService, err)
	}
	text, err := textFromResponse(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrRewriteService, err)
	}
	return text, nil
}

// GenerateAssets generates the marketing asset bundle as JSON.
func (c *Client) GenerateAssets(ctx context.Context, content string, targets llm.TargetParams) (llm.AssetBundle, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.8)
	model.SetTopP(0.9)
	model.SetTopK(40)
	model.SetMaxOutputTokens(2048)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildAssetsPrompt(content, targets)))
	if err != nil {
		return llm.AssetBundle{}, fmt.Errorf("%w: %v", llm.ErrRewriteService, err)
	}
	text, err := textFromResponse(resp)
	if err != nil {
		return llm.AssetBundle{}, fmt.Errorf("%w: %v", llm.ErrRewriteService, err)
	}

	var bundle llm.AssetBundle
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &bundle); err != nil {
		// The model occasionally ignores the MIME type and answers in
		// prose; salvage what we can instead of failing the call.
		return llm.ParseTextAssets(text), nil
	}
	return bundle, nil
}

// ExtractEntities asks the model for named entities as JSON.
func (c *Client) ExtractEntities(ctx context.Context, text string) ([]llm.Entity, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1)
	model.SetMaxOutputTokens(1024)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildEntitiesPrompt(text)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrEntityExtractionUnavailable, err)
	}
	raw, err := textFromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrEntityExtractionUnavailable, err)
	}

	var entities []llm.Entity
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &entities); err != nil {
		return nil, fmt.Errorf("%w: malformed entity JSON: %v", llm.ErrEntityExtractionUnavailable, err)
	}
	return entities, nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return b.String(), nil
}

// cleanJSONBlock strips markdown code fences the model sometimes wraps JSON
// in despite the response MIME type.
func cleanJSONBlock(text string) string {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
