package gemini

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"nourish-generator/internal/infrastructure/config"
)

// Client Gemini generateContent REST API 的薄封裝
type Client struct {
	http   *resty.Client
	apiKey string
	model  string
	cfg    *config.GeminiConfig
}

// NewClient 建立 Gemini 客戶端
func NewClient(cfg *config.GeminiConfig) *Client {
	// 每個請求只打一次模型，失敗直接回報，不做重試
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   httpClient,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		cfg:    cfg,
	}
}

// generateRequest 對應 generateContent 的請求格式
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateResponse 對應 generateContent 的回應格式，只解我們需要的欄位
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateContent 送出提示詞並回傳模型生成的文字
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			TopK:            c.cfg.TopK,
			TopP:            c.cfg.TopP,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}

	var result generateResponse
	var errBody struct {
		Error *apiError `json:"error"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(reqBody).
		SetResult(&result).
		SetError(&errBody).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		if errBody.Error != nil {
			return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode(), errBody.Error.Message)
		}
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidates")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("gemini response candidate is empty")
	}
	return text, nil
}
