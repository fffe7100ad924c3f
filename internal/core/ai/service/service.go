package service

import (
	"context"
	"fmt"
	"time"

	"nourish-generator/internal/core/ai/cache"
	"nourish-generator/internal/core/ai/gemini"
	"nourish-generator/internal/pkg/common"
)

// ContentGenerator 模型客戶端介面，方便測試替身
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Response AI 服務的統一回應
type Response struct {
	Content  string `json:"content"`
	CacheHit bool   `json:"cache_hit"`
}

// Service AI 服務，模型呼叫外包一層快取。
// 提示詞對空白與換行敏感，進快取與送模型的內容必須一字不差。
type Service struct {
	generator ContentGenerator
	cache     *cache.Manager
}

// NewService 建立 AI 服務
func NewService(client *gemini.Client, cacheManager *cache.Manager) *Service {
	return &Service{
		generator: client,
		cache:     cacheManager,
	}
}

// NewServiceWithGenerator 以自訂生成器建立 AI 服務，測試用
func NewServiceWithGenerator(generator ContentGenerator, cacheManager *cache.Manager) *Service {
	return &Service{
		generator: generator,
		cache:     cacheManager,
	}
}

// ProcessRequest 處理一次提示詞請求，優先走快取
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	requestID := common.GenerateUUID()

	if cached, err := s.cache.Get(ctx, prompt); err == nil {
		return &Response{
			Content:  cached,
			CacheHit: true,
		}, nil
	}

	start := time.Now()
	content, err := s.generator.GenerateContent(ctx, prompt)
	common.LogAICall(prompt, time.Since(start), err, requestID)
	if err != nil {
		return nil, fmt.Errorf("AI generation failed: %w", err)
	}

	if err := s.cache.Set(ctx, prompt, content); err != nil {
		// 快取寫入失敗不影響本次回應
		common.LogWarn("快取寫入失敗: " + err.Error())
	}

	return &Response{
		Content: content,
	}, nil
}
