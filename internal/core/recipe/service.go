package recipe

import (
	"context"
	"strings"

	"go.uber.org/zap"

	aiservice "nourish-generator/internal/core/ai/service"
	"nourish-generator/internal/pkg/common"
)

// Result 一次生成的完整結果，原始回應保留給前端除錯面板
type Result struct {
	Recipes     []common.Recipe
	RawResponse string
	Requested   int
	CacheHit    bool
}

// Service 食譜生成服務，提示詞組裝與回應解析的進出口
type Service struct {
	ai *aiservice.Service
}

// NewService 建立食譜服務
func NewService(ai *aiservice.Service) *Service {
	return &Service{ai: ai}
}

// GenerateRecipes 組提示詞、呼叫模型、解析回應。
// 模型少給食譜屬正常情況，由呼叫端決定如何告知使用者。
func (s *Service) GenerateRecipes(ctx context.Context, req *common.RecipeRequest) (*Result, error) {
	prompt := BuildRecipePrompt(req)

	resp, err := s.ai.ProcessRequest(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, common.ErrEmptyModelOutput
	}

	recipes := ParseRecipes(resp.Content, req)
	common.LogInfo("食譜解析完成",
		zap.Int("要求數量", req.RecipeCount),
		zap.Int("實際數量", len(recipes)),
		zap.Bool("快取命中", resp.CacheHit),
	)

	return &Result{
		Recipes:     recipes,
		RawResponse: resp.Content,
		Requested:   req.RecipeCount,
		CacheHit:    resp.CacheHit,
	}, nil
}
