package feedback

import (
	"sync"

	"go.uber.org/zap"

	"nourish-generator/internal/pkg/common"
)

// 允許的回饋類型
const (
	TypeLike    = "like"
	TypeDislike = "dislike"
)

// Service 食譜回饋的行程內計數器。
// 重啟即歸零，正式持久化前先靠這個觀察喜好趨勢。
type Service struct {
	mu       sync.Mutex
	likes    int64
	dislikes int64
}

// NewService 建立回饋服務
func NewService() *Service {
	return &Service{}
}

// Record 記錄一筆回饋，類型不合法時回傳驗證錯誤
func (s *Service) Record(feedbackType, recipeTitle string) error {
	switch feedbackType {
	case TypeLike:
		s.mu.Lock()
		s.likes++
		s.mu.Unlock()
	case TypeDislike:
		s.mu.Lock()
		s.dislikes++
		s.mu.Unlock()
	default:
		return common.NewValidationError(`Invalid feedback type. Must be "like" or "dislike"`)
	}

	common.LogInfo("收到食譜回饋",
		zap.String("類型", feedbackType),
		zap.String("食譜", recipeTitle),
	)
	return nil
}

// Totals 回傳目前的回饋統計
func (s *Service) Totals() (likes, dislikes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes, s.dislikes
}
