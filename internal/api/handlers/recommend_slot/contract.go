package recommend_slot

import (
	"context"

	recommendSlot "github.com/Lingges29/mypark/internal/usecase/recommend_slot"
)

type RecommendSlotUseCase interface {
	Execute(ctx context.Context) (*recommendSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
