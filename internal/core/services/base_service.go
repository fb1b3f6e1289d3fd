package services

import (
	"context"
	"log/slog"

	"github.com/quietbooks/quietbooks/internal/middleware"
)

// BaseService provides request-scoped structured logging helpers shared by
// every service implementation.
type BaseService struct{}

func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Info(msg, args...)
}

func (s *BaseService) LogError(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Error(msg, args...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Warn(msg, args...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Debug(msg, args...)
}
