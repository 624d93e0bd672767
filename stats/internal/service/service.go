package service

import (
	"context"

	"github.com/campuskit/lending-service/pkg/kafka"
	"github.com/campuskit/lending-service/stats/internal/model"
	statsRepo "github.com/campuskit/lending-service/stats/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// GetStats rolls up consumed events per requester.
func (s *Service) GetStats(ctx context.Context) (model.StatsInfo, error) {
	return s.repo.GetStats(ctx)
}

// Stats used by kafka consumer.
func (s *Service) Stats(ctx context.Context, event kafka.EventRequest) error {
	return s.repo.Stats(ctx, event)
}
