package handler

import (
	"context"

	"github.com/campuskit/lending-service/pkg/kafka"
	statsModel "github.com/campuskit/lending-service/stats/internal/model"
	"github.com/campuskit/lending-service/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context) (statsModel.StatsInfo, error)
	Stats(ctx context.Context, event kafka.EventRequest) error
}

var _ StatsService = (*service.Service)(nil)
