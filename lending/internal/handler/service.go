package handler

import (
	"context"

	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/campuskit/lending-service/lending/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type EquipmentService interface {
	CreateEquipment(ctx context.Context, req model.CreateEquipmentRequest) (model.Equipment, error)
	GetEquipment(ctx context.Context, equipmentUid string) (model.Equipment, error)
	ListEquipment(ctx context.Context, filter model.EquipmentFilter) (model.ListEquipment, error)
	UpdateEquipment(ctx context.Context, equipmentUid string, upd model.UpdateEquipmentRequest) (model.Equipment, error)
	AdjustCapacity(ctx context.Context, equipmentUid string, req model.AdjustCapacityRequest) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, equipmentUid string) error
	ListCategories(ctx context.Context) ([]string, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, req model.CreateRequestRequest) (model.EquipmentRequest, error)
	GetMyRequests(ctx context.Context, username string, status model.Status) ([]model.RequestView, error)
	ListRequests(ctx context.Context, filter model.RequestFilter) (model.ListRequests, error)
	PendingRequests(ctx context.Context, page, size int) (model.ListRequests, error)
	Approve(ctx context.Context, requestUid, approverUsername, notes string) (model.RequestView, error)
	Deny(ctx context.Context, requestUid, approverUsername, reason string) (model.RequestView, error)
	Cancel(ctx context.Context, requestUid, requesterUsername string) error
	Return(ctx context.Context, requestUid string) (model.RequestView, error)
	Statistics(ctx context.Context) (model.Statistics, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, req model.UserCreateRequest) error
	GetUser(ctx context.Context, username string) (model.User, error)
}

var (
	_ EquipmentService = (*service.Service)(nil)
	_ RequestService   = (*service.Service)(nil)
	_ AuthService      = (*service.Service)(nil)
)
