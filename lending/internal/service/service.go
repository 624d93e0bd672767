package service

import (
	"context"
	"strings"
	"time"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/campuskit/lending-service/lending/internal/repository"
	"github.com/campuskit/lending-service/pkg/auth"
	"github.com/campuskit/lending-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	log   *zap.Logger
	repo  repository.Repository
	enq   Enqueuer
	topic string
}

func NewService(repo repository.Repository, enq Enqueuer, topic string, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		enq:   enq,
		topic: topic,
	}
}

func (s *Service) publish(event kafka.EventType, req model.EquipmentRequest, equipmentUid, requester string) {
	msg := kafka.EventRequest{
		Type:         event,
		RequestUid:   req.RequestUid,
		EquipmentUid: equipmentUid,
		Requester:    requester,
		Quantity:     req.Quantity,
		Status:       string(req.Status),
		At:           time.Now().UTC(),
	}
	if err := s.enq.Enqueue(s.topic, msg); err != nil {
		s.log.Warn("publish event", zap.String("type", string(event)), zap.Error(err))
	}
}

func (s *Service) CreateEquipment(ctx context.Context, req model.CreateEquipmentRequest) (model.Equipment, error) {
	available := req.Quantity
	if req.AvailableQuantity != nil {
		available = *req.AvailableQuantity
	}
	if err := model.ValidateCapacity(req.Quantity, available); err != nil {
		return model.Equipment{}, err
	}
	return s.repo.CreateEquipment(ctx, model.Equipment{
		Name:              req.Name,
		Category:          req.Category,
		Condition:         req.Condition,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		Quantity:          req.Quantity,
		AvailableQuantity: available,
	})
}

func (s *Service) GetEquipment(ctx context.Context, equipmentUid string) (model.Equipment, error) {
	return s.repo.GetEquipment(ctx, equipmentUid)
}

func (s *Service) ListEquipment(ctx context.Context, filter model.EquipmentFilter) (model.ListEquipment, error) {
	return s.repo.ListEquipment(ctx, filter)
}

func (s *Service) UpdateEquipment(ctx context.Context, equipmentUid string, upd model.UpdateEquipmentRequest) (model.Equipment, error) {
	return s.repo.UpdateEquipment(ctx, equipmentUid, upd)
}

func (s *Service) AdjustCapacity(ctx context.Context, equipmentUid string, req model.AdjustCapacityRequest) (model.Equipment, error) {
	return s.repo.AdjustCapacity(ctx, equipmentUid, req.Quantity, req.AvailableQuantity)
}

func (s *Service) DeleteEquipment(ctx context.Context, equipmentUid string) error {
	return s.repo.DeleteEquipment(ctx, equipmentUid)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateRequest(ctx context.Context, req model.CreateRequestRequest) (model.EquipmentRequest, error) {
	if req.RequiredDate.IsZero() {
		return model.EquipmentRequest{}, errors.Wrap(errs.ErrValidation, "requiredDate is required")
	}
	if strings.TrimSpace(req.Purpose) == "" {
		return model.EquipmentRequest{}, errors.Wrap(errs.ErrValidation, "purpose is required")
	}
	requester, err := s.repo.GetUser(ctx, req.Username)
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	created, err := s.repo.CreateRequest(ctx, req, requester.ID)
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	s.publish(kafka.EventRequestCreated, created, req.EquipmentUid, req.Username)
	return created, nil
}

func (s *Service) GetMyRequests(ctx context.Context, username string, status model.Status) ([]model.RequestView, error) {
	return s.repo.ListByRequester(ctx, username, status)
}

func (s *Service) ListRequests(ctx context.Context, filter model.RequestFilter) (model.ListRequests, error) {
	return s.repo.ListRequests(ctx, filter)
}

func (s *Service) PendingRequests(ctx context.Context, page, size int) (model.ListRequests, error) {
	return s.repo.ListRequests(ctx, model.RequestFilter{
		Status: model.StatusPending,
		Page:   page,
		Size:   size,
	})
}

// Approve runs the reservation transition: it is the only operation that
// commits stock. On any failure the request stays PENDING and inventory is
// untouched.
func (s *Service) Approve(ctx context.Context, requestUid, approverUsername, notes string) (model.RequestView, error) {
	approver, err := s.repo.GetUser(ctx, approverUsername)
	if err != nil {
		return model.RequestView{}, err
	}
	approved, err := s.repo.ApproveRequest(ctx, requestUid, approver.ID, notes)
	if err != nil {
		return model.RequestView{}, err
	}
	view, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return model.RequestView{}, err
	}
	s.publish(kafka.EventRequestApproved, approved, view.EquipmentUid, view.RequesterName)
	return view, nil
}

func (s *Service) Deny(ctx context.Context, requestUid, approverUsername, reason string) (model.RequestView, error) {
	if strings.TrimSpace(reason) == "" {
		return model.RequestView{}, errors.Wrap(errs.ErrValidation, "denial reason is required")
	}
	approver, err := s.repo.GetUser(ctx, approverUsername)
	if err != nil {
		return model.RequestView{}, err
	}
	denied, err := s.repo.DenyRequest(ctx, requestUid, approver.ID, reason)
	if err != nil {
		return model.RequestView{}, err
	}
	view, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return model.RequestView{}, err
	}
	s.publish(kafka.EventRequestDenied, denied, view.EquipmentUid, view.RequesterName)
	return view, nil
}

func (s *Service) Cancel(ctx context.Context, requestUid, requesterUsername string) error {
	requester, err := s.repo.GetUser(ctx, requesterUsername)
	if err != nil {
		return err
	}
	cancelled, err := s.repo.CancelRequest(ctx, requestUid, requester.ID)
	if err != nil {
		return err
	}
	s.publish(kafka.EventRequestCancelled, cancelled, "", requesterUsername)
	return nil
}

func (s *Service) Return(ctx context.Context, requestUid string) (model.RequestView, error) {
	returned, err := s.repo.ReturnRequest(ctx, requestUid)
	if err != nil {
		return model.RequestView{}, err
	}
	view, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return model.RequestView{}, err
	}
	s.publish(kafka.EventRequestReturned, returned, view.EquipmentUid, view.RequesterName)
	return view, nil
}

func (s *Service) Statistics(ctx context.Context) (model.Statistics, error) {
	var stats model.Statistics
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		requests, err := s.repo.RequestStatistics(ctx)
		if err != nil {
			return err
		}
		stats.Requests = requests
		return nil
	})
	gg.Go(func() error {
		equipment, err := s.repo.EquipmentStatistics(ctx)
		if err != nil {
			return err
		}
		stats.Equipment = equipment
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.Statistics{}, err
	}
	return stats, nil
}

func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) error {
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		return errors.Wrap(errs.ErrValidation, err.Error())
	}
	_, err = s.repo.CreateUser(ctx, model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     string(role),
	})
	return err
}

func (s *Service) GetUser(ctx context.Context, username string) (model.User, error) {
	return s.repo.GetUser(ctx, username)
}
