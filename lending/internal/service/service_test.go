package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/campuskit/lending-service/lending/internal/service"
	"github.com/campuskit/lending-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/campuskit/lending-service/lending/internal/repository/mocks"
	service_mocks "github.com/campuskit/lending-service/lending/internal/service/mocks"
)

const testTopic = "lending.requests"

func newTestService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *service_mocks.MockEnqueuer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := repo_mocks.NewMockRepository(ctrl)
	enq := service_mocks.NewMockEnqueuer(ctrl)
	svc := service.NewService(repo, enq, testTopic, zap.NewExample().Named("test"))
	return svc, repo, enq
}

func TestService_CreateRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.CreateRequestRequest{
		EquipmentUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
		Quantity:     2,
		RequiredDate: model.Date{Time: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)},
		Purpose:      "robotics club demo",
		Username:     "student1",
	}

	t.Run("ok publishes created event", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		created := model.EquipmentRequest{
			RequestUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
			Quantity:   2,
			Status:     model.StatusPending,
		}
		repo.EXPECT().GetUser(ctx, "student1").Return(model.User{ID: 7, Username: "student1"}, nil)
		repo.EXPECT().CreateRequest(ctx, req, 7).Return(created, nil)
		enq.EXPECT().Enqueue(testTopic, gomock.Any()).
			DoAndReturn(func(_ string, v any) error {
				event, ok := v.(kafka.EventRequest)
				require.True(t, ok)
				require.Equal(t, kafka.EventRequestCreated, event.Type)
				require.Equal(t, created.RequestUid, event.RequestUid)
				require.Equal(t, req.EquipmentUid, event.EquipmentUid)
				require.Equal(t, "student1", event.Requester)
				return nil
			})

		got, err := svc.CreateRequest(ctx, req)
		require.NoError(t, err)
		require.Equal(t, created, got)
	})

	t.Run("empty purpose short-circuits", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		bad := req
		bad.Purpose = "   "
		_, err := svc.CreateRequest(ctx, bad)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("zero required date short-circuits", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		bad := req
		bad.RequiredDate = model.Date{}
		_, err := svc.CreateRequest(ctx, bad)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("repo failure publishes nothing", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetUser(ctx, "student1").Return(model.User{ID: 7}, nil)
		repo.EXPECT().CreateRequest(ctx, req, 7).Return(model.EquipmentRequest{}, errs.ErrDuplicatePending)
		_, err := svc.CreateRequest(ctx, req)
		require.ErrorIs(t, err, errs.ErrDuplicatePending)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().GetUser(ctx, "student1").Return(model.User{ID: 7}, nil)
		repo.EXPECT().CreateRequest(ctx, req, 7).Return(model.EquipmentRequest{RequestUid: "u"}, nil)
		enq.EXPECT().Enqueue(testTopic, gomock.Any()).Return(errors.New("broker down"))
		_, err := svc.CreateRequest(ctx, req)
		require.NoError(t, err)
	})
}

func TestService_Approve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const requestUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"

	t.Run("ok publishes approved event", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		approved := model.EquipmentRequest{RequestUid: requestUid, Quantity: 1, Status: model.StatusApproved}
		view := model.RequestView{
			EquipmentRequest: approved,
			RequesterName:    "student1",
			EquipmentUid:     "83575e12-7ce0-48ee-9931-51919ff3c9ee",
		}
		repo.EXPECT().GetUser(ctx, "teacher1").Return(model.User{ID: 3, Username: "teacher1"}, nil)
		repo.EXPECT().ApproveRequest(ctx, requestUid, 3, "pick up at lab 204").Return(approved, nil)
		repo.EXPECT().GetRequest(ctx, requestUid).Return(view, nil)
		enq.EXPECT().Enqueue(testTopic, gomock.Any()).
			DoAndReturn(func(_ string, v any) error {
				event := v.(kafka.EventRequest)
				require.Equal(t, kafka.EventRequestApproved, event.Type)
				require.Equal(t, "APPROVED", event.Status)
				return nil
			})

		got, err := svc.Approve(ctx, requestUid, "teacher1", "pick up at lab 204")
		require.NoError(t, err)
		require.Equal(t, view, got)
	})

	t.Run("insufficient stock keeps request untouched", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetUser(ctx, "teacher1").Return(model.User{ID: 3}, nil)
		repo.EXPECT().ApproveRequest(ctx, requestUid, 3, "").
			Return(model.EquipmentRequest{}, errors.Wrap(errs.ErrInsufficientStock, "only 0 of 2 available"))
		_, err := svc.Approve(ctx, requestUid, "teacher1", "")
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
	})
}

func TestService_Deny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const requestUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"

	t.Run("empty reason rejected before any repo call", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		_, err := svc.Deny(ctx, requestUid, "teacher1", "  ")
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("ok publishes denied event", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		denied := model.EquipmentRequest{RequestUid: requestUid, Status: model.StatusDenied, DenialReason: "out of service"}
		view := model.RequestView{EquipmentRequest: denied, RequesterName: "student1"}
		repo.EXPECT().GetUser(ctx, "teacher1").Return(model.User{ID: 3}, nil)
		repo.EXPECT().DenyRequest(ctx, requestUid, 3, "out of service").Return(denied, nil)
		repo.EXPECT().GetRequest(ctx, requestUid).Return(view, nil)
		enq.EXPECT().Enqueue(testTopic, gomock.Any()).Return(nil)

		got, err := svc.Deny(ctx, requestUid, "teacher1", "out of service")
		require.NoError(t, err)
		require.Equal(t, view, got)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const requestUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"

	t.Run("ok publishes cancelled event", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		cancelled := model.EquipmentRequest{RequestUid: requestUid, Status: model.StatusCancelled}
		repo.EXPECT().GetUser(ctx, "student1").Return(model.User{ID: 7}, nil)
		repo.EXPECT().CancelRequest(ctx, requestUid, 7).Return(cancelled, nil)
		enq.EXPECT().Enqueue(testTopic, gomock.Any()).
			DoAndReturn(func(_ string, v any) error {
				event := v.(kafka.EventRequest)
				require.Equal(t, kafka.EventRequestCancelled, event.Type)
				return nil
			})
		require.NoError(t, svc.Cancel(ctx, requestUid, "student1"))
	})

	t.Run("forbidden propagates", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetUser(ctx, "student2").Return(model.User{ID: 8}, nil)
		repo.EXPECT().CancelRequest(ctx, requestUid, 8).Return(model.EquipmentRequest{}, errs.ErrForbidden)
		require.ErrorIs(t, svc.Cancel(ctx, requestUid, "student2"), errs.ErrForbidden)
	})
}

func TestService_CreateEquipment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("available defaults to quantity", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().
			CreateEquipment(ctx, model.Equipment{
				Name:              "Oscilloscope",
				Category:          "Electronics",
				Condition:         model.ConditionGood,
				Quantity:          3,
				AvailableQuantity: 3,
			}).
			Return(model.Equipment{EquipmentUid: "u"}, nil)
		_, err := svc.CreateEquipment(ctx, model.CreateEquipmentRequest{
			Name:      "Oscilloscope",
			Category:  "Electronics",
			Condition: model.ConditionGood,
			Quantity:  3,
		})
		require.NoError(t, err)
	})

	t.Run("available above quantity rejected", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		available := 5
		_, err := svc.CreateEquipment(ctx, model.CreateEquipmentRequest{
			Name:              "Oscilloscope",
			Category:          "Electronics",
			Condition:         model.ConditionGood,
			Quantity:          3,
			AvailableQuantity: &available,
		})
		require.ErrorIs(t, err, errs.ErrInvalidRange)
	})
}

func TestService_Statistics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().RequestStatistics(gomock.Any()).
			Return(model.RequestStatistics{TotalRequests: 5, Pending: 2, Approved: 3}, nil)
		repo.EXPECT().EquipmentStatistics(gomock.Any()).
			Return(model.EquipmentStatistics{TotalItems: 4, TotalUnits: 12, AvailableUnits: 9, OnLoanUnits: 3}, nil)

		stats, err := svc.Statistics(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, stats.Requests.TotalRequests)
		require.Equal(t, 3, stats.Equipment.OnLoanUnits)
	})

	t.Run("either aggregate failing fails the call", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().RequestStatistics(gomock.Any()).
			Return(model.RequestStatistics{}, errors.New("db internal")).AnyTimes()
		repo.EXPECT().EquipmentStatistics(gomock.Any()).
			Return(model.EquipmentStatistics{}, nil).AnyTimes()
		_, err := svc.Statistics(ctx)
		require.Error(t, err)
	})
}

func TestService_RegisterUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("role is normalized", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().
			CreateUser(ctx, model.User{
				Username: "student1",
				Email:    "s1@school.edu",
				Password: "secret-pass",
				FullName: "First Student",
				Role:     "STUDENT",
			}).
			Return(model.User{ID: 7}, nil)
		err := svc.RegisterUser(ctx, model.UserCreateRequest{
			Username: "student1",
			Password: "secret-pass",
			Email:    "s1@school.edu",
			FullName: "First Student",
			Role:     "student",
		})
		require.NoError(t, err)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		err := svc.RegisterUser(ctx, model.UserCreateRequest{
			Username: "x",
			Password: "secret-pass",
			Email:    "x@school.edu",
			FullName: "X",
			Role:     "PRINCIPAL",
		})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
