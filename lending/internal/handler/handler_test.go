package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/handler"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/campuskit/lending-service/pkg/auth"
	"github.com/campuskit/lending-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/campuskit/lending-service/lending/internal/handler/mocks"
)

func asUser(username string, role auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), username, role)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newTestHandler(t *testing.T) (*handler.Handler, *service_mocks.MockEquipmentService, *service_mocks.MockRequestService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	eqSvc := service_mocks.NewMockEquipmentService(ctrl)
	reqSvc := service_mocks.NewMockRequestService(ctrl)
	authSvc := service_mocks.NewMockAuthService(ctrl)
	h := handler.New(eqSvc, reqSvc, authSvc, zap.NewExample().Named("test"))
	return h, eqSvc, reqSvc
}

func TestHandler_CreateRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRequestService)

	requiredDate := model.Date{Time: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)}
	wantReq := model.CreateRequestRequest{
		EquipmentUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
		Quantity:     2,
		RequiredDate: requiredDate,
		Purpose:      "robotics club demo",
		Username:     "student1",
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","quantity":2,"requiredDate":"2026-09-10","purpose":"robotics club demo"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					CreateRequest(gomock.Any(), wantReq).
					Return(model.EquipmentRequest{
						RequestUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						Quantity:   2,
						Status:     model.StatusPending,
						Purpose:    "robotics club demo",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"requestUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","quantity":2,"status":"PENDING","requestDate":"0001-01-01T00:00:00Z","requiredDate":"0001-01-01T00:00:00Z","purpose":"robotics club demo"}`,
			},
		},
		{
			name:         "err. purpose required",
			body:         `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","quantity":2,"requiredDate":"2026-09-10"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name:         "err. quantity must be positive",
			body:         `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","quantity":0,"requiredDate":"2026-09-10","purpose":"robotics club demo"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. insufficient stock",
			body: `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","quantity":2,"requiredDate":"2026-09-10","purpose":"robotics club demo"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					CreateRequest(gomock.Any(), wantReq).
					Return(model.EquipmentRequest{}, errs.ErrInsufficientStock)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"insufficient equipment quantity available"}`,
			},
			wantErr: true,
		},
		{
			name: "err. duplicate pending",
			body: `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","quantity":2,"requiredDate":"2026-09-10","purpose":"robotics club demo"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					CreateRequest(gomock.Any(), wantReq).
					Return(model.EquipmentRequest{}, errs.ErrDuplicatePending)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"pending request for this equipment already exists"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, reqSvc := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/requests", h.CreateRequest, asUser("student1", auth.RoleStudent))

			r := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(reqSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_DenyRequest(t *testing.T) {
	t.Parallel()
	const requestUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRequestService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"denialReason":"out of service"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Deny(gomock.Any(), requestUid, "teacher1", "out of service").
					Return(model.RequestView{
						EquipmentRequest: model.EquipmentRequest{
							RequestUid:   requestUid,
							Quantity:     1,
							Status:       model.StatusDenied,
							Purpose:      "robotics club demo",
							DenialReason: "out of service",
						},
						RequesterName:      "student1",
						RequesterRole:      "STUDENT",
						EquipmentUid:       "83575e12-7ce0-48ee-9931-51919ff3c9ee",
						EquipmentName:      "Oscilloscope",
						EquipmentCategory:  "Electronics",
						EquipmentCondition: model.ConditionGood,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"requestUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","quantity":1,"status":"DENIED","requestDate":"0001-01-01T00:00:00Z","requiredDate":"0001-01-01T00:00:00Z","purpose":"robotics club demo","denialReason":"out of service","requesterName":"student1","requesterRole":"STUDENT","equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","equipmentName":"Oscilloscope","equipmentCategory":"Electronics","equipmentCondition":"GOOD"}`,
			},
		},
		{
			name:         "err. reason required",
			body:         `{"denialReason":""}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. already decided",
			body: `{"denialReason":"out of service"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Deny(gomock.Any(), requestUid, "teacher1", "out of service").
					Return(model.RequestView{}, errors.Wrapf(errs.ErrInvalidTransition, "request is already %s", model.StatusDenied))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"request is already DENIED: invalid status transition"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			body: `{"denialReason":"out of service"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Deny(gomock.Any(), requestUid, "teacher1", "out of service").
					Return(model.RequestView{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, reqSvc := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PUT("/requests/:requestUid/deny", h.DenyRequest, asUser("teacher1", auth.RoleTeacher))

			r := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/requests/%s/deny", requestUid), strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(reqSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ApproveRequest(t *testing.T) {
	t.Parallel()
	const requestUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRequestService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"notes":"pick up at lab 204"}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Approve(gomock.Any(), requestUid, "teacher1", "pick up at lab 204").
					Return(model.RequestView{
						EquipmentRequest: model.EquipmentRequest{
							RequestUid: requestUid,
							Quantity:   1,
							Status:     model.StatusApproved,
							Purpose:    "robotics club demo",
							Notes:      "pick up at lab 204",
						},
						RequesterName:      "student1",
						RequesterRole:      "STUDENT",
						EquipmentUid:       "83575e12-7ce0-48ee-9931-51919ff3c9ee",
						EquipmentName:      "Oscilloscope",
						EquipmentCategory:  "Electronics",
						EquipmentCondition: model.ConditionGood,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"requestUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","quantity":1,"status":"APPROVED","requestDate":"0001-01-01T00:00:00Z","requiredDate":"0001-01-01T00:00:00Z","purpose":"robotics club demo","notes":"pick up at lab 204","requesterName":"student1","requesterRole":"STUDENT","equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","equipmentName":"Oscilloscope","equipmentCategory":"Electronics","equipmentCondition":"GOOD"}`,
			},
		},
		{
			name: "err. insufficient stock",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Approve(gomock.Any(), requestUid, "teacher1", "").
					Return(model.RequestView{}, errors.Wrap(errs.ErrInsufficientStock, "only 1 of 3 available"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"only 1 of 3 available: insufficient equipment quantity available"}`,
			},
			wantErr: true,
		},
		{
			name: "err. already cancelled",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Approve(gomock.Any(), requestUid, "teacher1", "").
					Return(model.RequestView{}, errors.Wrapf(errs.ErrInvalidTransition, "request is already %s", model.StatusCancelled))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"request is already CANCELLED: invalid status transition"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, reqSvc := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PUT("/requests/:requestUid/approve", h.ApproveRequest, asUser("teacher1", auth.RoleTeacher))

			r := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/requests/%s/approve", requestUid), strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(reqSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CancelRequest(t *testing.T) {
	t.Parallel()
	const requestUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRequestService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Cancel(gomock.Any(), requestUid, "student1").
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusNoContent,
			},
		},
		{
			name: "err. someone else's request",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Cancel(gomock.Any(), requestUid, "student1").
					Return(errs.ErrForbidden)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Cancel(gomock.Any(), requestUid, "student1").
					Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name: "err. already approved",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Cancel(gomock.Any(), requestUid, "student1").
					Return(errors.Wrapf(errs.ErrInvalidTransition, "request is already %s", model.StatusApproved))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"request is already APPROVED: invalid status transition"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, reqSvc := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/requests/:requestUid", h.CancelRequest, asUser("student1", auth.RoleStudent))

			r := httptest.NewRequest(http.MethodDelete, "/requests/"+requestUid, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(reqSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ListEquipment(t *testing.T) {
	t.Parallel()
	type input struct {
		query string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockEquipmentService)

	var tests = []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name:  "ok",
			input: input{query: "?category=Electronics&available=true&page=1&size=10"},
			mockBehavior: func(r *service_mocks.MockEquipmentService) {
				r.EXPECT().
					ListEquipment(gomock.Any(), model.EquipmentFilter{
						Category:      "Electronics",
						AvailableOnly: true,
						Page:          1,
						Size:          10,
					}).
					Return(model.ListEquipment{
						Paging: model.Paging{Page: 1, PageSize: 10, TotalElements: 1},
						Items: []model.Equipment{
							{
								EquipmentUid:      "83575e12-7ce0-48ee-9931-51919ff3c9ee",
								Name:              "Oscilloscope",
								Category:          "Electronics",
								Condition:         model.ConditionGood,
								Description:       "100 MHz dual channel",
								ImageURL:          "https://example.org/scope.png",
								Quantity:          3,
								AvailableQuantity: 2,
							},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","name":"Oscilloscope","category":"Electronics","condition":"GOOD","description":"100 MHz dual channel","imageUrl":"https://example.org/scope.png","quantity":3,"availableQuantity":2}]}`,
			},
		},
		{
			name:         "err. bad available flag",
			input:        input{query: "?available=maybe"},
			mockBehavior: func(r *service_mocks.MockEquipmentService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name:  "err. internal",
			input: input{query: ""},
			mockBehavior: func(r *service_mocks.MockEquipmentService) {
				r.EXPECT().
					ListEquipment(gomock.Any(), model.EquipmentFilter{}).
					Return(model.ListEquipment{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, eqSvc, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/equipment", h.ListEquipment, asUser("student1", auth.RoleStudent))

			r := httptest.NewRequest(http.MethodGet, "/equipment"+tt.input.query, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(eqSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
