package handler

import (
	"net/http"

	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/campuskit/lending-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

// CreateRequest godoc
// @Summary  Submit a borrow request
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    input body model.CreateRequestRequest true "request"
// @Success  201 {object} model.EquipmentRequest
// @Router   /api/v1/requests [post]
func (h *Handler) CreateRequest(c echo.Context) error {
	var req model.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userName, err := auth.UserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.Username = userName

	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.requestSvc.CreateRequest(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// GetMyRequests godoc
// @Summary  List the caller's own requests, newest first
// @Tags     requests
// @Produce  json
// @Param    status query string false "status filter"
// @Success  200 {array} model.RequestView
// @Router   /api/v1/requests [get]
func (h *Handler) GetMyRequests(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	requests, err := h.requestSvc.GetMyRequests(ctx, userName, model.Status(c.QueryParam("status")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// ListRequests godoc
// @Summary  List all requests with optional filters (staff only)
// @Tags     requests
// @Produce  json
// @Param    status    query string false "status filter"
// @Param    equipment query string false "equipment uid filter"
// @Param    requester query string false "requester username filter"
// @Success  200 {object} model.ListRequests
// @Router   /api/v1/requests/all [get]
func (h *Handler) ListRequests(c echo.Context) error {
	filter := model.RequestFilter{
		Status:       model.Status(c.QueryParam("status")),
		EquipmentUid: c.QueryParam("equipment"),
		Requester:    c.QueryParam("requester"),
	}
	var err error
	if filter.Page, filter.Size, err = pageParams(c); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.requestSvc.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) PendingRequests(c echo.Context) error {
	page, size, err := pageParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.requestSvc.PendingRequests(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// ApproveRequest godoc
// @Summary  Approve a pending request and reserve its units
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    requestUid path string true "request uid"
// @Param    input body model.ApproveRequest false "approval notes"
// @Success  200 {object} model.RequestView
// @Router   /api/v1/requests/{requestUid}/approve [put]
func (h *Handler) ApproveRequest(c echo.Context) error {
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "requestUid is empty")
	}
	var req model.ApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	view, err := h.requestSvc.Approve(ctx, requestUid, userName, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// DenyRequest godoc
// @Summary  Deny a pending request
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    requestUid path string true "request uid"
// @Param    input body model.DenyRequest true "denial reason"
// @Success  200 {object} model.RequestView
// @Router   /api/v1/requests/{requestUid}/deny [put]
func (h *Handler) DenyRequest(c echo.Context) error {
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "requestUid is empty")
	}
	var req model.DenyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	view, err := h.requestSvc.Deny(ctx, requestUid, userName, req.DenialReason)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// CancelRequest godoc
// @Summary  Cancel the caller's own pending request
// @Tags     requests
// @Param    requestUid path string true "request uid"
// @Success  204
// @Router   /api/v1/requests/{requestUid} [delete]
func (h *Handler) CancelRequest(c echo.Context) error {
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "requestUid is empty")
	}
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err := h.requestSvc.Cancel(ctx, requestUid, userName); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReturnRequest godoc
// @Summary  Close an approved loan and release its units back to stock
// @Tags     requests
// @Param    requestUid path string true "request uid"
// @Success  200 {object} model.RequestView
// @Router   /api/v1/requests/{requestUid}/return [post]
func (h *Handler) ReturnRequest(c echo.Context) error {
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "requestUid is empty")
	}
	view, err := h.requestSvc.Return(c.Request().Context(), requestUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// Statistics godoc
// @Summary  Aggregate request and inventory counters
// @Tags     requests
// @Produce  json
// @Success  200 {object} model.Statistics
// @Router   /api/v1/requests/statistics [get]
func (h *Handler) Statistics(c echo.Context) error {
	stats, err := h.requestSvc.Statistics(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
