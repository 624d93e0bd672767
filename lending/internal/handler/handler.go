package handler

import (
	"net/http"
	"strconv"

	md "github.com/campuskit/lending-service/pkg/middleware"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/campuskit/lending-service/pkg/auth"
	"github.com/campuskit/lending-service/pkg/validate"
	_ "github.com/campuskit/lending-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	equipmentSvc EquipmentService
	requestSvc   RequestService
	authSvc      AuthService
	log          *zap.Logger
}

func New(equipmentSvc EquipmentService, requestSvc RequestService, authSvc AuthService, log *zap.Logger) *Handler {
	return &Handler{
		equipmentSvc: equipmentSvc,
		requestSvc:   requestSvc,
		authSvc:      authSvc,
		log:          log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/authorize", h.Authorize)

	authed := api.Group("", md.JwtAuthentication)
	staff := authed.Group("", md.RequireRoles(auth.RoleTeacher, auth.RoleAdmin))
	admin := authed.Group("", md.RequireRoles(auth.RoleAdmin))
	requesters := authed.Group("", md.RequireRoles(auth.RoleStudent, auth.RoleTeacher))

	authed.GET("/equipment", h.ListEquipment)
	authed.GET("/equipment/categories", h.ListCategories)
	authed.GET("/equipment/:equipmentUid", h.GetEquipment)
	admin.POST("/equipment", h.CreateEquipment)
	admin.PATCH("/equipment/:equipmentUid", h.UpdateEquipment)
	admin.PUT("/equipment/:equipmentUid/capacity", h.AdjustCapacity)
	admin.DELETE("/equipment/:equipmentUid", h.DeleteEquipment)

	requesters.POST("/requests", h.CreateRequest)
	requesters.GET("/requests", h.GetMyRequests)
	staff.GET("/requests/all", h.ListRequests)
	staff.GET("/requests/pending", h.PendingRequests)
	staff.GET("/requests/statistics", h.Statistics)
	staff.PUT("/requests/:requestUid/approve", h.ApproveRequest)
	staff.PUT("/requests/:requestUid/deny", h.DenyRequest)
	staff.POST("/requests/:requestUid/return", h.ReturnRequest)
	authed.DELETE("/requests/:requestUid", h.CancelRequest)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain outcomes onto status codes. Unrecognized errors are
// persistence faults and surface as 500, eligible for caller-side retry.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrInvalidRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrDuplicatePending),
		errors.Is(err, errs.ErrDuplicateName),
		errors.Is(err, errs.ErrDuplicateUser):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// CreateEquipment godoc
// @Summary  Add an equipment item to the catalog
// @Tags     equipment
// @Accept   json
// @Produce  json
// @Param    input body model.CreateEquipmentRequest true "equipment"
// @Success  201 {object} model.Equipment
// @Router   /api/v1/equipment [post]
func (h *Handler) CreateEquipment(c echo.Context) error {
	var req model.CreateEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	eq, err := h.equipmentSvc.CreateEquipment(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, eq)
}

func (h *Handler) GetEquipment(c echo.Context) error {
	eq, err := h.equipmentSvc.GetEquipment(c.Request().Context(), c.Param("equipmentUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, eq)
}

// ListEquipment godoc
// @Summary  Browse the equipment catalog
// @Tags     equipment
// @Produce  json
// @Param    category  query string false "category filter"
// @Param    condition query string false "condition filter"
// @Param    search    query string false "name/description search"
// @Param    available query bool   false "only items in stock"
// @Success  200 {object} model.ListEquipment
// @Router   /api/v1/equipment [get]
func (h *Handler) ListEquipment(c echo.Context) error {
	filter := model.EquipmentFilter{
		Category:  c.QueryParam("category"),
		Condition: model.Condition(c.QueryParam("condition")),
		Search:    c.QueryParam("search"),
	}
	var err error
	if availableParam := c.QueryParam("available"); availableParam != "" {
		if filter.AvailableOnly, err = strconv.ParseBool(availableParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("available is invalid"))
		}
	}
	if filter.Page, filter.Size, err = pageParams(c); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.equipmentSvc.ListEquipment(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UpdateEquipment(c echo.Context) error {
	var upd model.UpdateEquipmentRequest
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&upd); err != nil {
		return err
	}
	eq, err := h.equipmentSvc.UpdateEquipment(c.Request().Context(), c.Param("equipmentUid"), upd)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, eq)
}

// AdjustCapacity godoc
// @Summary  Administrative edit of total/available unit counts
// @Tags     equipment
// @Accept   json
// @Produce  json
// @Param    equipmentUid path string true "equipment uid"
// @Param    input body model.AdjustCapacityRequest true "capacity"
// @Success  200 {object} model.Equipment
// @Router   /api/v1/equipment/{equipmentUid}/capacity [put]
func (h *Handler) AdjustCapacity(c echo.Context) error {
	var req model.AdjustCapacityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	eq, err := h.equipmentSvc.AdjustCapacity(c.Request().Context(), c.Param("equipmentUid"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, eq)
}

func (h *Handler) DeleteEquipment(c echo.Context) error {
	if err := h.equipmentSvc.DeleteEquipment(c.Request().Context(), c.Param("equipmentUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.equipmentSvc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func pageParams(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, errors.New("page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, errors.New("size is invalid")
		}
	}
	return page, size, nil
}
