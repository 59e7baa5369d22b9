package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/lib/logger/sl"
	catalog "eventcraft/internal/services/catalog_service"
	inquiry "eventcraft/internal/services/inquiry_service"
	notifier "eventcraft/internal/services/notifier_service"
	"eventcraft/internal/storage"
	"eventcraft/internal/transport/http/dto"
	"eventcraft/internal/transport/http/dto/request"
	"eventcraft/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "eventcraft/docs"
)

type ProjectService interface {
	ListProjects(ctx context.Context) ([]dto.ProjectResponse, error)
	ListProjectsByTags(ctx context.Context, tags []string, matchAll bool) ([]dto.ProjectResponse, error)
	GetProject(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	UpsertProject(ctx context.Context, req dto.ProjectPayload) (uuid.UUID, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type CatalogService interface {
	CreateProjectType(ctx context.Context, req dto.CreateProjectTypeRequest) (models.ProjectType, error)
	ListProjectTypes(ctx context.Context) ([]models.ProjectType, error)
	ListHeroImages(ctx context.Context, activeOnly bool) ([]models.HeroImage, error)
	UpsertHeroImage(ctx context.Context, req dto.HeroImagePayload) (uuid.UUID, error)
	DeleteHeroImage(ctx context.Context, id uuid.UUID) error
	ListClientLogos(ctx context.Context, activeOnly bool) ([]models.ClientLogo, error)
	UpsertClientLogo(ctx context.Context, req dto.ClientLogoPayload) (uuid.UUID, error)
	DeleteClientLogo(ctx context.Context, id uuid.UUID) error
}

type InquiryService interface {
	Submit(ctx context.Context, service models.ServiceLine, req dto.InquiryRequest) (uuid.UUID, error)
	List(ctx context.Context, service models.ServiceLine, page, perPage int) (*dto.InquiryListResponse, error)
}

type NotifierService interface {
	NotifyBooking(ctx context.Context, booking models.Booking) (dto.BookingNotifyResponse, error)
	HandleWebhook(ctx context.Context, table string, record map[string]interface{}) error
}

type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type Routers struct {
	log             *slog.Logger
	ProjectService  ProjectService
	CatalogService  CatalogService
	InquiryService  InquiryService
	NotifierService NotifierService
	AuthService     AuthService
	DBPing          func(ctx context.Context) error
	RedisPing       func(ctx context.Context) error
}

func NewRouter(
	log *slog.Logger,
	projectService ProjectService,
	catalogService CatalogService,
	inquiryService InquiryService,
	notifierService NotifierService,
	authService AuthService,
	dbPing func(ctx context.Context) error,
	redisPing func(ctx context.Context) error,
) *Routers {
	return &Routers{
		log:             log,
		ProjectService:  projectService,
		CatalogService:  catalogService,
		InquiryService:  inquiryService,
		NotifierService: notifierService,
		AuthService:     authService,
		DBPing:          dbPing,
		RedisPing:       redisPing,
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (r *Routers) Health(c echo.Context) error {
	ctx := c.Request().Context()

	body := map[string]interface{}{"ok": true}

	if r.DBPing != nil {
		if err := r.DBPing(ctx); err != nil {
			body["db"] = "down"
			body["ok"] = false
		} else {
			body["db"] = "up"
		}
	}

	if r.RedisPing != nil {
		if err := r.RedisPing(ctx); err != nil {
			body["redis"] = "down"
		} else {
			body["redis"] = "up"
		}
	}

	return c.JSON(http.StatusOK, body)
}

// ListProjects godoc
// @Summary List projects with gallery and type
// @Description Newest first. Optional tags filter: ?tags=a,b&match=all|any
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/projects [get]
func (r *Routers) ListProjects(c echo.Context) error {
	const op = "http.routers.ListProjects"

	ctx := c.Request().Context()

	var (
		projects []dto.ProjectResponse
		err      error
	)

	if raw := c.QueryParam("tags"); raw != "" {
		tags := strings.Split(raw, ",")
		matchAll := c.QueryParam("match") == "all"
		projects, err = r.ProjectService.ListProjectsByTags(ctx, tags, matchAll)
	} else {
		projects, err = r.ProjectService.ListProjects(ctx)
	}

	if err != nil {
		r.log.Error("failed to list projects", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	if projects == nil {
		projects = []dto.ProjectResponse{}
	}

	return c.JSON(http.StatusOK, projects)
}

func (r *Routers) GetProject(c echo.Context) error {
	const op = "http.routers.GetProject"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid project id"))
	}

	project, err := r.ProjectService.GetProject(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "project not found"))
		}

		r.log.Error("failed to get project", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, project)
}

// UpsertProject godoc
// @Summary Create or update a project, optionally replacing its gallery
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.ProjectPayload true "Project payload"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security AdminToken
// @Router /api/projects [post]
func (r *Routers) UpsertProject(c echo.Context) error {
	const op = "http.routers.UpsertProject"

	var req dto.ProjectPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	id, err := r.ProjectService.UpsertProject(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "project not found"))
		}

		r.log.Error("failed to upsert project", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"id": id.String()}))
}

func (r *Routers) DeleteProject(c echo.Context) error {
	const op = "http.routers.DeleteProject"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid project id"))
	}

	if err := r.ProjectService.DeleteProject(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "project not found"))
		}

		r.log.Error("failed to delete project", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

// CreateProjectType godoc
// @Summary Create a project type
// @Tags project-types
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectTypeRequest true "Project type"
// @Success 200 {object} models.ProjectType
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Security AdminToken
// @Router /api/project-types [post]
func (r *Routers) CreateProjectType(c echo.Context) error {
	const op = "http.routers.CreateProjectType"

	var req dto.CreateProjectTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	created, err := r.CatalogService.CreateProjectType(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrTypeKeyRequired) {
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_request", err.Error()))
		}
		if errors.Is(err, storage.ErrProjectTypeExists) {
			return c.JSON(http.StatusConflict, response.ErrProjectTypeExists)
		}

		r.log.Error("failed to create project type", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, created)
}

func (r *Routers) ListProjectTypes(c echo.Context) error {
	const op = "http.routers.ListProjectTypes"

	types, err := r.CatalogService.ListProjectTypes(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list project types", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, types)
}

func (r *Routers) ListHeroImages(c echo.Context) error {
	const op = "http.routers.ListHeroImages"

	activeOnly := c.QueryParam("all") != "true"

	images, err := r.CatalogService.ListHeroImages(c.Request().Context(), activeOnly)
	if err != nil {
		r.log.Error("failed to list hero images", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, images)
}

func (r *Routers) UpsertHeroImage(c echo.Context) error {
	const op = "http.routers.UpsertHeroImage"

	var req dto.HeroImagePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	id, err := r.CatalogService.UpsertHeroImage(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "hero image not found"))
		}

		r.log.Error("failed to upsert hero image", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"id": id.String()}))
}

func (r *Routers) DeleteHeroImage(c echo.Context) error {
	return r.deleteDisplayItem(c, "hero image", r.CatalogService.DeleteHeroImage)
}

func (r *Routers) ListClientLogos(c echo.Context) error {
	const op = "http.routers.ListClientLogos"

	activeOnly := c.QueryParam("all") != "true"

	logos, err := r.CatalogService.ListClientLogos(c.Request().Context(), activeOnly)
	if err != nil {
		r.log.Error("failed to list client logos", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, logos)
}

func (r *Routers) UpsertClientLogo(c echo.Context) error {
	const op = "http.routers.UpsertClientLogo"

	var req dto.ClientLogoPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	id, err := r.CatalogService.UpsertClientLogo(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "client logo not found"))
		}

		r.log.Error("failed to upsert client logo", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"id": id.String()}))
}

func (r *Routers) DeleteClientLogo(c echo.Context) error {
	return r.deleteDisplayItem(c, "client logo", r.CatalogService.DeleteClientLogo)
}

func (r *Routers) deleteDisplayItem(c echo.Context, entity string, del func(context.Context, uuid.UUID) error) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid id"))
	}

	if err := del(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", entity+" not found"))
		}

		r.log.Error("failed to delete "+entity, sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

// SubmitInquiry godoc
// @Summary Submit a lead for one of the service lines
// @Tags inquiries
// @Accept json
// @Produce json
// @Param service path string true "csr | team-building | corporate-event | training-program"
// @Param request body dto.InquiryRequest true "Inquiry"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/inquiries/{service} [post]
func (r *Routers) SubmitInquiry(c echo.Context) error {
	const op = "http.routers.SubmitInquiry"

	service := models.ServiceLine(c.Param("service"))
	if _, ok := service.Table(); !ok {
		return c.JSON(http.StatusBadRequest, response.ErrUnknownService)
	}

	var req dto.InquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	id, err := r.InquiryService.Submit(c.Request().Context(), service, req)
	if err != nil {
		if errors.Is(err, inquiry.ErrNameRequired) || errors.Is(err, inquiry.ErrEmailRequired) {
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_request", err.Error()))
		}

		r.log.Error("failed to submit inquiry", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"id": id.String()}))
}

func (r *Routers) ListInquiries(c echo.Context) error {
	const op = "http.routers.ListInquiries"

	service := models.ServiceLine(c.Param("service"))
	if _, ok := service.Table(); !ok {
		return c.JSON(http.StatusBadRequest, response.ErrUnknownService)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	list, err := r.InquiryService.List(c.Request().Context(), service, page, perPage)
	if err != nil {
		r.log.Error("failed to list inquiries", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, list)
}

// NotifyBooking godoc
// @Summary Send booking notification emails
// @Description Operator email first (failure fails the call), customer email second (best-effort). Duplicate booking ids send nothing.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.BookingNotifyRequest true "Booking"
// @Success 200 {object} response.Response{data=dto.BookingNotifyResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/bookings/notify [post]
func (r *Routers) NotifyBooking(c echo.Context) error {
	const op = "http.routers.NotifyBooking"

	var req dto.BookingNotifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	booking := models.Booking{
		BookingID:    req.BookingID,
		Email:        req.Email,
		CustomerName: req.CustomerName,
		Company:      req.Company,
		Slot:         req.Slot,
	}

	result, err := r.NotifierService.NotifyBooking(c.Request().Context(), booking)
	if err != nil {
		var missing *notifier.MissingFieldsError
		if errors.As(err, &missing) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Status:  "error",
				Error:   "missing_fields",
				Details: missing.Error(),
				Fields:  missing.Fields,
			})
		}

		r.log.Error("failed to notify booking", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("notification_failed", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(result))
}

func (r *Routers) InquiryWebhook(c echo.Context) error {
	const op = "http.routers.InquiryWebhook"

	var req dto.InquiryWebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	err := r.NotifierService.HandleWebhook(c.Request().Context(), req.Table, req.Record)
	if err != nil {
		if errors.Is(err, storage.ErrUnknownService) {
			return c.JSON(http.StatusBadRequest, response.ErrUnknownService)
		}

		r.log.Error("failed to handle webhook", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError,
			response.ErrorResponseWithDetails("notification_failed", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

// Login godoc
// @Summary Operator login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=map[string]string}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	token, err := r.AuthService.Login(c.Request().Context(), req.Password)
	if err != nil {
		r.log.Warn("login failed", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"access_token": token}))
}
