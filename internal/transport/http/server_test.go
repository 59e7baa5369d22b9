package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"eventcraft/internal/domain/models"
	authsvc "eventcraft/internal/services/auth_service"
	notifier "eventcraft/internal/services/notifier_service"
	"eventcraft/internal/storage"
	httptransport "eventcraft/internal/transport/http"
	"eventcraft/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProjectService struct{ mock.Mock }

func (m *mockProjectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) ListProjectsByTags(ctx context.Context, tags []string, matchAll bool) ([]dto.ProjectResponse, error) {
	args := m.Called(ctx, tags, matchAll)
	return args.Get(0).([]dto.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) GetProject(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) UpsertProject(ctx context.Context, req dto.ProjectPayload) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCatalogService struct{ mock.Mock }

func (m *mockCatalogService) CreateProjectType(ctx context.Context, req dto.CreateProjectTypeRequest) (models.ProjectType, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.ProjectType), args.Error(1)
}

func (m *mockCatalogService) ListProjectTypes(ctx context.Context) ([]models.ProjectType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ProjectType), args.Error(1)
}

func (m *mockCatalogService) ListHeroImages(ctx context.Context, activeOnly bool) ([]models.HeroImage, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]models.HeroImage), args.Error(1)
}

func (m *mockCatalogService) UpsertHeroImage(ctx context.Context, req dto.HeroImagePayload) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCatalogService) DeleteHeroImage(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogService) ListClientLogos(ctx context.Context, activeOnly bool) ([]models.ClientLogo, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]models.ClientLogo), args.Error(1)
}

func (m *mockCatalogService) UpsertClientLogo(ctx context.Context, req dto.ClientLogoPayload) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCatalogService) DeleteClientLogo(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockInquiryService struct{ mock.Mock }

func (m *mockInquiryService) Submit(ctx context.Context, service models.ServiceLine, req dto.InquiryRequest) (uuid.UUID, error) {
	args := m.Called(ctx, service, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockInquiryService) List(ctx context.Context, service models.ServiceLine, page, perPage int) (*dto.InquiryListResponse, error) {
	args := m.Called(ctx, service, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InquiryListResponse), args.Error(1)
}

type mockNotifierService struct{ mock.Mock }

func (m *mockNotifierService) NotifyBooking(ctx context.Context, booking models.Booking) (dto.BookingNotifyResponse, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(dto.BookingNotifyResponse), args.Error(1)
}

func (m *mockNotifierService) HandleWebhook(ctx context.Context, table string, record map[string]interface{}) error {
	return m.Called(ctx, table, record).Error(0)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

type routerMocks struct {
	project  *mockProjectService
	catalog  *mockCatalogService
	inquiry  *mockInquiryService
	notifier *mockNotifierService
	auth     *mockAuthService
}

func newTestRouter() (*httptransport.Routers, *routerMocks, *echo.Echo) {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	mocks := &routerMocks{
		project:  new(mockProjectService),
		catalog:  new(mockCatalogService),
		inquiry:  new(mockInquiryService),
		notifier: new(mockNotifierService),
		auth:     new(mockAuthService),
	}

	router := httptransport.NewRouter(
		log,
		mocks.project,
		mocks.catalog,
		mocks.inquiry,
		mocks.notifier,
		mocks.auth,
		nil,
		nil,
	)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	return router, mocks, e
}

func doJSON(e *echo.Echo, handler echo.HandlerFunc, method, target, body string, setup func(echo.Context)) (*httptest.ResponseRecorder, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	return rec, handler(c)
}

func TestListProjects_EmptyIsArray(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.project.On("ListProjects", mock.Anything).Return([]dto.ProjectResponse{}, nil)

	rec, err := doJSON(e, router.ListProjects, http.MethodGet, "/api/projects", "", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListProjects_TagsFilter(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.project.On("ListProjectsByTags", mock.Anything, []string{"outdoor", "summer"}, true).
		Return([]dto.ProjectResponse{{Title: "Outdoor"}}, nil)

	rec, err := doJSON(e, router.ListProjects, http.MethodGet,
		"/api/projects?tags=outdoor,summer&match=all", "", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var projects []dto.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Outdoor", projects[0].Title)
	mocks.project.AssertExpectations(t)
}

func TestGetProject_NotFound(t *testing.T) {
	router, mocks, e := newTestRouter()

	id := uuid.New()
	mocks.project.On("GetProject", mock.Anything, id).Return(nil, storage.ErrProjectNotFound)

	rec, err := doJSON(e, router.GetProject, http.MethodGet, "/api/projects/"+id.String(), "",
		func(c echo.Context) {
			c.SetParamNames("id")
			c.SetParamValues(id.String())
		})
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProject_BadID(t *testing.T) {
	router, _, e := newTestRouter()

	rec, err := doJSON(e, router.GetProject, http.MethodGet, "/api/projects/nope", "",
		func(c echo.Context) {
			c.SetParamNames("id")
			c.SetParamValues("nope")
		})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertProject_MissingTitle(t *testing.T) {
	router, mocks, e := newTestRouter()

	rec, err := doJSON(e, router.UpsertProject, http.MethodPost, "/api/projects",
		`{"category":"conference"}`, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mocks.project.AssertNotCalled(t, "UpsertProject", mock.Anything, mock.Anything)
}

func TestCreateProjectType_MissingKey(t *testing.T) {
	router, mocks, e := newTestRouter()

	rec, err := doJSON(e, router.CreateProjectType, http.MethodPost, "/api/project-types",
		`{"description":"no key"}`, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mocks.catalog.AssertNotCalled(t, "CreateProjectType", mock.Anything, mock.Anything)
}

func TestCreateProjectType_Duplicate(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.catalog.On("CreateProjectType", mock.Anything, mock.Anything).
		Return(models.ProjectType{}, storage.ErrProjectTypeExists)

	rec, err := doJSON(e, router.CreateProjectType, http.MethodPost, "/api/project-types",
		`{"type_key":"conference"}`, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitInquiry_UnknownService(t *testing.T) {
	router, mocks, e := newTestRouter()

	rec, err := doJSON(e, router.SubmitInquiry, http.MethodPost, "/api/inquiries/catering",
		`{"name":"Jo","email":"jo@example.com"}`,
		func(c echo.Context) {
			c.SetParamNames("service")
			c.SetParamValues("catering")
		})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mocks.inquiry.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitInquiry_OK(t *testing.T) {
	router, mocks, e := newTestRouter()

	id := uuid.New()
	mocks.inquiry.On("Submit", mock.Anything, models.ServiceCSR, mock.Anything).Return(id, nil)

	rec, err := doJSON(e, router.SubmitInquiry, http.MethodPost, "/api/inquiries/csr",
		`{"name":"Jo","email":"jo@example.com"}`,
		func(c echo.Context) {
			c.SetParamNames("service")
			c.SetParamValues("csr")
		})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestNotifyBooking_MissingFields(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.notifier.On("NotifyBooking", mock.Anything, mock.Anything).
		Return(dto.BookingNotifyResponse{}, &notifier.MissingFieldsError{Fields: []string{"customer_name"}})

	rec, err := doJSON(e, router.NotifyBooking, http.MethodPost, "/api/bookings/notify",
		`{"booking_id":"bk-1","email":"jo@example.com"}`, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing_fields", body.Error)
	assert.Equal(t, []string{"customer_name"}, body.Fields)
}

func TestNotifyBooking_Duplicate(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.notifier.On("NotifyBooking", mock.Anything, mock.Anything).
		Return(dto.BookingNotifyResponse{BookingID: "bk-1", Duplicate: true}, nil)

	rec, err := doJSON(e, router.NotifyBooking, http.MethodPost, "/api/bookings/notify",
		`{"booking_id":"bk-1","email":"jo@example.com","customer_name":"Jo"}`, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"duplicate":true`)
}

func TestNotifyBooking_OperatorSendFailure(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.notifier.On("NotifyBooking", mock.Anything, mock.Anything).
		Return(dto.BookingNotifyResponse{}, errors.New("smtp down"))

	rec, err := doJSON(e, router.NotifyBooking, http.MethodPost, "/api/bookings/notify",
		`{"booking_id":"bk-1","email":"jo@example.com","customer_name":"Jo"}`, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "notification_failed")
}

func TestInquiryWebhook_UnknownTable(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.notifier.On("HandleWebhook", mock.Anything, "random_table", mock.Anything).
		Return(storage.ErrUnknownService)

	rec, err := doJSON(e, router.InquiryWebhook, http.MethodPost, "/api/webhooks/inquiries",
		`{"type":"INSERT","table":"random_table","record":{"name":"Jo"}}`, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	router, mocks, e := newTestRouter()

	t.Run("wrong password", func(t *testing.T) {
		mocks.auth.On("Login", mock.Anything, "wrong").Return("", authsvc.ErrInvalidCredentials)

		rec, err := doJSON(e, router.Login, http.MethodPost, "/api/admin/login",
			`{"password":"wrong"}`, nil)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("successful login returns token", func(t *testing.T) {
		mocks.auth.On("Login", mock.Anything, "correct").Return("signed.jwt.token", nil)

		rec, err := doJSON(e, router.Login, http.MethodPost, "/api/admin/login",
			`{"password":"correct"}`, nil)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	})
}

func TestListInquiries_Pagination(t *testing.T) {
	router, mocks, e := newTestRouter()

	mocks.inquiry.On("List", mock.Anything, models.ServiceTraining, 2, 10).
		Return(&dto.InquiryListResponse{Items: []models.Inquiry{}, Total: 0, Page: 2, PerPage: 10}, nil)

	rec, err := doJSON(e, router.ListInquiries, http.MethodGet,
		"/api/inquiries/training-program?page=2&per_page=10", "",
		func(c echo.Context) {
			c.SetParamNames("service")
			c.SetParamValues("training-program")
		})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	mocks.inquiry.AssertExpectations(t)
}
