package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	custommw "eventcraft/internal/middleware"
	httprouters "eventcraft/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m          *http.ServeMux
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	host       string
	port       string
	token      string
	sessionKey string
}

func New(log *slog.Logger, token, sessionKey, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionKey))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(custommw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:          mux,
		log:        log,
		e:          e,
		routers:    routers,
		host:       host,
		port:       port,
		token:      token,
		sessionKey: sessionKey,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	api := s.e.Group("/api")
	{
		api.GET("/health", s.routers.Health)

		api.GET("/projects", s.routers.ListProjects)
		api.GET("/projects/:id", s.routers.GetProject)
		api.GET("/project-types", s.routers.ListProjectTypes)
		api.GET("/hero-images", s.routers.ListHeroImages)
		api.GET("/client-logos", s.routers.ListClientLogos)

		api.POST("/inquiries/:service", s.routers.SubmitInquiry)
		api.POST("/bookings/notify", s.routers.NotifyBooking)
		api.POST("/webhooks/inquiries", s.routers.InquiryWebhook)

		api.POST("/admin/login", s.routers.Login)

		adminJWT := echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(s.token),
		})

		api.POST("/projects", s.routers.UpsertProject, adminJWT)
		api.DELETE("/projects/:id", s.routers.DeleteProject, adminJWT)
		api.POST("/project-types", s.routers.CreateProjectType, adminJWT)
		api.POST("/hero-images", s.routers.UpsertHeroImage, adminJWT)
		api.DELETE("/hero-images/:id", s.routers.DeleteHeroImage, adminJWT)
		api.POST("/client-logos", s.routers.UpsertClientLogo, adminJWT)
		api.DELETE("/client-logos/:id", s.routers.DeleteClientLogo, adminJWT)
		api.GET("/inquiries/:service", s.routers.ListInquiries, adminJWT)
	}

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}
