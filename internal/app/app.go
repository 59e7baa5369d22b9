package app

import (
	"context"
	"log/slog"

	httpapp "eventcraft/internal/app/http"
	"eventcraft/internal/config"
	"eventcraft/internal/mailer"
	"eventcraft/internal/repository"
	authsvc "eventcraft/internal/services/auth_service"
	catalogsvc "eventcraft/internal/services/catalog_service"
	inquirysvc "eventcraft/internal/services/inquiry_service"
	notifiersvc "eventcraft/internal/services/notifier_service"
	projectsvc "eventcraft/internal/services/project_service"
	redisapp "eventcraft/internal/storage/redis"
	httprouters "eventcraft/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	repo       *repository.Repository
	redis      *redisapp.Client
	log        *slog.Logger
}

func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	resend := mailer.NewResend(log, cfg.Mailer.BaseURL, cfg.Mailer.APIKey, cfg.Mailer.From, cfg.Mailer.Timeout)

	notifierService := notifiersvc.NewNotifierService(
		log,
		resend,
		repository.NewRedisBookingLedger(redisClient),
		cfg.Mailer.OperatorEmail,
		cfg.Mailer.CustomerSendEnabled,
		cfg.Redis.DedupTTL,
	)

	projectService := projectsvc.NewProjectService(log, repo.Project, cfg.Cache.ProjectTTL)
	catalogService := catalogsvc.NewCatalogService(log, repo.ProjectType, repo.Display)
	inquiryService := inquirysvc.NewInquiryService(log, repo.Inquiry, notifierService)
	authService := authsvc.NewAuthService(log, cfg.Admin.PasswordHash, cfg.Admin.TokenSecret, cfg.TokenTTL)

	routers := httprouters.NewRouter(
		log,
		projectService,
		catalogService,
		inquiryService,
		notifierService,
		authService,
		repo.Ping,
		redisClient.HealthCheck,
	)

	server := httpapp.New(log, cfg.Admin.TokenSecret, cfg.Admin.SessionKey, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
		log:        log,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("http server shutdown failed", slog.Any("error", err))
	}

	if err := a.redis.Close(); err != nil {
		a.log.Error("redis close failed", slog.Any("error", err))
	}

	a.repo.Close()
}
