package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/repository"
	"eventcraft/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrTypeKeyRequired = errors.New("type_key is required")

// CatalogService covers the small presentation tables: project types, hero
// images and client logos.
type CatalogService struct {
	log     *slog.Logger
	types   repository.ProjectTypeRepository
	display repository.DisplayRepository
}

func NewCatalogService(log *slog.Logger, types repository.ProjectTypeRepository, display repository.DisplayRepository) *CatalogService {
	return &CatalogService{
		log:     log,
		types:   types,
		display: display,
	}
}

func (s *CatalogService) CreateProjectType(ctx context.Context, req dto.CreateProjectTypeRequest) (models.ProjectType, error) {
	const op = "service.CatalogService.CreateProjectType"
	log := s.log.With(
		slog.String("op", op),
		slog.String("type_key", req.TypeKey),
	)

	if req.TypeKey == "" {
		log.Error("type_key is required")
		return models.ProjectType{}, ErrTypeKeyRequired
	}

	created, err := s.types.CreateProjectType(ctx, models.ProjectType{
		TypeKey:      req.TypeKey,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		log.Error("failed to create project type", slog.Any("err", err))
		return models.ProjectType{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("project type created", slog.String("id", created.ID.String()))
	return created, nil
}

func (s *CatalogService) ListProjectTypes(ctx context.Context) ([]models.ProjectType, error) {
	const op = "service.CatalogService.ListProjectTypes"

	types, err := s.types.ListProjectTypes(ctx)
	if err != nil {
		s.log.Error("failed to list project types", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if types == nil {
		types = []models.ProjectType{}
	}

	return types, nil
}

func (s *CatalogService) ListHeroImages(ctx context.Context, activeOnly bool) ([]models.HeroImage, error) {
	const op = "service.CatalogService.ListHeroImages"

	images, err := s.display.ListHeroImages(ctx, activeOnly)
	if err != nil {
		s.log.Error("failed to list hero images", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if images == nil {
		images = []models.HeroImage{}
	}

	return images, nil
}

func (s *CatalogService) UpsertHeroImage(ctx context.Context, req dto.HeroImagePayload) (uuid.UUID, error) {
	const op = "service.CatalogService.UpsertHeroImage"

	if req.URL == "" {
		return uuid.Nil, fmt.Errorf("url is required")
	}

	id, err := s.display.UpsertHeroImage(ctx, models.HeroImage{
		ID:           req.ID,
		URL:          req.URL,
		Alt:          req.Alt,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		s.log.Error("failed to upsert hero image", slog.Any("err", err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *CatalogService) DeleteHeroImage(ctx context.Context, id uuid.UUID) error {
	const op = "service.CatalogService.DeleteHeroImage"

	if err := s.display.DeleteHeroImage(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *CatalogService) ListClientLogos(ctx context.Context, activeOnly bool) ([]models.ClientLogo, error) {
	const op = "service.CatalogService.ListClientLogos"

	logos, err := s.display.ListClientLogos(ctx, activeOnly)
	if err != nil {
		s.log.Error("failed to list client logos", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if logos == nil {
		logos = []models.ClientLogo{}
	}

	return logos, nil
}

func (s *CatalogService) UpsertClientLogo(ctx context.Context, req dto.ClientLogoPayload) (uuid.UUID, error) {
	const op = "service.CatalogService.UpsertClientLogo"

	if req.Name == "" || req.URL == "" {
		return uuid.Nil, fmt.Errorf("name and url are required")
	}

	id, err := s.display.UpsertClientLogo(ctx, models.ClientLogo{
		ID:           req.ID,
		Name:         req.Name,
		URL:          req.URL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		s.log.Error("failed to upsert client logo", slog.Any("err", err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *CatalogService) DeleteClientLogo(ctx context.Context, id uuid.UUID) error {
	const op = "service.CatalogService.DeleteClientLogo"

	if err := s.display.DeleteClientLogo(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
