package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/repository"
	"eventcraft/internal/transport/http/dto"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

const projectListCacheKey = "projects:list"

// ProjectService serves the public project catalog and the admin upsert
// path. The unfiltered list is the hottest read on the site, so it is held
// in an in-process cache and dropped on every successful write.
type ProjectService struct {
	log   *slog.Logger
	repo  repository.ProjectRepository
	cache *cache.Cache
}

func NewProjectService(log *slog.Logger, repo repository.ProjectRepository, listTTL time.Duration) *ProjectService {
	return &ProjectService{
		log:   log,
		repo:  repo,
		cache: cache.New(listTTL, 2*listTTL),
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	const op = "service.ProjectService.ListProjects"

	if cached, ok := s.cache.Get(projectListCacheKey); ok {
		return cached.([]dto.ProjectResponse), nil
	}

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		s.log.Error("failed to list projects", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses := mapProjects(projects)
	s.cache.SetDefault(projectListCacheKey, responses)

	return responses, nil
}

func (s *ProjectService) ListProjectsByTags(ctx context.Context, tags []string, matchAll bool) ([]dto.ProjectResponse, error) {
	const op = "service.ProjectService.ListProjectsByTags"

	projects, err := s.repo.ListProjectsByTags(ctx, tags, matchAll)
	if err != nil {
		s.log.Error("failed to list projects by tags", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapProjects(projects), nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	const op = "service.ProjectService.GetProject"

	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	response := mapProject(project)
	return &response, nil
}

// UpsertProject creates or fully updates a project. A nil Gallery field in
// the payload leaves the stored gallery untouched; any non-nil value
// (including an empty array) replaces the whole set.
func (s *ProjectService) UpsertProject(ctx context.Context, req dto.ProjectPayload) (uuid.UUID, error) {
	const op = "service.ProjectService.UpsertProject"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	if req.Title == "" {
		log.Error("title is required")
		return uuid.Nil, fmt.Errorf("title is required")
	}

	project := models.Project{
		ID:           req.ID,
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		Details:      req.Details,
		Year:         req.Year,
		Client:       req.Client,
		TypeKey:      req.TypeKey,
		Tags:         req.Tags,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
		IsFeatured:   req.IsFeatured,
	}

	replaceGallery := req.Gallery != nil
	if replaceGallery {
		for _, image := range *req.Gallery {
			project.Gallery = append(project.Gallery, models.GalleryImage{
				URL:          image.URL,
				Alt:          image.Alt,
				DisplayOrder: image.DisplayOrder,
			})
		}
	}

	id, err := s.repo.UpsertProject(ctx, project, replaceGallery)
	if err != nil {
		log.Error("failed to upsert project", slog.Any("err", err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(projectListCacheKey)

	log.Info("project upserted", slog.String("id", id.String()))
	return id, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	const op = "service.ProjectService.DeleteProject"
	log := s.log.With(
		slog.String("op", op),
		slog.String("project_id", id.String()),
	)

	if err := s.repo.DeleteProject(ctx, id); err != nil {
		log.Error("failed to delete project", slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(projectListCacheKey)

	log.Info("project deleted")
	return nil
}

func mapProjects(projects []models.Project) []dto.ProjectResponse {
	// non-nil so an empty catalog serialises as [] and not null
	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, mapProject(project))
	}
	return responses
}

func mapProject(project models.Project) dto.ProjectResponse {
	gallery := make([]dto.GalleryImageResponse, 0, len(project.Gallery))
	for _, image := range project.Gallery {
		gallery = append(gallery, dto.GalleryImageResponse{
			ID:           image.ID,
			URL:          image.URL,
			Alt:          image.Alt,
			DisplayOrder: image.DisplayOrder,
		})
	}

	return dto.ProjectResponse{
		ID:           project.ID,
		Title:        project.Title,
		Category:     project.Category,
		Description:  project.Description,
		Details:      project.Details,
		Year:         project.Year,
		Client:       project.Client,
		TypeKey:      project.TypeKey,
		Tags:         project.Tags,
		DisplayOrder: project.DisplayOrder,
		IsActive:     project.IsActive,
		IsFeatured:   project.IsFeatured,
		Gallery:      gallery,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}
