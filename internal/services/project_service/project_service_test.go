package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventcraft/internal/domain/models"
	services "eventcraft/internal/services/project_service"
	"eventcraft/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *mockProjectRepo) ListProjectsByTags(ctx context.Context, tags []string, matchAll bool) ([]models.Project, error) {
	args := m.Called(ctx, tags, matchAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *mockProjectRepo) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Project), args.Error(1)
}

func (m *mockProjectRepo) UpsertProject(ctx context.Context, project models.Project, replaceGallery bool) (uuid.UUID, error) {
	args := m.Called(ctx, project, replaceGallery)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockProjectRepo) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProjectService_ListProjects(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog maps to empty slice", func(t *testing.T) {
		repo := new(mockProjectRepo)
		svc := services.NewProjectService(discardLogger(), repo, time.Minute)

		repo.On("ListProjects", ctx).Return([]models.Project(nil), nil).Once()

		projects, err := svc.ListProjects(ctx)
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("second call served from cache", func(t *testing.T) {
		repo := new(mockProjectRepo)
		svc := services.NewProjectService(discardLogger(), repo, time.Minute)

		repo.On("ListProjects", ctx).
			Return([]models.Project{{Title: "Summit"}}, nil).Once()

		first, err := svc.ListProjects(ctx)
		require.NoError(t, err)

		second, err := svc.ListProjects(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "ListProjects", 1)
	})

	t.Run("repo error is wrapped", func(t *testing.T) {
		repo := new(mockProjectRepo)
		svc := services.NewProjectService(discardLogger(), repo, time.Minute)

		repo.On("ListProjects", ctx).Return(nil, errors.New("db down")).Once()

		_, err := svc.ListProjects(ctx)
		require.Error(t, err)
	})
}

func TestProjectService_UpsertProject(t *testing.T) {
	ctx := context.Background()

	t.Run("title required", func(t *testing.T) {
		repo := new(mockProjectRepo)
		svc := services.NewProjectService(discardLogger(), repo, time.Minute)

		_, err := svc.UpsertProject(ctx, dto.ProjectPayload{Category: "conference"})
		require.Error(t, err)
		repo.AssertNotCalled(t, "UpsertProject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil gallery leaves stored gallery alone", func(t *testing.T) {
		repo := new(mockProjectRepo)
		svc := services.NewProjectService(discardLogger(), repo, time.Minute)

		id := uuid.New()
		repo.On("UpsertProject", ctx, mock.Anything, false).Return(id, nil).Once()

		got, err := svc.UpsertProject(ctx, dto.ProjectPayload{Title: "Summit"})
		require.NoError(t, err)
		assert.Equal(t, id, got)
		repo.AssertExpectations(t)
	})

	t.Run("empty gallery array requests a wipe", func(t *testing.T) {
		repo := new(mockProjectRepo)
		svc := services.NewProjectService(discardLogger(), repo, time.Minute)

		empty := []dto.GalleryImagePayload{}
		repo.On("UpsertProject", ctx, mock.MatchedBy(func(p models.Project) bool {
			return len(p.Gallery) == 0
		}), true).Return(uuid.New(), nil).Once()

		_, err := svc.UpsertProject(ctx, dto.ProjectPayload{Title: "Summit", Gallery: &empty})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("write drops the list cache", func(t *testing.T) {
		repo := new(mockProjectRepo)
		svc := services.NewProjectService(discardLogger(), repo, time.Minute)

		repo.On("ListProjects", ctx).Return([]models.Project{}, nil).Twice()
		repo.On("UpsertProject", ctx, mock.Anything, false).Return(uuid.New(), nil).Once()

		_, err := svc.ListProjects(ctx)
		require.NoError(t, err)

		_, err = svc.UpsertProject(ctx, dto.ProjectPayload{Title: "Summit"})
		require.NoError(t, err)

		_, err = svc.ListProjects(ctx)
		require.NoError(t, err)

		repo.AssertNumberOfCalls(t, "ListProjects", 2)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	ctx := context.Background()

	repo := new(mockProjectRepo)
	svc := services.NewProjectService(discardLogger(), repo, time.Minute)

	id := uuid.New()
	repo.On("DeleteProject", ctx, id).Return(nil).Once()

	require.NoError(t, svc.DeleteProject(ctx, id))
	repo.AssertExpectations(t)
}

func TestProjectService_GetProject(t *testing.T) {
	ctx := context.Background()

	repo := new(mockProjectRepo)
	svc := services.NewProjectService(discardLogger(), repo, time.Minute)

	id := uuid.New()
	repo.On("GetProject", ctx, id).Return(models.Project{
		ID:    id,
		Title: "Summit",
		Gallery: []models.GalleryImage{
			{URL: "img/1.jpg", DisplayOrder: 1},
		},
	}, nil).Once()

	got, err := svc.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Summit", got.Title)
	require.Len(t, got.Gallery, 1)
	assert.Equal(t, "img/1.jpg", got.Gallery[0].URL)
}
