package repository

import (
	"context"
	"time"

	"eventcraft/internal/domain/models"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListProjectsByTags(ctx context.Context, tags []string, matchAll bool) ([]models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (models.Project, error)
	UpsertProject(ctx context.Context, project models.Project, replaceGallery bool) (uuid.UUID, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type ProjectTypeRepository interface {
	CreateProjectType(ctx context.Context, projectType models.ProjectType) (models.ProjectType, error)
	ListProjectTypes(ctx context.Context) ([]models.ProjectType, error)
}

type InquiryRepository interface {
	SaveInquiry(ctx context.Context, inquiry models.Inquiry) (uuid.UUID, error)
	ListInquiries(ctx context.Context, service models.ServiceLine, page, perPage int) ([]models.Inquiry, int, error)
}

type DisplayRepository interface {
	ListHeroImages(ctx context.Context, activeOnly bool) ([]models.HeroImage, error)
	UpsertHeroImage(ctx context.Context, image models.HeroImage) (uuid.UUID, error)
	DeleteHeroImage(ctx context.Context, id uuid.UUID) error
	ListClientLogos(ctx context.Context, activeOnly bool) ([]models.ClientLogo, error)
	UpsertClientLogo(ctx context.Context, logo models.ClientLogo) (uuid.UUID, error)
	DeleteClientLogo(ctx context.Context, id uuid.UUID) error
}

// BookingLedger remembers which booking ids have already produced
// notification emails, so a duplicate trigger sends nothing.
type BookingLedger interface {
	MarkNotified(ctx context.Context, bookingID string, ttl time.Duration) (bool, error)
	Forget(ctx context.Context, bookingID string) error
}
