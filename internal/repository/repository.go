package repository

import (
	"context"

	"eventcraft/internal/storage/postgresql"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db          *pgxpool.Pool
	Project     ProjectRepository
	ProjectType ProjectTypeRepository
	Inquiry     InquiryRepository
	Display     DisplayRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := postgresql.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &Repository{
		db:          db,
		Project:     NewProjectRepo(db),
		ProjectType: NewProjectTypeRepo(db),
		Inquiry:     NewInquiryRepo(db),
		Display:     NewDisplayRepo(db),
	}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repository) Close() {
	r.db.Close()
}
