package repository

import (
	"context"
	"errors"
	"fmt"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Postgres SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

type ProjectTypeRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewProjectTypeRepo(db *pgxpool.Pool) *ProjectTypeRepo {
	return &ProjectTypeRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProjectType inserts a type and returns the stored row. type_key is
// unique; a duplicate surfaces as storage.ErrProjectTypeExists.
func (r *ProjectTypeRepo) CreateProjectType(ctx context.Context, projectType models.ProjectType) (models.ProjectType, error) {
	const op = "repository.ProjectTypeRepo.CreateProjectType"

	query, args, err := r.sb.Insert("project_types").
		Columns("type_key", "description", "display_order").
		Values(projectType.TypeKey, projectType.Description, projectType.DisplayOrder).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.ProjectType{}, fmt.Errorf("%s: %w", op, err)
	}

	created := projectType
	err = r.db.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return models.ProjectType{}, fmt.Errorf("%s: %w", op, storage.ErrProjectTypeExists)
		}
		return models.ProjectType{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *ProjectTypeRepo) ListProjectTypes(ctx context.Context) ([]models.ProjectType, error) {
	const op = "repository.ProjectTypeRepo.ListProjectTypes"

	query, args, err := r.sb.Select("id", "type_key", "description", "display_order", "created_at").
		From("project_types").
		OrderBy("display_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var types []models.ProjectType
	for rows.Next() {
		var projectType models.ProjectType
		err := rows.Scan(
			&projectType.ID,
			&projectType.TypeKey,
			&projectType.Description,
			&projectType.DisplayOrder,
			&projectType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		types = append(types, projectType)
	}

	return types, rows.Err()
}
