package repository

import (
	"context"
	"errors"
	"fmt"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

type ProjectRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewProjectRepo(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var projectColumns = []string{
	"id", "title", "category", "description", "details", "year", "client",
	"type_key", "tags", "display_order", "is_active", "is_featured",
	"created_at", "updated_at",
}

// ListProjects returns every project, newest first, with its gallery.
func (r *ProjectRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	const op = "repository.ProjectRepo.ListProjects"

	query, args, err := r.sb.Select(projectColumns...).
		From("projects").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	projects, err := r.queryProjects(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachGalleries(ctx, projects); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return projects, nil
}

// ListProjectsByTags filters projects by tags. matchAll selects projects
// carrying every tag; otherwise any tag matches.
func (r *ProjectRepo) ListProjectsByTags(ctx context.Context, tags []string, matchAll bool) ([]models.Project, error) {
	const op = "repository.ProjectRepo.ListProjectsByTags"

	queryBuilder := r.sb.Select(projectColumns...).
		From("projects").
		OrderBy("created_at DESC")

	if len(tags) > 0 {
		if matchAll {
			queryBuilder = queryBuilder.Where("tags @> ?", pq.Array(tags))
		} else {
			queryBuilder = queryBuilder.Where("tags && ?", pq.Array(tags))
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	projects, err := r.queryProjects(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachGalleries(ctx, projects); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return projects, nil
}

func (r *ProjectRepo) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	const op = "repository.ProjectRepo.GetProject"

	query, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}

	var project models.Project
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&project.ID,
		&project.Title,
		&project.Category,
		&project.Description,
		&project.Details,
		&project.Year,
		&project.Client,
		&project.TypeKey,
		&project.Tags,
		&project.DisplayOrder,
		&project.IsActive,
		&project.IsFeatured,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Project{}, fmt.Errorf("%s: %w", op, storage.ErrProjectNotFound)
		}
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}

	projects := []models.Project{project}
	if err := r.attachGalleries(ctx, projects); err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}

	return projects[0], nil
}

// UpsertProject inserts the project when it carries no id, updates the full
// row otherwise, and (when replaceGallery is set) swaps the gallery for the
// given set. Delete and re-insert run in one transaction, so a failure
// between the steps never leaves the gallery half-replaced.
func (r *ProjectRepo) UpsertProject(ctx context.Context, project models.Project, replaceGallery bool) (uuid.UUID, error) {
	const op = "repository.ProjectRepo.UpsertProject"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	id := project.ID

	if id == uuid.Nil {
		query, args, err := r.sb.Insert("projects").
			Columns(
				"title", "category", "description", "details", "year", "client",
				"type_key", "tags", "display_order", "is_active", "is_featured",
			).
			Values(
				project.Title, project.Category, project.Description, project.Details,
				project.Year, project.Client, project.TypeKey, project.Tags,
				project.DisplayOrder, project.IsActive, project.IsFeatured,
			).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		query, args, err := r.sb.Update("projects").
			Set("title", project.Title).
			Set("category", project.Category).
			Set("description", project.Description).
			Set("details", project.Details).
			Set("year", project.Year).
			Set("client", project.Client).
			Set("type_key", project.TypeKey).
			Set("tags", project.Tags).
			Set("display_order", project.DisplayOrder).
			Set("is_active", project.IsActive).
			Set("is_featured", project.IsFeatured).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
		if tag.RowsAffected() == 0 {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrProjectNotFound)
		}
	}

	if replaceGallery {
		query, args, err := r.sb.Delete("project_gallery").
			Where(squirrel.Eq{"project_id": id}).
			ToSql()
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		if len(project.Gallery) > 0 {
			insertBuilder := r.sb.Insert("project_gallery").
				Columns("project_id", "url", "alt", "display_order")

			for _, image := range project.Gallery {
				insertBuilder = insertBuilder.Values(id, image.URL, image.Alt, image.DisplayOrder)
			}

			query, args, err := insertBuilder.ToSql()
			if err != nil {
				return uuid.Nil, fmt.Errorf("%s: %w", op, err)
			}

			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return uuid.Nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// DeleteProject removes the project and its gallery rows in one transaction.
func (r *ProjectRepo) DeleteProject(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ProjectRepo.DeleteProject"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Delete("project_gallery").
		Where(squirrel.Eq{"project_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Delete("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrProjectNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ProjectRepo) queryProjects(ctx context.Context, query string, args []interface{}) ([]models.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Category,
			&project.Description,
			&project.Details,
			&project.Year,
			&project.Client,
			&project.TypeKey,
			&project.Tags,
			&project.DisplayOrder,
			&project.IsActive,
			&project.IsFeatured,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// attachGalleries loads gallery rows for the given projects in one query and
// stitches them in, preserving display_order.
func (r *ProjectRepo) attachGalleries(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	query, args, err := r.sb.Select("id", "project_id", "url", "alt", "display_order").
		From("project_gallery").
		Where(squirrel.Eq{"project_id": ids}).
		OrderBy("display_order ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]models.GalleryImage)
	for rows.Next() {
		var image models.GalleryImage
		if err := rows.Scan(&image.ID, &image.ProjectID, &image.URL, &image.Alt, &image.DisplayOrder); err != nil {
			return err
		}
		byProject[image.ProjectID] = append(byProject[image.ProjectID], image)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range projects {
		projects[i].Gallery = byProject[projects[i].ID]
	}

	return nil
}
