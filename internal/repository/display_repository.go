package repository

import (
	"context"
	"fmt"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// DisplayRepo backs the two ordered display lists on the landing page:
// hero images and client logos.
type DisplayRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewDisplayRepo(db *pgxpool.Pool) *DisplayRepo {
	return &DisplayRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *DisplayRepo) ListHeroImages(ctx context.Context, activeOnly bool) ([]models.HeroImage, error) {
	const op = "repository.DisplayRepo.ListHeroImages"

	queryBuilder := r.sb.Select("id", "url", "alt", "display_order", "is_active").
		From("hero_images").
		OrderBy("display_order ASC")

	if activeOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var images []models.HeroImage
	for rows.Next() {
		var image models.HeroImage
		if err := rows.Scan(&image.ID, &image.URL, &image.Alt, &image.DisplayOrder, &image.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, image)
	}

	return images, rows.Err()
}

func (r *DisplayRepo) UpsertHeroImage(ctx context.Context, image models.HeroImage) (uuid.UUID, error) {
	const op = "repository.DisplayRepo.UpsertHeroImage"

	if image.ID == uuid.Nil {
		query, args, err := r.sb.Insert("hero_images").
			Columns("url", "alt", "display_order", "is_active").
			Values(image.URL, image.Alt, image.DisplayOrder, image.IsActive).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		var id uuid.UUID
		if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		return id, nil
	}

	query, args, err := r.sb.Update("hero_images").
		Set("url", image.URL).
		Set("alt", image.Alt).
		Set("display_order", image.DisplayOrder).
		Set("is_active", image.IsActive).
		Where(squirrel.Eq{"id": image.ID}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return image.ID, nil
}

func (r *DisplayRepo) DeleteHeroImage(ctx context.Context, id uuid.UUID) error {
	const op = "repository.DisplayRepo.DeleteHeroImage"

	return r.deleteByID(ctx, op, "hero_images", id)
}

func (r *DisplayRepo) ListClientLogos(ctx context.Context, activeOnly bool) ([]models.ClientLogo, error) {
	const op = "repository.DisplayRepo.ListClientLogos"

	queryBuilder := r.sb.Select("id", "name", "url", "display_order", "is_active").
		From("client_logos").
		OrderBy("display_order ASC")

	if activeOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var logos []models.ClientLogo
	for rows.Next() {
		var logo models.ClientLogo
		if err := rows.Scan(&logo.ID, &logo.Name, &logo.URL, &logo.DisplayOrder, &logo.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logos = append(logos, logo)
	}

	return logos, rows.Err()
}

func (r *DisplayRepo) UpsertClientLogo(ctx context.Context, logo models.ClientLogo) (uuid.UUID, error) {
	const op = "repository.DisplayRepo.UpsertClientLogo"

	if logo.ID == uuid.Nil {
		query, args, err := r.sb.Insert("client_logos").
			Columns("name", "url", "display_order", "is_active").
			Values(logo.Name, logo.URL, logo.DisplayOrder, logo.IsActive).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		var id uuid.UUID
		if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		return id, nil
	}

	query, args, err := r.sb.Update("client_logos").
		Set("name", logo.Name).
		Set("url", logo.URL).
		Set("display_order", logo.DisplayOrder).
		Set("is_active", logo.IsActive).
		Where(squirrel.Eq{"id": logo.ID}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return logo.ID, nil
}

func (r *DisplayRepo) DeleteClientLogo(ctx context.Context, id uuid.UUID) error {
	const op = "repository.DisplayRepo.DeleteClientLogo"

	return r.deleteByID(ctx, op, "client_logos", id)
}

func (r *DisplayRepo) deleteByID(ctx context.Context, op, table string, id uuid.UUID) error {
	query, args, err := r.sb.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
