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

// InquiryRepo writes and reads the four per-service inquiry tables. The
// training_program table carries two extra columns; the others share the
// common contact/event shape.
type InquiryRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewInquiryRepo(db *pgxpool.Pool) *InquiryRepo {
	return &InquiryRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *InquiryRepo) SaveInquiry(ctx context.Context, inquiry models.Inquiry) (uuid.UUID, error) {
	const op = "repository.InquiryRepo.SaveInquiry"

	table, ok := inquiry.Service.Table()
	if !ok {
		return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrUnknownService)
	}

	columns := []string{
		"name", "email", "phone", "company", "event_date",
		"headcount", "budget", "location", "message", "status",
	}
	values := []interface{}{
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Company, inquiry.EventDate,
		inquiry.Headcount, inquiry.Budget, inquiry.Location, inquiry.Message, inquiry.Status,
	}

	if inquiry.Service == models.ServiceTraining {
		columns = append(columns, "training_topic", "training_format")
		values = append(values, inquiry.TrainingTopic, inquiry.TrainingFormat)
	}

	query, args, err := r.sb.Insert(table).
		Columns(columns...).
		Values(values...).
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

func (r *InquiryRepo) ListInquiries(ctx context.Context, service models.ServiceLine, page, perPage int) ([]models.Inquiry, int, error) {
	const op = "repository.InquiryRepo.ListInquiries"

	table, ok := service.Table()
	if !ok {
		return nil, 0, fmt.Errorf("%s: %w", op, storage.ErrUnknownService)
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	total, err := r.countInquiries(ctx, table)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	columns := []string{
		"id", "name", "email", "phone", "company", "event_date",
		"headcount", "budget", "location", "message", "status", "created_at",
	}
	training := service == models.ServiceTraining
	if training {
		columns = append(columns, "training_topic", "training_format")
	}

	query, args, err := r.sb.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		inquiry := models.Inquiry{Service: service}

		dest := []interface{}{
			&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.Company,
			&inquiry.EventDate, &inquiry.Headcount, &inquiry.Budget, &inquiry.Location,
			&inquiry.Message, &inquiry.Status, &inquiry.CreatedAt,
		}
		if training {
			dest = append(dest, &inquiry.TrainingTopic, &inquiry.TrainingFormat)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, total, rows.Err()
}

func (r *InquiryRepo) countInquiries(ctx context.Context, table string) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error build query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error execute query: %w", err)
	}

	return count, nil
}
