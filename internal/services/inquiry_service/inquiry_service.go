package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/lib/logger/sl"
	"eventcraft/internal/repository"
	"eventcraft/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// InquiryNotifier sends the lead notification email. The inquiry service
// treats it as best-effort: the stored row is the source of truth.
type InquiryNotifier interface {
	NotifyInquiry(ctx context.Context, inquiry models.Inquiry) error
}

type InquiryService struct {
	log      *slog.Logger
	repo     repository.InquiryRepository
	notifier InquiryNotifier
}

func NewInquiryService(log *slog.Logger, repo repository.InquiryRepository, notifier InquiryNotifier) *InquiryService {
	return &InquiryService{
		log:      log,
		repo:     repo,
		notifier: notifier,
	}
}

// Submit stores a lead and dispatches the notification email. A failed
// email never fails the call: the row is already durable and the operator
// can still see it in the admin list.
func (s *InquiryService) Submit(ctx context.Context, service models.ServiceLine, req dto.InquiryRequest) (uuid.UUID, error) {
	const op = "service.InquiryService.Submit"
	log := s.log.With(
		slog.String("op", op),
		slog.String("service", string(service)),
	)

	if req.Name == "" {
		return uuid.Nil, ErrNameRequired
	}
	if req.Email == "" {
		return uuid.Nil, ErrEmailRequired
	}

	inquiry := models.Inquiry{
		Service:        service,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		EventDate:      req.EventDate,
		Headcount:      req.Headcount,
		Budget:         req.Budget,
		Location:       req.Location,
		Message:        req.Message,
		TrainingTopic:  req.TrainingTopic,
		TrainingFormat: req.TrainingFormat,
		Status:         "new",
	}

	id, err := s.repo.SaveInquiry(ctx, inquiry)
	if err != nil {
		log.Error("failed to save inquiry", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	inquiry.ID = id
	if err := s.notifier.NotifyInquiry(ctx, inquiry); err != nil {
		log.Error("inquiry saved but notification failed", sl.Err(err))
	}

	log.Info("inquiry submitted", slog.String("id", id.String()))
	return id, nil
}

func (s *InquiryService) List(ctx context.Context, service models.ServiceLine, page, perPage int) (*dto.InquiryListResponse, error) {
	const op = "service.InquiryService.List"

	inquiries, total, err := s.repo.ListInquiries(ctx, service, page, perPage)
	if err != nil {
		s.log.Error("failed to list inquiries", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}

	return &dto.InquiryListResponse{
		Items:   inquiries,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}
