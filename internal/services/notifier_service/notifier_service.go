package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventcraft/internal/domain/models"
	"eventcraft/internal/lib/logger/sl"
	"eventcraft/internal/metrics"
	"eventcraft/internal/repository"
	"eventcraft/internal/storage"
	"eventcraft/internal/transport/http/dto"
)

// Mailer delivers one HTML email to the given recipients.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

// MissingFieldsError names the payload fields a notification call lacked.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NotifierService turns bookings, inquiries and database webhooks into
// operator (and optionally customer) emails. Single-shot, no retries.
type NotifierService struct {
	log                 *slog.Logger
	mailer              Mailer
	ledger              repository.BookingLedger
	operatorEmail       string
	customerSendEnabled bool
	dedupTTL            time.Duration
}

func NewNotifierService(
	log *slog.Logger,
	mailer Mailer,
	ledger repository.BookingLedger,
	operatorEmail string,
	customerSendEnabled bool,
	dedupTTL time.Duration,
) *NotifierService {
	return &NotifierService{
		log:                 log,
		mailer:              mailer,
		ledger:              ledger,
		operatorEmail:       operatorEmail,
		customerSendEnabled: customerSendEnabled,
		dedupTTL:            dedupTTL,
	}
}

// NotifyBooking sends the operator email first; its failure fails the call.
// The customer email is second and best-effort, and is skipped entirely
// when customer sends are disabled in config. A booking id that was already
// notified sends nothing and reports duplicate.
func (s *NotifierService) NotifyBooking(ctx context.Context, booking models.Booking) (dto.BookingNotifyResponse, error) {
	const op = "service.NotifierService.NotifyBooking"
	log := s.log.With(
		slog.String("op", op),
		slog.String("booking_id", booking.BookingID),
	)

	var missing []string
	if booking.Email == "" {
		missing = append(missing, "email")
	}
	if booking.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if len(missing) > 0 {
		log.Warn("booking payload incomplete", slog.Any("missing", missing))
		return dto.BookingNotifyResponse{}, &MissingFieldsError{Fields: missing}
	}

	resp := dto.BookingNotifyResponse{BookingID: booking.BookingID}

	marked := false
	if booking.BookingID != "" {
		first, err := s.ledger.MarkNotified(ctx, booking.BookingID, s.dedupTTL)
		if err != nil {
			// the ledger being down must not block notifications
			log.Warn("dedup check failed, sending anyway", sl.Err(err))
		} else if !first {
			log.Info("duplicate booking notification suppressed")
			resp.Duplicate = true
			return resp, nil
		} else {
			marked = true
		}
	}

	operatorHTML, err := renderBookingOperatorEmail(booking)
	if err != nil {
		s.releaseLedger(ctx, log, marked, booking.BookingID)
		return resp, fmt.Errorf("%s: %w", op, err)
	}

	subject := fmt.Sprintf("New booking: %s (%s)", booking.CustomerName, booking.Slot)
	if err := s.mailer.Send(ctx, []string{s.operatorEmail}, subject, operatorHTML); err != nil {
		metrics.EmailsTotal.WithLabelValues("booking_operator", "error").Inc()
		log.Error("failed to send operator email", sl.Err(err))
		// release the dedup record so a retry is not suppressed as a duplicate
		s.releaseLedger(ctx, log, marked, booking.BookingID)
		return resp, fmt.Errorf("%s: %w", op, err)
	}
	metrics.EmailsTotal.WithLabelValues("booking_operator", "ok").Inc()
	resp.OperatorNotified = true

	if s.customerSendEnabled {
		customerHTML, err := renderBookingCustomerEmail(booking)
		if err != nil {
			log.Error("failed to render customer email", sl.Err(err))
			return resp, nil
		}

		err = s.mailer.Send(ctx, []string{booking.Email}, "Your call is confirmed", customerHTML)
		if err != nil {
			metrics.EmailsTotal.WithLabelValues("booking_customer", "error").Inc()
			log.Error("failed to send customer email", sl.Err(err))
		} else {
			metrics.EmailsTotal.WithLabelValues("booking_customer", "ok").Inc()
			resp.CustomerNotified = true
		}
	}

	log.Info("booking notification sent")
	return resp, nil
}

func (s *NotifierService) releaseLedger(ctx context.Context, log *slog.Logger, marked bool, bookingID string) {
	if !marked {
		return
	}
	if err := s.ledger.Forget(ctx, bookingID); err != nil {
		log.Warn("failed to release dedup record", sl.Err(err))
	}
}

// NotifyInquiry emails the operator about a freshly stored lead.
func (s *NotifierService) NotifyInquiry(ctx context.Context, inquiry models.Inquiry) error {
	const op = "service.NotifierService.NotifyInquiry"

	html, err := renderInquiryEmail(inquiry)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	subject := fmt.Sprintf("New %s inquiry from %s", inquiry.Service.Label(), inquiry.Name)
	if err := s.mailer.Send(ctx, []string{s.operatorEmail}, subject, html); err != nil {
		metrics.EmailsTotal.WithLabelValues("inquiry", "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.EmailsTotal.WithLabelValues("inquiry", "ok").Inc()
	return nil
}

// HandleWebhook formats a row-insert event from one of the inquiry tables
// into an operator email. One inbound event, one outbound send.
func (s *NotifierService) HandleWebhook(ctx context.Context, table string, record map[string]interface{}) error {
	const op = "service.NotifierService.HandleWebhook"
	log := s.log.With(
		slog.String("op", op),
		slog.String("table", table),
	)

	service, ok := models.ServiceByTable(table)
	if !ok {
		log.Warn("webhook for unknown table")
		return fmt.Errorf("%s: %w", op, storage.ErrUnknownService)
	}

	html, err := renderWebhookEmail(service.Label(), record, service == models.ServiceTraining)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	subject := fmt.Sprintf("New %s inquiry", service.Label())
	if err := s.mailer.Send(ctx, []string{s.operatorEmail}, subject, html); err != nil {
		metrics.EmailsTotal.WithLabelValues("webhook", "error").Inc()
		log.Error("failed to send webhook email", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.EmailsTotal.WithLabelValues("webhook", "ok").Inc()
	log.Info("webhook notification sent")
	return nil
}
