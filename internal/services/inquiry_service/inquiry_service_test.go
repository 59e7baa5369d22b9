package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"eventcraft/internal/domain/models"
	services "eventcraft/internal/services/inquiry_service"
	"eventcraft/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInquiryRepo struct{ mock.Mock }

func (m *mockInquiryRepo) SaveInquiry(ctx context.Context, inquiry models.Inquiry) (uuid.UUID, error) {
	args := m.Called(ctx, inquiry)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockInquiryRepo) ListInquiries(ctx context.Context, service models.ServiceLine, page, perPage int) ([]models.Inquiry, int, error) {
	args := m.Called(ctx, service, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Inquiry), args.Int(1), args.Error(2)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyInquiry(ctx context.Context, inquiry models.Inquiry) error {
	return m.Called(ctx, inquiry).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInquiryService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("name required", func(t *testing.T) {
		repo := new(mockInquiryRepo)
		svc := services.NewInquiryService(discardLogger(), repo, new(mockNotifier))

		_, err := svc.Submit(ctx, models.ServiceCSR, dto.InquiryRequest{Email: "jo@example.com"})
		require.ErrorIs(t, err, services.ErrNameRequired)
		repo.AssertNotCalled(t, "SaveInquiry", mock.Anything, mock.Anything)
	})

	t.Run("email required", func(t *testing.T) {
		repo := new(mockInquiryRepo)
		svc := services.NewInquiryService(discardLogger(), repo, new(mockNotifier))

		_, err := svc.Submit(ctx, models.ServiceCSR, dto.InquiryRequest{Name: "Jo"})
		require.ErrorIs(t, err, services.ErrEmailRequired)
	})

	t.Run("stores with status new and notifies", func(t *testing.T) {
		repo := new(mockInquiryRepo)
		notif := new(mockNotifier)
		svc := services.NewInquiryService(discardLogger(), repo, notif)

		id := uuid.New()
		repo.On("SaveInquiry", ctx, mock.MatchedBy(func(i models.Inquiry) bool {
			return i.Status == "new" && i.Service == models.ServiceTeamBuilding
		})).Return(id, nil).Once()
		notif.On("NotifyInquiry", ctx, mock.MatchedBy(func(i models.Inquiry) bool {
			return i.ID == id
		})).Return(nil).Once()

		got, err := svc.Submit(ctx, models.ServiceTeamBuilding, dto.InquiryRequest{
			Name:  "Jo",
			Email: "jo@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, id, got)
		repo.AssertExpectations(t)
		notif.AssertExpectations(t)
	})

	t.Run("notification failure does not fail the call", func(t *testing.T) {
		repo := new(mockInquiryRepo)
		notif := new(mockNotifier)
		svc := services.NewInquiryService(discardLogger(), repo, notif)

		repo.On("SaveInquiry", ctx, mock.Anything).Return(uuid.New(), nil).Once()
		notif.On("NotifyInquiry", ctx, mock.Anything).Return(errors.New("mailer down")).Once()

		_, err := svc.Submit(ctx, models.ServiceCSR, dto.InquiryRequest{
			Name:  "Jo",
			Email: "jo@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("save failure fails the call and skips notification", func(t *testing.T) {
		repo := new(mockInquiryRepo)
		notif := new(mockNotifier)
		svc := services.NewInquiryService(discardLogger(), repo, notif)

		repo.On("SaveInquiry", ctx, mock.Anything).Return(uuid.Nil, errors.New("db down")).Once()

		_, err := svc.Submit(ctx, models.ServiceCSR, dto.InquiryRequest{
			Name:  "Jo",
			Email: "jo@example.com",
		})
		require.Error(t, err)
		notif.AssertNotCalled(t, "NotifyInquiry", mock.Anything, mock.Anything)
	})
}

func TestInquiryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("nil repo result becomes empty items", func(t *testing.T) {
		repo := new(mockInquiryRepo)
		svc := services.NewInquiryService(discardLogger(), repo, new(mockNotifier))

		repo.On("ListInquiries", ctx, models.ServiceCSR, 1, 20).
			Return(nil, 0, nil).Once()

		list, err := svc.List(ctx, models.ServiceCSR, 1, 20)
		require.NoError(t, err)
		assert.NotNil(t, list.Items)
		assert.Empty(t, list.Items)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 20, list.PerPage)
	})

	t.Run("passes through totals", func(t *testing.T) {
		repo := new(mockInquiryRepo)
		svc := services.NewInquiryService(discardLogger(), repo, new(mockNotifier))

		repo.On("ListInquiries", ctx, models.ServiceTraining, 2, 10).
			Return([]models.Inquiry{{Name: "Sam"}}, 11, nil).Once()

		list, err := svc.List(ctx, models.ServiceTraining, 2, 10)
		require.NoError(t, err)
		assert.Equal(t, 11, list.Total)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "Sam", list.Items[0].Name)
	})
}
