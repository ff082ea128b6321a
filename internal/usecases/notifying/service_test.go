package notifying

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/commerce-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/notifying/mocks"
)

var validEmail = domain.RestockEmail{
	To:      "owner@example.com",
	Subject: "Restock needed",
	Body:    "Order 20 units of Widget.",
}

func TestSendRestockEmail_SentBySMTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	outbox := repomocks.NewMockOutboxRepository(ctrl)

	mailer.EXPECT().Send(gomock.Any(), validEmail).Return(nil)

	delivery, err := NewService(mailer, outbox).SendRestockEmail(context.Background(), validEmail)
	require.NoError(t, err)
	assert.Equal(t, &domain.EmailDelivery{Status: domain.DeliverySent}, delivery)
}

func TestSendRestockEmail_SMTPFailureFallsBackToOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	outbox := repomocks.NewMockOutboxRepository(ctrl)

	mailer.EXPECT().Send(gomock.Any(), validEmail).Return(errors.New("auth failed"))
	outbox.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(record domain.OutboxRecord) error {
			assert.Len(t, record.ID, 12)
			assert.Equal(t, validEmail.To, record.To)
			assert.Equal(t, validEmail.Subject, record.Subject)
			assert.Equal(t, validEmail.Body, record.Body)
			assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), record.CreatedAt)
			return nil
		})
	outbox.EXPECT().Path().Return("data/outgoing_emails.json").AnyTimes()

	service := NewService(mailer, outbox).(*Service)
	service.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	delivery, err := service.SendRestockEmail(context.Background(), validEmail)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverySaved, delivery.Status)
	assert.Equal(t, "data/outgoing_emails.json", delivery.Path)
}

func TestSendRestockEmail_NoMailerSavesToOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := repomocks.NewMockOutboxRepository(ctrl)

	outbox.EXPECT().Append(gomock.Any()).Return(nil)
	outbox.EXPECT().Path().Return("out.json").AnyTimes()

	delivery, err := NewService(nil, outbox).SendRestockEmail(context.Background(), validEmail)
	require.NoError(t, err)
	assert.Equal(t, &domain.EmailDelivery{Status: domain.DeliverySaved, Path: "out.json"}, delivery)
}

func TestSendRestockEmail_OutboxFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := repomocks.NewMockOutboxRepository(ctrl)

	outbox.EXPECT().Append(gomock.Any()).Return(errors.New("read-only file system"))

	_, err := NewService(nil, outbox).SendRestockEmail(context.Background(), validEmail)
	assert.ErrorIs(t, err, ErrOutboxWrite)
}

func TestSendRestockEmail_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    domain.RestockEmail
		expected map[string]string
	}{
		{
			name:     "sem destinatário",
			email:    domain.RestockEmail{Subject: "s", Body: "b"},
			expected: map[string]string{"to": "required"},
		},
		{
			name:     "e-mail inválido",
			email:    domain.RestockEmail{To: "owner", Subject: "s", Body: "b"},
			expected: map[string]string{"to": "email"},
		},
		{
			name:     "sem assunto e corpo",
			email:    domain.RestockEmail{To: "owner@example.com"},
			expected: map[string]string{"subject": "required", "body": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mailer := mocks.NewMockMailer(ctrl)
			outbox := repomocks.NewMockOutboxRepository(ctrl)

			_, err := NewService(mailer, outbox).SendRestockEmail(context.Background(), tt.email)
			require.ErrorIs(t, err, ErrInvalidEmail)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expected, validationErr.Fields)
		})
	}
}
