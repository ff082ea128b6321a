package notifying

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

type Mailer interface {
	Send(ctx context.Context, email domain.RestockEmail) error
}

type Notifier interface {
	// SendRestockEmail tenta o SMTP e, se falhar ou não estiver configurado, grava no outbox
	SendRestockEmail(ctx context.Context, email domain.RestockEmail) (*domain.EmailDelivery, error)
}

type Service struct {
	mailer Mailer
	outbox repository.OutboxRepository
	now    func() time.Time
}

// NewService recebe mailer nil quando o SMTP não está configurado
func NewService(mailer Mailer, outbox repository.OutboxRepository) Notifier {
	return &Service{
		mailer: mailer,
		outbox: outbox,
		now:    time.Now,
	}
}

func (s *Service) SendRestockEmail(ctx context.Context, email domain.RestockEmail) (*domain.EmailDelivery, error) {
	if err := utils.Validate.Struct(email); err != nil {
		return nil, &ValidationError{Fields: utils.ProcessValidationErrors(err)}
	}

	if s.mailer != nil {
		err := s.mailer.Send(ctx, email)
		if err == nil {
			return &domain.EmailDelivery{Status: domain.DeliverySent}, nil
		}

		log.ForContext(ctx).WithError(err).Error("email: smtp send failed, saving to outbox")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutboxWrite, err)
	}

	record := domain.OutboxRecord{
		ID:        id,
		To:        email.To,
		Subject:   email.Subject,
		Body:      email.Body,
		CreatedAt: s.now().UTC(),
	}

	if err := s.outbox.Append(record); err != nil {
		log.ForContext(ctx).WithError(err).Error("email: failed to write outbox")
		return nil, fmt.Errorf("%w: %v", ErrOutboxWrite, err)
	}

	log.ForContext(ctx).Infof("email: restock email %s saved to %s", id, s.outbox.Path())

	return &domain.EmailDelivery{
		Status: domain.DeliverySaved,
		Path:   s.outbox.Path(),
	}, nil
}
