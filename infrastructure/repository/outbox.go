package repository

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// OutboxRepository guarda os e-mails que não puderam ser enviados por SMTP
type OutboxRepository interface {
	Append(record domain.OutboxRecord) error
	List() ([]domain.OutboxRecord, error)
	Path() string
}

type outboxRepository struct {
	path string
	mu   sync.Mutex
}

func NewOutboxRepository(path string) OutboxRepository {
	return &outboxRepository{path: path}
}

func (r *outboxRepository) Append(record domain.OutboxRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		return err
	}

	return writeJSON(r.path, append(records, record))
}

func (r *outboxRepository) List() ([]domain.OutboxRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read()
}

func (r *outboxRepository) read() ([]domain.OutboxRecord, error) {
	records := make([]domain.OutboxRecord, 0)
	if err := readJSON(r.path, &records); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return records, nil
}

func (r *outboxRepository) Path() string {
	return r.path
}
