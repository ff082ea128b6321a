package repository

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

var ErrCompetitorDataNotFound = errors.New("competitor data not found, trigger a competitor scrape first")

type CompetitorRepository interface {
	List() ([]domain.CompetitorRecord, error)
	Save(records []domain.CompetitorRecord) error
	Path() string
}

type competitorRepository struct {
	path string
	mu   sync.RWMutex
}

func NewCompetitorRepository(path string) CompetitorRepository {
	return &competitorRepository{path: path}
}

func (r *competitorRepository) List() ([]domain.CompetitorRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.CompetitorRecord, 0)
	if err := readJSON(r.path, &records); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCompetitorDataNotFound
		}
		return nil, err
	}

	return records, nil
}

func (r *competitorRepository) Save(records []domain.CompetitorRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSON(r.path, records)
}

func (r *competitorRepository) Path() string {
	return r.path
}
