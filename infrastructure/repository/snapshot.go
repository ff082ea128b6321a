package repository

import (
	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

var ErrDataUnavailable = errors.New("data unavailable")

type SnapshotRepository interface {
	Load() (*domain.Snapshot, error)
}

type snapshotRepository struct {
	path string
}

func NewSnapshotRepository(path string) SnapshotRepository {
	return &snapshotRepository{path: path}
}

// Load lê o arquivo de dados inteiro. Qualquer falha é ErrDataUnavailable
// e o chamador decide seguir com domain.EmptySnapshot().
func (r *snapshotRepository) Load() (*domain.Snapshot, error) {
	var data domain.SnapshotData
	if err := readJSON(r.path, &data); err != nil {
		return nil, errors.Wrap(ErrDataUnavailable, err.Error())
	}

	return domain.NewSnapshot(data), nil
}
