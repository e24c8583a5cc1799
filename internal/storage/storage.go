package storage

import (
	"stv/internal/config"
	"stv/internal/domain"
)

// Storage persists and loads run reports (e.g. for the faills viewer).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.Report, error)
}

// JSONStorage stores the run report in a JSON file under the configured
// results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output
// JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
