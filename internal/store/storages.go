package store

import (
	"context"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
)

// Storages bundles the shared database handle and every repository built on
// top of it. A single instance is constructed at startup and handed to the
// service layer.
type Storages struct {
	DB *DB

	UserRepository          UserRepository
	AdvertisementRepository AdvertisementRepository
	SessionRepository       SessionRepository
}

// NewStorages opens the database connection for the configured backend,
// prepares the schema, and wires all repositories to the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                      db,
		UserRepository:          NewUserRepository(db, logger),
		AdvertisementRepository: NewAdvertisementRepository(db, logger),
		SessionRepository:       NewSessionRepository(db, logger),
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
