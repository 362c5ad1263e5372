package store

import (
	"context"

	"github.com/MKhiriev/go-ad-board/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

type AdvertisementRepository interface {
	Create(ctx context.Context, ad models.Advertisement) (models.Advertisement, error)
	GetByID(ctx context.Context, adID int64) (models.Advertisement, error)
	GetAll(ctx context.Context) ([]models.Advertisement, error)
	Delete(ctx context.Context, adID int64) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
