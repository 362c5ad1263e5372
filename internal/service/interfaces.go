package service

import (
	"context"

	"github.com/MKhiriev/go-ad-board/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
}

type SessionService interface {
	CreateSession(ctx context.Context, user models.User) (models.Token, error)
	Authenticate(ctx context.Context, tokenString string) (models.Token, error)
	EndSession(ctx context.Context, sessionID string) error
}

type AdvertisementService interface {
	Create(ctx context.Context, title, description string, ownerID int64) (models.Advertisement, error)
	GetByID(ctx context.Context, adID int64) (models.Advertisement, error)
	GetAll(ctx context.Context) ([]models.Advertisement, error)
	Delete(ctx context.Context, adID, requesterID int64) error
}
