package service

import (
	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
)

type Services struct {
	AuthService          AuthService
	SessionService       SessionService
	AdvertisementService AdvertisementService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, logger),
		SessionService:       NewSessionService(storages.SessionRepository, cfg.Auth, logger),
		AdvertisementService: NewAdvertisementService(storages.AdvertisementRepository, logger),
	}
}
