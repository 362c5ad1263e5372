package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/models"
)

// advertisementService is the concrete implementation of AdvertisementService.
type advertisementService struct {
	advertisementRepository store.AdvertisementRepository
	logger                  *logger.Logger
}

// NewAdvertisementService constructs an AdvertisementService wired to the
// given AdvertisementRepository.
func NewAdvertisementService(advertisementRepository store.AdvertisementRepository, logger *logger.Logger) AdvertisementService {
	return &advertisementService{
		advertisementRepository: advertisementRepository,
		logger:                  logger,
	}
}

// Create validates and persists a new advertisement owned by ownerID.
//
// Title and description must be non-empty and fit the storage caps,
// otherwise ErrInvalidDataProvided is returned. The creation timestamp is
// assigned server-side.
func (a *advertisementService) Create(ctx context.Context, title, description string, ownerID int64) (models.Advertisement, error) {
	log := logger.FromContext(ctx)

	if title == "" || description == "" ||
		len(title) > models.TitleMaxLen || len(description) > models.DescriptionMaxLen {
		log.Error().Int64("owner_id", ownerID).Msg("invalid advertisement data provided")
		return models.Advertisement{}, ErrInvalidDataProvided
	}

	advertisement := models.Advertisement{
		Title:        title,
		Description:  description,
		CreationDate: time.Now().UTC(),
		OwnerID:      ownerID,
	}

	createdAdvertisement, err := a.advertisementRepository.Create(ctx, advertisement)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("advertisement creation ended with error")
		return models.Advertisement{}, fmt.Errorf("advertisement creation ended with error: %w", err)
	}

	return createdAdvertisement, nil
}

// GetByID returns a single advertisement by its id.
func (a *advertisementService) GetByID(ctx context.Context, adID int64) (models.Advertisement, error) {
	log := logger.FromContext(ctx)

	advertisement, err := a.advertisementRepository.GetByID(ctx, adID)
	if err != nil {
		log.Debug().Err(err).Int64("ad_id", adID).Msg("advertisement search ended with error")
		return models.Advertisement{}, fmt.Errorf("advertisement search ended with error: %w", err)
	}

	return advertisement, nil
}

// GetAll returns every stored advertisement ordered by id.
func (a *advertisementService) GetAll(ctx context.Context) ([]models.Advertisement, error) {
	log := logger.FromContext(ctx)

	advertisements, err := a.advertisementRepository.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("advertisements listing ended with error")
		return nil, fmt.Errorf("advertisements listing ended with error: %w", err)
	}

	return advertisements, nil
}

// Delete removes the advertisement with the given id on behalf of
// requesterID.
//
// The advertisement must exist and be owned by the requester:
//   - store.ErrAdvertisementNotFound if no such advertisement exists.
//   - ErrNotAdvertisementOwner if it belongs to somebody else; the record
//     is left untouched.
func (a *advertisementService) Delete(ctx context.Context, adID int64, requesterID int64) error {
	log := logger.FromContext(ctx)

	advertisement, err := a.advertisementRepository.GetByID(ctx, adID)
	if err != nil {
		log.Debug().Err(err).Int64("ad_id", adID).Msg("advertisement search ended with error")
		return fmt.Errorf("advertisement search ended with error: %w", err)
	}

	if advertisement.OwnerID != requesterID {
		log.Debug().Int64("ad_id", adID).Int64("owner_id", advertisement.OwnerID).Int64("requester_id", requesterID).
			Msg("delete attempt by non-owner")
		return ErrNotAdvertisementOwner
	}

	if err := a.advertisementRepository.Delete(ctx, adID); err != nil {
		log.Err(err).Int64("ad_id", adID).Msg("advertisement deletion ended with error")
		return fmt.Errorf("advertisement deletion ended with error: %w", err)
	}

	return nil
}
