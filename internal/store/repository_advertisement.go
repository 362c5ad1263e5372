package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/models"
)

// advertisementRepository implements [AdvertisementRepository] against the
// "advertisements" table. Listings are write-once: the repository exposes
// creation, lookup, and hard deletion, never update.
type advertisementRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAdvertisementRepository constructs an [AdvertisementRepository] backed
// by the provided database connection and logger.
func NewAdvertisementRepository(db *DB, logger *logger.Logger) AdvertisementRepository {
	logger.Debug().Msg("creating advertisement repository")
	return &advertisementRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new advertisement and returns it with the
// server-assigned AdID filled in. Title, description, creation date and
// owner are taken as given; validation happens in the service layer.
func (r *advertisementRepository) Create(ctx context.Context, ad models.Advertisement) (models.Advertisement, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertAdvertisementQuery(ad)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.Create").Msg("error: building insert query")
		return models.Advertisement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&ad.AdID); err != nil {
		log.Err(err).Str("func", "*advertisementRepository.Create").Int64("owner_id", ad.OwnerID).Msg("error: executing insert")
		return models.Advertisement{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return ad, nil
}

// GetByID retrieves a single advertisement or [ErrAdvertisementNotFound]
// when no row matches.
func (r *advertisementRepository) GetByID(ctx context.Context, adID int64) (models.Advertisement, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectAdvertisementByIDQuery(adID)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.GetByID").Msg("error: building select query")
		return models.Advertisement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ad models.Advertisement
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&ad.AdID, &ad.Title, &ad.Description, &ad.CreationDate, &ad.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advertisement{}, ErrAdvertisementNotFound
		}

		log.Err(err).Str("func", "*advertisementRepository.GetByID").Int64("ad_id", adID).Msg("error: scanning error")
		return models.Advertisement{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ad, nil
}

// GetAll returns every advertisement in insertion order as persisted.
// The result is a point-in-time snapshot; an empty table yields an empty,
// non-nil slice.
func (r *advertisementRepository) GetAll(ctx context.Context) ([]models.Advertisement, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectAllAdvertisementsQuery()
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.GetAll").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.GetAll").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ads := make([]models.Advertisement, 0)

	for rows.Next() {
		var ad models.Advertisement
		if err := rows.Scan(&ad.AdID, &ad.Title, &ad.Description, &ad.CreationDate, &ad.OwnerID); err != nil {
			log.Err(err).Str("func", "*advertisementRepository.GetAll").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*advertisementRepository.GetAll").Msg("error: iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ads, nil
}

// Delete removes the advertisement permanently. When no row matches —
// including the case where a concurrent delete won the race — it returns
// [ErrAdvertisementNotFound].
func (r *advertisementRepository) Delete(ctx context.Context, adID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteAdvertisementQuery(adID)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.Delete").Msg("error: building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.Delete").Int64("ad_id", adID).Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.Delete").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrAdvertisementNotFound
	}

	return nil
}
