package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.AdvertisementRepository
// ─────────────────────────────────────────────

type mockAdvertisementRepository struct {
	createFn  func(ctx context.Context, ad models.Advertisement) (models.Advertisement, error)
	getByIDFn func(ctx context.Context, adID int64) (models.Advertisement, error)
	getAllFn  func(ctx context.Context) ([]models.Advertisement, error)
	deleteFn  func(ctx context.Context, adID int64) error
}

func (m *mockAdvertisementRepository) Create(ctx context.Context, ad models.Advertisement) (models.Advertisement, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ad)
	}
	return ad, nil
}

func (m *mockAdvertisementRepository) GetByID(ctx context.Context, adID int64) (models.Advertisement, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, adID)
	}
	return models.Advertisement{}, nil
}

func (m *mockAdvertisementRepository) GetAll(ctx context.Context) ([]models.Advertisement, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockAdvertisementRepository) Delete(ctx context.Context, adID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, adID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAdvertisementService(repo *mockAdvertisementRepository) AdvertisementService {
	return NewAdvertisementService(repo, logger.Nop())
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestAdvertisementService_Create_Success(t *testing.T) {
	repo := &mockAdvertisementRepository{
		createFn: func(_ context.Context, ad models.Advertisement) (models.Advertisement, error) {
			assert.Equal(t, "Bike for sale", ad.Title)
			assert.Equal(t, "Barely used", ad.Description)
			assert.Equal(t, int64(7), ad.OwnerID)
			assert.False(t, ad.CreationDate.IsZero(), "creation date must be assigned server-side")
			ad.AdID = 1
			return ad, nil
		},
	}
	svc := newTestAdvertisementService(repo)

	ad, err := svc.Create(context.Background(), "Bike for sale", "Barely used", 7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), ad.AdID)
}

func TestAdvertisementService_Create_InvalidData(t *testing.T) {
	svc := newTestAdvertisementService(&mockAdvertisementRepository{})

	tests := []struct {
		name        string
		title       string
		description string
	}{
		{name: "empty title", title: "", description: "Barely used"},
		{name: "empty description", title: "Bike for sale", description: ""},
		{name: "too long title", title: strings.Repeat("x", models.TitleMaxLen+1), description: "d"},
		{name: "too long description", title: "t", description: strings.Repeat("x", models.DescriptionMaxLen+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.title, tt.description, 7)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAdvertisementService_Create_StorageError(t *testing.T) {
	repo := &mockAdvertisementRepository{
		createFn: func(_ context.Context, _ models.Advertisement) (models.Advertisement, error) {
			return models.Advertisement{}, errStorage
		},
	}
	svc := newTestAdvertisementService(repo)

	_, err := svc.Create(context.Background(), "Bike for sale", "Barely used", 7)

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// GetByID / GetAll
// ─────────────────────────────────────────────

func TestAdvertisementService_GetByID_Success(t *testing.T) {
	expected := models.Advertisement{AdID: 3, Title: "Bike for sale", OwnerID: 7}
	repo := &mockAdvertisementRepository{
		getByIDFn: func(_ context.Context, adID int64) (models.Advertisement, error) {
			assert.Equal(t, int64(3), adID)
			return expected, nil
		},
	}
	svc := newTestAdvertisementService(repo)

	ad, err := svc.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, expected, ad)
}

func TestAdvertisementService_GetByID_NotFound(t *testing.T) {
	repo := &mockAdvertisementRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Advertisement, error) {
			return models.Advertisement{}, store.ErrAdvertisementNotFound
		},
	}
	svc := newTestAdvertisementService(repo)

	_, err := svc.GetByID(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrAdvertisementNotFound)
}

func TestAdvertisementService_GetAll_Success(t *testing.T) {
	expected := []models.Advertisement{{AdID: 1}, {AdID: 2}}
	repo := &mockAdvertisementRepository{
		getAllFn: func(_ context.Context) ([]models.Advertisement, error) {
			return expected, nil
		},
	}
	svc := newTestAdvertisementService(repo)

	ads, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, ads)
}

func TestAdvertisementService_GetAll_StorageError(t *testing.T) {
	repo := &mockAdvertisementRepository{
		getAllFn: func(_ context.Context) ([]models.Advertisement, error) {
			return nil, errStorage
		},
	}
	svc := newTestAdvertisementService(repo)

	ads, err := svc.GetAll(context.Background())

	assert.Nil(t, ads)
	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestAdvertisementService_Delete_Success(t *testing.T) {
	deleted := int64(0)
	repo := &mockAdvertisementRepository{
		getByIDFn: func(_ context.Context, adID int64) (models.Advertisement, error) {
			return models.Advertisement{AdID: adID, OwnerID: 7}, nil
		},
		deleteFn: func(_ context.Context, adID int64) error {
			deleted = adID
			return nil
		},
	}
	svc := newTestAdvertisementService(repo)

	err := svc.Delete(context.Background(), 3, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestAdvertisementService_Delete_NotFound(t *testing.T) {
	repo := &mockAdvertisementRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Advertisement, error) {
			return models.Advertisement{}, store.ErrAdvertisementNotFound
		},
	}
	svc := newTestAdvertisementService(repo)

	err := svc.Delete(context.Background(), 404, 7)

	require.ErrorIs(t, err, store.ErrAdvertisementNotFound)
}

func TestAdvertisementService_Delete_NotOwner(t *testing.T) {
	deleteCalled := false
	repo := &mockAdvertisementRepository{
		getByIDFn: func(_ context.Context, adID int64) (models.Advertisement, error) {
			return models.Advertisement{AdID: adID, OwnerID: 7}, nil
		},
		deleteFn: func(_ context.Context, _ int64) error {
			deleteCalled = true
			return nil
		},
	}
	svc := newTestAdvertisementService(repo)

	err := svc.Delete(context.Background(), 3, 8)

	require.ErrorIs(t, err, ErrNotAdvertisementOwner)
	assert.False(t, deleteCalled, "non-owner delete must leave the record untouched")
}

func TestAdvertisementService_Delete_StorageError(t *testing.T) {
	repo := &mockAdvertisementRepository{
		getByIDFn: func(_ context.Context, adID int64) (models.Advertisement, error) {
			return models.Advertisement{AdID: adID, OwnerID: 7}, nil
		},
		deleteFn: func(_ context.Context, _ int64) error {
			return errStorage
		},
	}
	svc := newTestAdvertisementService(repo)

	err := svc.Delete(context.Background(), 3, 7)

	require.ErrorIs(t, err, errStorage)
}
