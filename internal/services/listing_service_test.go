package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/rentals/internal/entities"
	"github.com/avolkov/rentals/internal/validation"
)

type mockListingStore struct {
	created []entities.Listing
	saved   []entities.Listing
	deleted []uint
	failure error
}

func (m *mockListingStore) Create(listing *entities.Listing) error {
	if m.failure != nil {
		return m.failure
	}
	listing.ID = uint(len(m.created) + 1)
	m.created = append(m.created, *listing)
	return nil
}

func (m *mockListingStore) GetByID(id uint) (*entities.Listing, error) {
	return nil, errors.New("not implemented")
}

func (m *mockListingStore) GetAll() ([]entities.Listing, error) {
	return nil, errors.New("not implemented")
}

func (m *mockListingStore) Save(listing *entities.Listing) error {
	if m.failure != nil {
		return m.failure
	}
	m.saved = append(m.saved, *listing)
	return nil
}

func (m *mockListingStore) Delete(id uint) error {
	if m.failure != nil {
		return m.failure
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func newTestService(store *mockListingStore) *ListingService {
	return NewListingService(store, validation.New())
}

func TestListingService_Create_PersistsValidCandidate(t *testing.T) {
	store := &mockListingStore{}
	service := newTestService(store)

	listing, violations, err := service.Create(map[string]any{
		"name":     "Loft",
		"location": "City",
	})

	require.NoError(t, err)
	assert.Empty(t, violations)
	require.NotNil(t, listing)
	assert.Greater(t, listing.ID, uint(0))
	assert.Equal(t, 0.0, listing.Price, "missing price defaults to 0")
	require.Len(t, store.created, 1)
}

func TestListingService_Create_RejectsInvalidCandidate(t *testing.T) {
	store := &mockListingStore{}
	service := newTestService(store)

	listing, violations, err := service.Create(map[string]any{"price": 50.0})

	require.NoError(t, err)
	assert.Nil(t, listing)
	assert.NotEmpty(t, violations)
	assert.Empty(t, store.created, "rejected candidates must not reach the store")
}

func TestListingService_Create_StorageFailure(t *testing.T) {
	store := &mockListingStore{failure: errors.New("disk full")}
	service := newTestService(store)

	listing, violations, err := service.Create(map[string]any{
		"name":     "Loft",
		"location": "City",
	})

	require.Error(t, err)
	assert.Nil(t, listing)
	assert.Empty(t, violations)
}

func TestListingService_Update_OverlaysAndSaves(t *testing.T) {
	store := &mockListingStore{}
	service := newTestService(store)

	existing := &entities.Listing{ID: 4, Name: "Cabin", Price: 100, Location: "Hills"}

	updated, err := service.Update(existing, map[string]any{"name": "Chalet"})

	require.NoError(t, err)
	assert.Equal(t, "Chalet", updated.Name)
	assert.Equal(t, 100.0, updated.Price)
	assert.Equal(t, "Cabin", existing.Name, "update produces a new state, it does not mutate the input")
	require.Len(t, store.saved, 1)
	assert.Equal(t, "Chalet", store.saved[0].Name)
}

func TestListingService_Update_EmptyOverlayIsIdempotent(t *testing.T) {
	store := &mockListingStore{}
	service := newTestService(store)

	existing := &entities.Listing{ID: 4, Name: "Cabin", Price: 100, Location: "Hills"}

	updated, err := service.Update(existing, map[string]any{})

	require.NoError(t, err)
	assert.Equal(t, *existing, *updated)
}

func TestListingService_Update_StorageFailure(t *testing.T) {
	store := &mockListingStore{failure: errors.New("disk full")}
	service := newTestService(store)

	existing := &entities.Listing{ID: 4, Name: "Cabin", Price: 100, Location: "Hills"}

	updated, err := service.Update(existing, map[string]any{"price": 1.0})

	require.Error(t, err)
	assert.Nil(t, updated)
}

func TestListingService_Delete(t *testing.T) {
	store := &mockListingStore{}
	service := newTestService(store)

	require.NoError(t, service.Delete(9))
	assert.Equal(t, []uint{9}, store.deleted)
}

func TestListingService_Delete_StorageFailure(t *testing.T) {
	store := &mockListingStore{failure: errors.New("locked")}
	service := newTestService(store)

	assert.Error(t, service.Delete(9))
}
