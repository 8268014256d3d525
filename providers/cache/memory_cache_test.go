package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"storeapi.app/models"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)

	data, found := cache.Get(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), data)
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache()

	data, found := cache.Get(context.Background(), "missing")
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestMemoryCache_ExpiredEntryNotReturned(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, found := cache.Get(ctx, "key")
	assert.False(t, found)
}

func TestMemoryCache_NilValueIgnored(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", nil, time.Minute)

	_, found := cache.Get(ctx, "key")
	assert.False(t, found)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	cache.Delete(ctx, "key")

	_, found := cache.Get(ctx, "key")
	assert.False(t, found)
}

func TestMemoryCache_Clear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), time.Minute)
	cache.Set(ctx, "b", []byte("2"), time.Minute)
	cache.Clear(ctx)

	_, foundA := cache.Get(ctx, "a")
	_, foundB := cache.Get(ctx, "b")
	assert.False(t, foundA)
	assert.False(t, foundB)
}

func TestCatalogCache_States(t *testing.T) {
	catalog := NewCatalogCache(NewMemoryCache())

	states := []models.State{{ID: 1, Name: "Goa", Description: "Coastal state"}}
	catalog.SetStates(context.Background(), "catalog:states", states, time.Minute)

	cached, found := catalog.GetStates(context.Background(), "catalog:states")
	assert.True(t, found)
	assert.Equal(t, states, cached)
}

func TestCatalogCache_Stores(t *testing.T) {
	catalog := NewCatalogCache(NewMemoryCache())

	stores := []models.Store{{ID: 1, Name: "Apex Auto", CityID: 2}}
	catalog.SetStores(context.Background(), "catalog:stores", stores, time.Minute)

	cached, found := catalog.GetStores(context.Background(), "catalog:stores")
	assert.True(t, found)
	assert.Equal(t, stores, cached)
}

func TestCatalogCache_Miss(t *testing.T) {
	catalog := NewCatalogCache(NewMemoryCache())

	_, found := catalog.GetStates(context.Background(), "catalog:states")
	assert.False(t, found)
}

func TestCatalogCache_Clear(t *testing.T) {
	catalog := NewCatalogCache(NewMemoryCache())

	catalog.SetStates(context.Background(), "catalog:states", []models.State{{ID: 1, Name: "Goa"}}, time.Minute)
	catalog.Clear()

	_, found := catalog.GetStates(context.Background(), "catalog:states")
	assert.False(t, found)
}
