package service

import (
	"context"
	"log"
	"strings"
	"time"

	"storeapi.app/errors"
	"storeapi.app/models"
	"storeapi.app/providers/cache"
)

const (
	statesCacheKey = "catalog:states"
	storesCacheKey = "catalog:stores"
)

// CatalogService handles state/city/store lookups and store schedules
type CatalogService struct {
	geoRepo    GeoRepositoryInterface
	timingRepo StoreTimingRepositoryInterface
	cache      *cache.CatalogCache
	cacheTTL   time.Duration
}

// NewCatalogService creates a new catalog service. The cache may be nil when
// caching is disabled.
func NewCatalogService(
	geoRepo GeoRepositoryInterface,
	timingRepo StoreTimingRepositoryInterface,
	catalogCache *cache.CatalogCache,
	cacheTTL time.Duration,
) *CatalogService {
	return &CatalogService{
		geoRepo:    geoRepo,
		timingRepo: timingRepo,
		cache:      catalogCache,
		cacheTTL:   cacheTTL,
	}
}

// ListStates returns all states. An empty catalog is a valid, non-error result.
func (s *CatalogService) ListStates(ctx context.Context) ([]models.State, error) {
	if s.cache != nil {
		if states, found := s.cache.GetStates(ctx, statesCacheKey); found {
			log.Println("[DEBUG] States served from cache")
			return states, nil
		}
	}

	states, err := s.geoRepo.ListStates(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list states", err)
	}

	if s.cache != nil {
		s.cache.SetStates(ctx, statesCacheKey, states, s.cacheTTL)
	}
	return states, nil
}

// ListStores returns the full store catalog ordered by name
func (s *CatalogService) ListStores(ctx context.Context) ([]models.Store, error) {
	if s.cache != nil {
		if stores, found := s.cache.GetStores(ctx, storesCacheKey); found {
			log.Println("[DEBUG] Stores served from cache")
			return stores, nil
		}
	}

	stores, err := s.geoRepo.ListStores(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list stores", err)
	}

	if s.cache != nil {
		s.cache.SetStores(ctx, storesCacheKey, stores, s.cacheTTL)
	}
	return stores, nil
}

// GetCitiesByState returns the cities of a state, ordered by name
func (s *CatalogService) GetCitiesByState(ctx context.Context, stateID uint) ([]models.City, error) {
	if stateID == 0 {
		return nil, errors.NewValidationError("State ID is required")
	}

	cities, err := s.geoRepo.FindCitiesByState(ctx, stateID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find cities", err)
	}
	if len(cities) == 0 {
		return nil, errors.NewNotFoundError("No cities found for the given state ID")
	}

	return cities, nil
}

// GetStoresByCity returns the stores of a city, ordered by name
func (s *CatalogService) GetStoresByCity(ctx context.Context, cityID uint) ([]models.Store, error) {
	if cityID == 0 {
		return nil, errors.NewValidationError("City ID is required")
	}

	stores, err := s.geoRepo.FindStoresByCity(ctx, cityID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find stores", err)
	}
	if len(stores) == 0 {
		return nil, errors.NewNotFoundError("No stores found for the given city ID")
	}

	return stores, nil
}

// GetStoresByCityName returns the stores of the city with the given name
func (s *CatalogService) GetStoresByCityName(ctx context.Context, cityName string) ([]models.Store, error) {
	if cityName == "" {
		return nil, errors.NewValidationError("City name is required")
	}

	stores, err := s.geoRepo.FindStoresByCityName(ctx, cityName)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find stores", err)
	}
	if len(stores) == 0 {
		return nil, errors.NewNotFoundError("No stores found for the given city name")
	}

	return stores, nil
}

// GetStoresByState returns the stores of a state selected by id or by name
func (s *CatalogService) GetStoresByState(ctx context.Context, stateID uint, stateName string) ([]models.Store, error) {
	if stateID == 0 && stateName == "" {
		return nil, errors.NewValidationError("State ID or state name is required")
	}

	var stores []models.Store
	var err error
	if stateID != 0 {
		stores, err = s.geoRepo.FindStoresByStateID(ctx, stateID)
	} else {
		stores, err = s.geoRepo.FindStoresByStateName(ctx, stateName)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find stores", err)
	}
	if len(stores) == 0 {
		return nil, errors.NewNotFoundError("No stores found for the given state")
	}

	return stores, nil
}

// GetStateDescription resolves a state description by state id, state name,
// or the name of a city in the state
func (s *CatalogService) GetStateDescription(ctx context.Context, req *models.StateDescriptionRequest) (*models.StateDescriptionResponse, error) {
	if req.StateID == 0 && req.StateName == "" && req.CityName == "" {
		return nil, errors.NewValidationError("State ID, state name or city name is required")
	}

	var state *models.State
	var err error
	switch {
	case req.StateID != 0:
		state, err = s.geoRepo.FindStateByID(ctx, req.StateID)
	case req.StateName != "":
		state, err = s.geoRepo.FindStateByName(ctx, req.StateName)
	default:
		state, err = s.geoRepo.FindStateByCityName(ctx, req.CityName)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find state", err)
	}
	if state == nil {
		return nil, errors.NewNotFoundError("State not found")
	}

	return &models.StateDescriptionResponse{Description: state.Description}, nil
}

// weekdayColumn maps a weekday to the schedule field of the pivoted timings
// row. The schema stores one column per day, so the column is picked at
// request time from the current weekday.
func weekdayColumn(timing *models.StoreTiming, day time.Weekday) string {
	switch day {
	case time.Monday:
		return timing.Monday
	case time.Tuesday:
		return timing.Tuesday
	case time.Wednesday:
		return timing.Wednesday
	case time.Thursday:
		return timing.Thursday
	case time.Friday:
		return timing.Friday
	case time.Saturday:
		return timing.Saturday
	default:
		return timing.Sunday
	}
}

// GetStoreTimings returns today's opening schedule for a store
func (s *CatalogService) GetStoreTimings(ctx context.Context, storeID uint) (*models.StoreTimingsResponse, error) {
	if storeID == 0 {
		return nil, errors.NewValidationError("Store ID is required")
	}

	timing, err := s.timingRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find store timings", err)
	}
	if timing == nil {
		return nil, errors.NewNotFoundError("No timings found for the given store ID")
	}

	day := time.Now().Weekday()
	timings := weekdayColumn(timing, day)
	if timings == "" {
		return nil, errors.NewNotFoundError("No timings found for the given store ID")
	}

	return &models.StoreTimingsResponse{
		StoreID: storeID,
		Day:     strings.ToLower(day.String()),
		Timings: timings,
		Closed:  timing.Closed,
	}, nil
}
