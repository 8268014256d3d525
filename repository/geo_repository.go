// Package repository implements data access layer for the application
package repository

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"storeapi.app/models"
)

// GeoRepository handles data access operations for the state/city/store catalog
type GeoRepository struct {
	db *gorm.DB
}

// NewGeoRepository creates a new repository for geo catalog data
func NewGeoRepository(db *gorm.DB) *GeoRepository {
	return &GeoRepository{db: db}
}

// ListStates retrieves all states
func (r *GeoRepository) ListStates(ctx context.Context) ([]models.State, error) {
	var states []models.State
	result := r.db.WithContext(ctx).Find(&states)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing states: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d states\n", len(states))
	return states, nil
}

// ListStores retrieves all stores ordered by name
func (r *GeoRepository) ListStores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	result := r.db.WithContext(ctx).Order("name asc").Find(&stores)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing stores: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d stores\n", len(stores))
	return stores, nil
}

// FindCitiesByState retrieves the cities of a state ordered by name
func (r *GeoRepository) FindCitiesByState(ctx context.Context, stateID uint) ([]models.City, error) {
	log.Printf("[DEBUG] GeoRepository.FindCitiesByState: stateID=%d\n", stateID)

	var cities []models.City
	result := r.db.WithContext(ctx).Where("state_id = ?", stateID).Order("name asc").Find(&cities)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding cities by state: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d cities for state %d\n", len(cities), stateID)
	return cities, nil
}

// FindStoresByCity retrieves the stores of a city ordered by name
func (r *GeoRepository) FindStoresByCity(ctx context.Context, cityID uint) ([]models.Store, error) {
	log.Printf("[DEBUG] GeoRepository.FindStoresByCity: cityID=%d\n", cityID)

	var stores []models.Store
	result := r.db.WithContext(ctx).Where("city_id = ?", cityID).Order("name asc").Find(&stores)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding stores by city: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d stores for city %d\n", len(stores), cityID)
	return stores, nil
}

// FindStoresByCityName retrieves the stores of the city with the given name
func (r *GeoRepository) FindStoresByCityName(ctx context.Context, cityName string) ([]models.Store, error) {
	log.Printf("[DEBUG] GeoRepository.FindStoresByCityName: cityName=%s\n", cityName)

	var stores []models.Store
	result := r.db.WithContext(ctx).
		Where("city_id IN (?)", r.db.Model(&models.City{}).Select("id").Where("name = ?", cityName)).
		Order("name asc").
		Find(&stores)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding stores by city name: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d stores for city name %s\n", len(stores), cityName)
	return stores, nil
}

// FindStoresByStateID retrieves all stores in a state via its cities
func (r *GeoRepository) FindStoresByStateID(ctx context.Context, stateID uint) ([]models.Store, error) {
	log.Printf("[DEBUG] GeoRepository.FindStoresByStateID: stateID=%d\n", stateID)

	var stores []models.Store
	result := r.db.WithContext(ctx).
		Where("city_id IN (?)", r.db.Model(&models.City{}).Select("id").Where("state_id = ?", stateID)).
		Order("name asc").
		Find(&stores)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding stores by state: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d stores for state %d\n", len(stores), stateID)
	return stores, nil
}

// FindStoresByStateName retrieves all stores in the state with the given name
func (r *GeoRepository) FindStoresByStateName(ctx context.Context, stateName string) ([]models.Store, error) {
	log.Printf("[DEBUG] GeoRepository.FindStoresByStateName: stateName=%s\n", stateName)

	var stores []models.Store
	result := r.db.WithContext(ctx).
		Where("city_id IN (?)", r.db.Model(&models.City{}).Select("id").
			Where("state_id IN (?)", r.db.Model(&models.State{}).Select("id").Where("name = ?", stateName))).
		Order("name asc").
		Find(&stores)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding stores by state name: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d stores for state name %s\n", len(stores), stateName)
	return stores, nil
}

// FindStateByID retrieves a state by its identifier
func (r *GeoRepository) FindStateByID(ctx context.Context, stateID uint) (*models.State, error) {
	var state models.State
	result := r.db.WithContext(ctx).First(&state, stateID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding state by ID: %v\n", result.Error)
		return nil, result.Error
	}
	return &state, nil
}

// FindStateByName retrieves a state by its name
func (r *GeoRepository) FindStateByName(ctx context.Context, name string) (*models.State, error) {
	var state models.State
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding state by name: %v\n", result.Error)
		return nil, result.Error
	}
	return &state, nil
}

// FindStateByCityName retrieves the parent state of the city with the given name
func (r *GeoRepository) FindStateByCityName(ctx context.Context, cityName string) (*models.State, error) {
	var state models.State
	result := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.City{}).Select("state_id").Where("name = ?", cityName)).
		First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding state by city name: %v\n", result.Error)
		return nil, result.Error
	}
	return &state, nil
}

// StoreTimingRepository handles data access operations for store schedules
type StoreTimingRepository struct {
	db *gorm.DB
}

// NewStoreTimingRepository creates a new repository for store timing data
func NewStoreTimingRepository(db *gorm.DB) *StoreTimingRepository {
	return &StoreTimingRepository{db: db}
}

// FindByStore retrieves the schedule row of a store, nil when none exists
func (r *StoreTimingRepository) FindByStore(ctx context.Context, storeID uint) (*models.StoreTiming, error) {
	log.Printf("[DEBUG] StoreTimingRepository.FindByStore: storeID=%d\n", storeID)

	var timing models.StoreTiming
	result := r.db.WithContext(ctx).Where("store_id = ?", storeID).First(&timing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Println("[DEBUG] No timings row found")
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding store timings: %v\n", result.Error)
		return nil, result.Error
	}

	return &timing, nil
}
