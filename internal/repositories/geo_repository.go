package repositories

import (
	"errors"

	"monprof_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrCityNotFound    = errors.New("city not found")
)

type GeoRepository interface {
	// Country operations
	CreateCountry(country *models.Country) error
	FindCountryByID(id string) (*models.Country, error)
	FindCountryByCode(code string) (*models.Country, error)
	FindAllCountries(activeOnly bool) ([]models.Country, error)
	UpdateCountry(country *models.Country) error
	DeleteCountry(id string) error

	// City and quartier operations
	CreateCity(city *models.City) error
	FindCityByID(id string) (*models.City, error)
	FindCitiesByCountry(countryID string) ([]models.City, error)
	CreateQuartier(quartier *models.Quartier) error
	FindQuartiersByCity(cityID string) ([]models.Quartier, error)
}

type GeoRepositoryImpl struct {
	db *gorm.DB
}

func NewGeoRepository(db *gorm.DB) GeoRepository {
	return &GeoRepositoryImpl{db: db}
}

// Country operations

func (r *GeoRepositoryImpl) CreateCountry(country *models.Country) error {
	return r.db.Create(country).Error
}

func (r *GeoRepositoryImpl) FindCountryByID(id string) (*models.Country, error) {
	var country models.Country
	err := r.db.First(&country, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return &country, nil
}

func (r *GeoRepositoryImpl) FindCountryByCode(code string) (*models.Country, error) {
	var country models.Country
	err := r.db.First(&country, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return &country, nil
}

func (r *GeoRepositoryImpl) FindAllCountries(activeOnly bool) ([]models.Country, error) {
	var countries []models.Country
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&countries).Error
	return countries, err
}

func (r *GeoRepositoryImpl) UpdateCountry(country *models.Country) error {
	result := r.db.Model(country).Updates(map[string]interface{}{
		"name":                 country.Name,
		"currency_symbol":      country.CurrencySymbol,
		"is_active":            country.IsActive,
		"subscription_price":   country.SubscriptionPrice,
		"contact_prices":       country.ContactPrices,
		"min_budget_threshold": country.MinBudgetThreshold,
		"casier_delay_weeks":   country.CasierDelayWeeks,
		"reminder_day_offsets": country.ReminderDayOffsets,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCountryNotFound
	}
	return nil
}

func (r *GeoRepositoryImpl) DeleteCountry(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Country{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCountryNotFound
	}
	return nil
}

// City and quartier operations

func (r *GeoRepositoryImpl) CreateCity(city *models.City) error {
	return r.db.Create(city).Error
}

func (r *GeoRepositoryImpl) FindCityByID(id string) (*models.City, error) {
	var city models.City
	err := r.db.Preload("Quartiers").First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *GeoRepositoryImpl) FindCitiesByCountry(countryID string) ([]models.City, error) {
	var cities []models.City
	err := r.db.Where("country_id = ?", countryID).Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *GeoRepositoryImpl) CreateQuartier(quartier *models.Quartier) error {
	return r.db.Create(quartier).Error
}

func (r *GeoRepositoryImpl) FindQuartiersByCity(cityID string) ([]models.Quartier, error) {
	var quartiers []models.Quartier
	err := r.db.Where("city_id = ?", cityID).Order("name ASC").Find(&quartiers).Error
	return quartiers, err
}
