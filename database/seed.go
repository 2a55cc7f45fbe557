package database

import (
	"errors"

	"monprof_backend/internal/logger"
	"monprof_backend/internal/models"

	"gorm.io/gorm"
)

// SeedReferenceData fills the catalog tables on first start: default
// country, subjects and school levels. Existing rows are left alone.
func SeedReferenceData(db *gorm.DB) error {
	if err := seedCountry(db); err != nil {
		return err
	}
	if err := seedSubjects(db); err != nil {
		return err
	}
	return seedLevels(db)
}

func seedCountry(db *gorm.DB) error {
	var existing models.Country
	err := db.Where("code = ?", "FR").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	country := &models.Country{
		Name:               "France",
		Code:               "FR",
		CurrencySymbol:     "€",
		IsActive:           true,
		MinBudgetThreshold: models.BudgetStandard,
		CasierDelayWeeks:   4,
	}
	country.SetContactPrices(map[string]int64{"tutor_contact": 2000})
	country.SetReminderDayOffsets([]int{3, 7, 14})

	if err := db.Create(country).Error; err != nil {
		return err
	}

	cities := []models.City{
		{CountryID: country.ID, Name: "Paris"},
		{CountryID: country.ID, Name: "Lyon"},
		{CountryID: country.ID, Name: "Marseille"},
	}
	if err := db.Create(&cities).Error; err != nil {
		return err
	}

	logger.Info("Seeded default country", "code", country.Code)
	return nil
}

func seedSubjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Subject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	subjects := []models.Subject{
		{Name: "Mathématiques", IsAcademic: true},
		{Name: "Français", IsAcademic: true},
		{Name: "Physique-Chimie", IsAcademic: true},
		{Name: "Anglais", IsAcademic: true},
		{Name: "SVT", IsAcademic: true},
		{Name: "Histoire-Géographie", IsAcademic: true},
		{Name: "Musique", IsAcademic: false},
		{Name: "Informatique", IsAcademic: false},
	}
	return db.Create(&subjects).Error
}

func seedLevels(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Level{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	levels := []models.Level{
		{Name: "CP", Category: models.LevelCategoryPrimaire, Order: 1},
		{Name: "CE1", Category: models.LevelCategoryPrimaire, Order: 2},
		{Name: "CE2", Category: models.LevelCategoryPrimaire, Order: 3},
		{Name: "CM1", Category: models.LevelCategoryPrimaire, Order: 4},
		{Name: "CM2", Category: models.LevelCategoryPrimaire, Order: 5},
		{Name: "6ème", Category: models.LevelCategoryCollege, Order: 6},
		{Name: "5ème", Category: models.LevelCategoryCollege, Order: 7},
		{Name: "4ème", Category: models.LevelCategoryCollege, Order: 8},
		{Name: "3ème", Category: models.LevelCategoryCollege, Order: 9},
		{Name: "Seconde", Category: models.LevelCategoryLycee, Order: 10},
		{Name: "Première", Category: models.LevelCategoryLycee, Order: 11},
		{Name: "Terminale", Category: models.LevelCategoryLycee, Order: 12},
		{Name: "Supérieur", Category: models.LevelCategorySuperieur, Order: 13},
	}
	return db.Create(&levels).Error
}
