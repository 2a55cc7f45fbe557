package dto

import (
	"monprof_backend/internal/models"
)

type CityDTO struct {
	ID        string `json:"id"`
	CountryID string `json:"country_id"`
	Name      string `json:"name"`
}

func NewCityDTO(city *models.City) CityDTO {
	return CityDTO{ID: city.ID, CountryID: city.CountryID, Name: city.Name}
}

type QuartierDTO struct {
	ID     string `json:"id"`
	CityID string `json:"city_id"`
	Name   string `json:"name"`
}

func NewQuartierDTO(quartier *models.Quartier) QuartierDTO {
	return QuartierDTO{ID: quartier.ID, CityID: quartier.CityID, Name: quartier.Name}
}

type SubjectDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsAcademic bool   `json:"is_academic"`
}

func NewSubjectDTO(subject *models.Subject) SubjectDTO {
	return SubjectDTO{ID: subject.ID, Name: subject.Name, IsAcademic: subject.IsAcademic}
}

type LevelDTO struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Category models.LevelCategory `json:"category"`
	Order    int                  `json:"order"`
}

func NewLevelDTO(level *models.Level) LevelDTO {
	return LevelDTO{ID: level.ID, Name: level.Name, Category: level.Category, Order: level.Order}
}

type CreateCityRequest struct {
	CountryID string `json:"country_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required"`
}

type CreateQuartierRequest struct {
	CityID string `json:"city_id" binding:"required,uuid"`
	Name   string `json:"name" binding:"required"`
}

type CreateSubjectRequest struct {
	Name       string `json:"name" binding:"required"`
	IsAcademic *bool  `json:"is_academic"`
}

type CreateLevelRequest struct {
	Name     string               `json:"name" binding:"required"`
	Category models.LevelCategory `json:"category" binding:"required,oneof=primaire college lycee superieur"`
	Order    int                  `json:"order"`
}
