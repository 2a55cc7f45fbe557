package handlers

import (
	"net/http"

	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the reference data behind the public forms:
// countries, cities, quartiers, subjects and levels.
type CatalogHandler struct {
	*BaseHandler
	geoRepo       repositories.GeoRepository
	educationRepo repositories.EducationRepository
}

func NewCatalogHandler(base *BaseHandler, geoRepo repositories.GeoRepository, educationRepo repositories.EducationRepository) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:   base,
		geoRepo:       geoRepo,
		educationRepo: educationRepo,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/countries", h.ListCountries)
	rg.GET("/countries/:id/cities", h.ListCities)
	rg.GET("/cities/:id/quartiers", h.ListQuartiers)
	rg.GET("/subjects", h.ListSubjects)
	rg.GET("/levels", h.ListLevels)
}

func (h *CatalogHandler) ListCountries(c *gin.Context) {
	countries, err := h.geoRepo.FindAllCountries(true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	type countryItem struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Code           string `json:"code"`
		CurrencySymbol string `json:"currency_symbol,omitempty"`
	}
	items := make([]countryItem, 0, len(countries))
	for _, country := range countries {
		items = append(items, countryItem{
			ID:             country.ID,
			Name:           country.Name,
			Code:           country.Code,
			CurrencySymbol: country.CurrencySymbol,
		})
	}

	c.JSON(http.StatusOK, gin.H{"countries": items})
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.geoRepo.FindCitiesByCountry(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]dto.CityDTO, 0, len(cities))
	for i := range cities {
		items = append(items, dto.NewCityDTO(&cities[i]))
	}
	c.JSON(http.StatusOK, gin.H{"cities": items})
}

func (h *CatalogHandler) ListQuartiers(c *gin.Context) {
	quartiers, err := h.geoRepo.FindQuartiersByCity(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]dto.QuartierDTO, 0, len(quartiers))
	for i := range quartiers {
		items = append(items, dto.NewQuartierDTO(&quartiers[i]))
	}
	c.JSON(http.StatusOK, gin.H{"quartiers": items})
}

func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.educationRepo.FindAllSubjects()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]dto.SubjectDTO, 0, len(subjects))
	for i := range subjects {
		items = append(items, dto.NewSubjectDTO(&subjects[i]))
	}
	c.JSON(http.StatusOK, gin.H{"subjects": items})
}

func (h *CatalogHandler) ListLevels(c *gin.Context) {
	levels, err := h.educationRepo.FindAllLevels()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]dto.LevelDTO, 0, len(levels))
	for i := range levels {
		items = append(items, dto.NewLevelDTO(&levels[i]))
	}
	c.JSON(http.StatusOK, gin.H{"levels": items})
}
