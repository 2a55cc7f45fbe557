package models

// Subject is a teachable discipline, referenced by name from tutor
// profiles and course requests.
type Subject struct {
	BaseModel
	Name       string `gorm:"uniqueIndex;not null"`
	IsAcademic bool   `gorm:"default:true"`
}

type LevelCategory string

const (
	LevelCategoryPrimaire  LevelCategory = "primaire"
	LevelCategoryCollege   LevelCategory = "college"
	LevelCategoryLycee     LevelCategory = "lycee"
	LevelCategorySuperieur LevelCategory = "superieur"
)

// Level is a school grade, ordered for display inside its category.
type Level struct {
	BaseModel
	Name     string        `gorm:"not null"`
	Category LevelCategory `gorm:"type:varchar(20);not null;index"`
	Order    int           `gorm:"column:display_order;default:0"`
}
