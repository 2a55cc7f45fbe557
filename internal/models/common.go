package models

import (
	"time"
)

// BaseModel is embedded by every aggregate. IDs are generated in
// Postgres, so the uuid-ossp extension must be installed.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatedAt time.Time `gorm:"default:now()"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
