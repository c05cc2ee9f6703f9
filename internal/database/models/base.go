package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides a UUID surrogate primary key for all models
type BaseModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}
