package models

import (
	"github.com/google/uuid"
)

// Contact is a person associated with a lead
type Contact struct {
	BaseModel
	LeadID uuid.UUID `json:"lead_id" gorm:"type:uuid;not null;index" validate:"required"`

	FullName    *string `json:"full_name" gorm:"size:200"`
	Title       *string `json:"title" gorm:"size:200"`
	Email       *string `json:"email" gorm:"size:200"`
	Phone       *string `json:"phone" gorm:"size:50"`
	LinkedIn    *string `json:"linkedin" gorm:"size:300"`
	BuyingPower *string `json:"buying_power" gorm:"size:20"` // e.g. Low, Medium, High

	Lead *Lead `json:"lead,omitempty" gorm:"foreignKey:LeadID"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
