package models

import (
	"github.com/google/uuid"
)

// Lead is a single outreach attempt linked to a company, keyed externally
// by the CRM-issued record id. Import skips rows whose ZohoID already exists.
type Lead struct {
	BaseModel
	ZohoID string `json:"zoho_id" gorm:"size:50;not null;uniqueIndex" validate:"required"`

	CompanyID  *uuid.UUID `json:"company_id" gorm:"type:uuid;index"`
	LeadStatus *string    `json:"lead_status" gorm:"size:100"` // e.g. Attempting, In Discussion
	LeadType   *string    `json:"lead_type" gorm:"size:100"`   // e.g. CDMO, Biotherapeutics
	Score      *int       `json:"score"`

	// Relationships
	Company    *Company       `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Contacts   []Contact      `json:"contacts,omitempty" gorm:"foreignKey:LeadID"`
	Modalities []LeadModality `json:"modalities,omitempty" gorm:"foreignKey:LeadID"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// LeadModality maps a lead to a modality targeted in outreach, with the
// expected maturity. Composite primary key over (lead_id, modality_id).
type LeadModality struct {
	LeadID     uuid.UUID  `json:"lead_id" gorm:"type:uuid;primaryKey"`
	ModalityID uuid.UUID  `json:"modality_id" gorm:"type:uuid;primaryKey"`
	MaturityID *uuid.UUID `json:"maturity_id" gorm:"type:uuid"`

	Lead     *Lead                `json:"lead,omitempty" gorm:"foreignKey:LeadID"`
	Modality *TherapeuticModality `json:"modality,omitempty" gorm:"foreignKey:ModalityID"`
	Maturity *ModalityMaturity    `json:"maturity,omitempty" gorm:"foreignKey:MaturityID"`
}

// TableName returns the table name for LeadModality
func (LeadModality) TableName() string {
	return "lead_modalities"
}
