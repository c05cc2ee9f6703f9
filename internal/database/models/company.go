package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is an organization under evaluation. Name is the dedup key:
// at most one company per distinct trimmed name.
type Company struct {
	BaseModel
	Name string `json:"name" gorm:"size:200;not null;uniqueIndex" validate:"required,min=1,max=200"`

	LocationID     *uuid.UUID `json:"location_id" gorm:"type:uuid;index"`
	SizeID         *uuid.UUID `json:"size_id" gorm:"type:uuid"`
	FundingStageID *uuid.UUID `json:"funding_stage_id" gorm:"type:uuid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Location   *Location         `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Leads      []Lead            `json:"leads,omitempty" gorm:"foreignKey:CompanyID"`
	Modalities []CompanyModality `json:"modalities,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}

// CompanyModality maps a company to a modality it works on, with its maturity stage
type CompanyModality struct {
	BaseModel
	CompanyID  uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	ModalityID uuid.UUID  `json:"modality_id" gorm:"type:uuid;not null"`
	MaturityID *uuid.UUID `json:"maturity_id" gorm:"type:uuid"`

	Company  *Company             `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Modality *TherapeuticModality `json:"modality,omitempty" gorm:"foreignKey:ModalityID"`
	Maturity *ModalityMaturity    `json:"maturity,omitempty" gorm:"foreignKey:MaturityID"`
}

// TableName returns the table name for CompanyModality
func (CompanyModality) TableName() string {
	return "company_modalities"
}
