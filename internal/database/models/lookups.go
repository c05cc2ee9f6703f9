package models

// Size is a company headcount bracket, e.g. "<100" or "100-500".
type Size struct {
	BaseModel
	FTERange *string `json:"fte_range" gorm:"size:50"`
}

// TableName returns the table name for Size
func (Size) TableName() string {
	return "sizes"
}

// FundingStage is a company funding stage, e.g. Seed or Series A.
// Funders holds a comma-separated list of known investors.
type FundingStage struct {
	BaseModel
	Stage   *string `json:"stage" gorm:"size:50"`
	Funders *string `json:"funders" gorm:"size:500"`
}

// TableName returns the table name for FundingStage
func (FundingStage) TableName() string {
	return "funding_stages"
}

// ModalityMaturity is a standardized maturity stage for a modality,
// e.g. Preclinical, Phase 1, Phase 2.
type ModalityMaturity struct {
	BaseModel
	Stage *string `json:"stage" gorm:"size:50"`
}

// TableName returns the table name for ModalityMaturity
func (ModalityMaturity) TableName() string {
	return "modality_maturities"
}

// TherapeuticModality is a therapeutic modality (e.g. RNA, Cell Therapy)
// with an optional subtype (e.g. mRNA, TIL).
type TherapeuticModality struct {
	BaseModel
	Type    *string `json:"type" gorm:"size:100"`
	Subtype *string `json:"subtype" gorm:"size:100"`
}

// TableName returns the table name for TherapeuticModality
func (TherapeuticModality) TableName() string {
	return "therapeutic_modalities"
}
