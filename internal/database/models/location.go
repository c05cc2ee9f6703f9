package models

// Location is a lookup row for where a company is based or operates.
// The full (region, country, state, city) tuple is the natural dedup key;
// the composite unique index backs the find-or-create path.
type Location struct {
	BaseModel
	Region  *string `json:"region" gorm:"size:50;uniqueIndex:idx_locations_tuple"`
	Country *string `json:"country" gorm:"size:100;uniqueIndex:idx_locations_tuple"`
	State   *string `json:"state" gorm:"size:100;uniqueIndex:idx_locations_tuple"`
	City    *string `json:"city" gorm:"size:100;uniqueIndex:idx_locations_tuple"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
