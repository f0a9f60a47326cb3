package db_models

import "github.com/lib/pq"

// CatalogPOI is one row of the catalog_pois table. City holds the title
// cased city key; Position keeps the curated catalog order.
type CatalogPOI struct {
	BaseModel
	City       string         `gorm:"index;not null"`
	Position   int            `gorm:"not null;default:0"`
	Name       string         `gorm:"not null"`
	Tags       pq.StringArray `gorm:"type:text[]"`
	Popularity int
	Notes      string
}

func (CatalogPOI) TableName() string {
	return "catalog_pois"
}
