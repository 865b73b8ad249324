package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultProductTypes seeds an empty product_types table.
var DefaultProductTypes = []string{
	"BESS Foundation",
	"Solar Equipment",
	"Utility Vault",
	"Manhole",
	"Box Culvert",
	"Bridge Product",
	"Storm Sewer",
	"Sanitary Sewer",
}

type ProductType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id" swaggertype:"string"`
	Name string    `gorm:"type:text;not null;uniqueIndex:u_product_type_name" json:"name"`

	CreatedAt time.Time `json:"createdAt"`
}

func (ProductType) TableName() string { return "product_types" }

func (pt *ProductType) BeforeCreate(tx *gorm.DB) error {
	if pt.ID == uuid.Nil {
		pt.ID = uuid.New()
	}
	return nil
}
