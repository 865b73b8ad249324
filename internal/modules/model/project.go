package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft          Status = "Draft"
	StatusInReview       Status = "In Review"
	StatusRevisionNeeded Status = "Revision Needed"
	StatusApproved       Status = "Approved"
	StatusComplete       Status = "Complete"
)

// Statuses lists every project status in workflow order.
var Statuses = []Status{
	StatusDraft,
	StatusInReview,
	StatusRevisionNeeded,
	StatusApproved,
	StatusComplete,
}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Project struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"_id" swaggertype:"string"`
	Name         string                      `gorm:"type:text;not null" json:"name"`
	Client       string                      `gorm:"type:text;not null" json:"client"`
	ProductTypes datatypes.JSONSlice[string] `gorm:"not null" swaggertype:"array,string" json:"productTypes"`
	Deadline     string                      `gorm:"type:varchar(32);not null;default:'';index" json:"deadline"`
	Status       Status                      `gorm:"type:varchar(32);not null;default:'Draft';index" json:"status"`
	Notes        string                      `gorm:"type:text;not null;default:''" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ProductTypes == nil {
		p.ProductTypes = datatypes.JSONSlice[string]{}
	}
	return nil
}

// AfterFind keeps productTypes serialized as [] rather than null.
func (p *Project) AfterFind(tx *gorm.DB) error {
	if p.ProductTypes == nil {
		p.ProductTypes = datatypes.JSONSlice[string]{}
	}
	return nil
}

// HasProductType reports whether name appears in the project's tags.
func (p *Project) HasProductType(name string) bool {
	for _, pt := range p.ProductTypes {
		if pt == name {
			return true
		}
	}
	return false
}

// WithoutProductType returns the tags with every occurrence of name removed.
func (p *Project) WithoutProductType(name string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(p.ProductTypes))
	for _, pt := range p.ProductTypes {
		if pt != name {
			out = append(out, pt)
		}
	}
	return out
}
