package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id                            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     category_id                   BIGINT NOT NULL,
//     brand                         TEXT,
//     price                         NUMERIC NOT NULL,
//     eco_score                     NUMERIC,
//     sustainability_certifications JSONB,
//     carbon_footprint              NUMERIC,
//     is_organic                    BOOLEAN DEFAULT FALSE,
//     is_vegan                      BOOLEAN DEFAULT FALSE,
//     is_cruelty_free               BOOLEAN DEFAULT FALSE,
//     is_recyclable                 BOOLEAN DEFAULT FALSE,
//     rating                        NUMERIC DEFAULT 0,
//     is_active                     BOOLEAN DEFAULT TRUE,
//     is_approved                   BOOLEAN DEFAULT FALSE,
//     created_at                    TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                           uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID                   uint64                      `gorm:"column:category_id;index" json:"category_id"`
	Brand                        string                      `gorm:"column:brand;type:text" json:"brand"`
	Price                        float64                     `gorm:"column:price;type:numeric" json:"price"`
	EcoScore                     *float64                    `gorm:"column:eco_score;type:numeric" json:"eco_score"`
	SustainabilityCertifications datatypes.JSONSlice[string] `gorm:"column:sustainability_certifications" json:"sustainability_certifications"`
	CarbonFootprint              *float64                    `gorm:"column:carbon_footprint;type:numeric" json:"carbon_footprint"`
	IsOrganic                    bool                        `gorm:"column:is_organic;default:false" json:"is_organic"`
	IsVegan                      bool                        `gorm:"column:is_vegan;default:false" json:"is_vegan"`
	IsCrueltyFree                bool                        `gorm:"column:is_cruelty_free;default:false" json:"is_cruelty_free"`
	IsRecyclable                 bool                        `gorm:"column:is_recyclable;default:false" json:"is_recyclable"`
	Rating                       float64                     `gorm:"column:rating;type:numeric;default:0" json:"rating"`
	IsActive                     bool                        `gorm:"column:is_active;default:true" json:"is_active"`
	IsApproved                   bool                        `gorm:"column:is_approved;default:false" json:"is_approved"`
	CreatedAt                    time.Time                   `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
