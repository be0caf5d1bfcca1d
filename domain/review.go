package domain

import "time"

// CREATE TABLE public.product_reviews (
//     id                    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id               BIGINT NOT NULL,
//     product_id            BIGINT NOT NULL,
//     rating                INT NOT NULL,
//     sustainability_rating INT,
//     created_at            TIMESTAMPTZ DEFAULT NOW()
// );

type ProductReview struct {
	ID                   uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uint      `gorm:"column:user_id;index" json:"user_id"`
	ProductID            uint64    `gorm:"column:product_id" json:"product_id"`
	Rating               int       `gorm:"column:rating" json:"rating"`
	SustainabilityRating *int      `gorm:"column:sustainability_rating" json:"sustainability_rating"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ProductReview) TableName() string {
	return "product_reviews"
}
