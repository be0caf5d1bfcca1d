package domain

import "time"

type OrderItem struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"column:user_id;index" json:"user_id"`
	ProductID   uint64    `gorm:"column:product_id" json:"product_id"`
	Quantity    int       `gorm:"column:quantity" json:"quantity"`
	PriceEach   float64   `gorm:"column:price_each;type:numeric" json:"price_each"`
	Subtotal    float64   `gorm:"column:subtotal;type:numeric" json:"subtotal"`
	OrderStatus string    `gorm:"column:order_status" json:"order_status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// PurchasedItem is the read-only projection of a completed order line joined
// with its product attributes. It is what the recommendation engine sees of a
// user's purchase history.
type PurchasedItem struct {
	ProductID  uint64   `gorm:"column:product_id" json:"product_id"`
	CategoryID uint64   `gorm:"column:category_id" json:"category_id"`
	Brand      string   `gorm:"column:brand" json:"brand"`
	EcoScore   *float64 `gorm:"column:eco_score" json:"eco_score"`
}
