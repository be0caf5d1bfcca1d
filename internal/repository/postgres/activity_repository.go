package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecomart/domain"
)

const orderStatusCompleted = "completed"

// ActivityRepository exposes the read-only view of a user's purchase and
// review history that the recommendation engine consumes. Order and review
// writes belong to their own subsystems.
type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		DB: db,
	}
}

func (r *ActivityRepository) FindPurchases(ctx context.Context, userID uint) ([]domain.PurchasedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.PurchasedItem
	err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id, products.category_id, products.brand, products.eco_score").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.user_id = ? AND order_items.order_status = ?", userID, orderStatusCompleted).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}

	return items, nil
}

func (r *ActivityRepository) FindReviews(ctx context.Context, userID uint) ([]domain.ProductReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.ProductReview
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}
