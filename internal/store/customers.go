package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/courseorders/internal/models"
)

// CustomerStore reads customers and their course orders.
type CustomerStore struct {
	db *gorm.DB
}

// NewCustomerStore constructs CustomerStore.
func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

// FindByEmail returns the customer with the given email, or nil when none matches.
// Matching ignores case on both sides, so rows written before emails were
// normalized are still found. With includeOrders the orders are loaded oldest first.
func (s *CustomerStore) FindByEmail(ctx context.Context, email string, includeOrders bool) (*models.User, error) {
	query := s.db.WithContext(ctx).Where("lower(email) = ?", models.NormalizeEmail(email))
	if includeOrders {
		query = query.Preload("Orders", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at asc")
		})
	}

	var user models.User
	if err := query.Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &user, nil
}

// FindOrderByCourse returns the customer's order for a course, or nil.
func (s *CustomerStore) FindOrderByCourse(ctx context.Context, userID uuid.UUID, courseID string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Take(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order by course: %w", err)
	}

	return &order, nil
}

// Create inserts a customer together with any orders attached to it.
func (s *CustomerStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
